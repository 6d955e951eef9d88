package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"clip_hub/config"
	authmodels "clip_hub/internal/api/auth/models"
	contentmodels "clip_hub/internal/api/content/models"
	socialmodels "clip_hub/internal/api/social/models"
	"clip_hub/internal/database"
	"clip_hub/internal/global"
	"clip_hub/internal/storage"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initMediaStorage()     // Khởi tạo dịch vụ lưu trữ media
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Tweets = "tweets"
	global.MongoDB_ColNames.Likes = "likes"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"
	global.MongoDB_ColNames.Playlists = "playlists"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validators: no_xss, strong_password, objectid, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Videos), contentmodels.Video{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Playlists), contentmodels.Playlist{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Comments), socialmodels.Comment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Tweets), socialmodels.Tweet{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Likes), socialmodels.Like{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Subscriptions), socialmodels.Subscription{})

	// Index compound/unique cho toggle và feed, không mô tả được bằng tag
	if err := database.CreateFeedAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create additional indexes: %v", err)
	}
	logrus.Info("Created collection indexes")
}

// Hàm khởi tạo dịch vụ lưu trữ media (S3-compatible)
func initMediaStorage() {
	mediaStorage, err := storage.NewMediaStorage(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize media storage: %v", err)
	}
	global.MediaStorage = mediaStorage
	logrus.Info("Initialized media storage")
}
