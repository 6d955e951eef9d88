package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"clip_hub/config"
	"clip_hub/internal/registry"
	"clip_hub/internal/storage"
)

// Validate là instance validator dùng chung cho toàn bộ ứng dụng
var Validate *validator.Validate

// MongoDB_Session là session kết nối MongoDB dùng chung
var MongoDB_Session *mongo.Client

// MongoDB_ServerConfig là cấu hình server đọc từ file env
var MongoDB_ServerConfig *config.Configuration

// ColNames chứa tên các collection trong database
type ColNames struct {
	Users         string
	Videos        string
	Comments      string
	Tweets        string
	Likes         string
	Subscriptions string
	Playlists     string
}

// MongoDB_ColNames chứa tên tất cả các collection của hệ thống
var MongoDB_ColNames ColNames

// RegistryCollections quản lý các collection MongoDB đã khởi tạo
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()

// MediaStorage là client lưu trữ media (video, thumbnail, avatar) dùng chung
var MediaStorage *storage.MediaStorage
