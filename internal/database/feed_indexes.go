// Package database - Index bổ sung cho các feed và toggle (compound, partial) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clip_hub/internal/global"
)

// CreateFeedAdditionalIndexes tạo các index bổ sung cho like toggle, subscription toggle
// và các feed sắp xếp theo thời gian. Gọi sau CreateIndexes cho từng collection.
func CreateFeedAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// likes: (likedBy, targetKind, targetId) unique — mỗi người chỉ like một đối tượng một lần
	likes := db.Collection(global.MongoDB_ColNames.Likes)
	if _, err := likes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "likedBy", Value: 1},
			{Key: "targetKind", Value: 1},
			{Key: "targetId", Value: 1},
		},
		Options: options.Index().SetName("like_actor_target_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// likes: (targetKind, targetId) — đếm like và lookup isLiked theo đối tượng
	if _, err := likes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "targetKind", Value: 1},
			{Key: "targetId", Value: 1},
		},
		Options: options.Index().SetName("like_target"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// subscriptions: (subscriber, channel) unique — toggle subscribe
	subscriptions := db.Collection(global.MongoDB_ColNames.Subscriptions)
	if _, err := subscriptions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subscriber", Value: 1},
			{Key: "channel", Value: 1},
		},
		Options: options.Index().SetName("subscription_pair_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// subscriptions: (channel) — đếm subscribers của một kênh
	if _, err := subscriptions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "channel", Value: 1}},
		Options: options.Index().SetName("subscription_channel"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// videos: (owner, createdAt) — kênh của một người, feed mới nhất
	videos := db.Collection(global.MongoDB_ColNames.Videos)
	if _, err := videos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("video_owner_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// videos: (isPublished, views) — feed công khai mặc định sắp theo lượt xem
	if _, err := videos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "isPublished", Value: 1},
			{Key: "views", Value: -1},
		},
		Options: options.Index().SetName("video_published_views"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// comments: (video, createdAt) — phân trang bình luận theo video
	comments := db.Collection(global.MongoDB_ColNames.Comments)
	if _, err := comments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "video", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("comment_video_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// tweets: (owner, createdAt) — tweets của một người theo thời gian
	tweets := db.Collection(global.MongoDB_ColNames.Tweets)
	if _, err := tweets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("tweet_owner_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// playlists: (owner, updatedAt) — playlists của một người, mới cập nhật trước
	playlists := db.Collection(global.MongoDB_ColNames.Playlists)
	if _, err := playlists.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "updatedAt", Value: -1},
		},
		Options: options.Index().SetName("playlist_owner_updated"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
