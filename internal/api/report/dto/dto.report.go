// Package reportdto - các cấu trúc kết quả thống kê kênh.
package reportdto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "clip_hub/internal/api/base/models"
)

// VideoSpotlight video nổi bật trong phần tổng quan kênh.
type VideoSpotlight struct {
	ID        primitive.ObjectID    `json:"id" bson:"_id"`
	Title     string                `json:"title" bson:"title"`
	Thumbnail basemodels.MediaAsset `json:"thumbnail" bson:"thumbnail"`
	Views     int64                 `json:"views" bson:"views"`
	CreatedAt int64                 `json:"createdAt" bson:"createdAt"`
}

// VideoOverview tổng quan video của kênh.
type VideoOverview struct {
	TotalVideos int64           `json:"totalVideos"`
	TotalViews  int64           `json:"totalViews"`
	AvgViews    float64         `json:"avgViews"`
	MostViewed  *VideoSpotlight `json:"mostViewed,omitempty"`
	Latest      *VideoSpotlight `json:"latest,omitempty"`
	Oldest      *VideoSpotlight `json:"oldest,omitempty"`
}

// LikeStats số like kênh nhận được theo từng loại nội dung.
type LikeStats struct {
	VideoLikes   int64 `json:"videoLikes"`
	CommentLikes int64 `json:"commentLikes"`
	TweetLikes   int64 `json:"tweetLikes"`
}

// TopComment bình luận được like nhiều nhất trên video của kênh.
type TopComment struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Content    string             `json:"content" bson:"content"`
	Video      primitive.ObjectID `json:"video" bson:"video"`
	LikesCount int64              `json:"likesCount" bson:"likesCount"`
}

// TopCommentedVideo video có nhiều bình luận nhất của kênh.
type TopCommentedVideo struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Title         string             `json:"title" bson:"title"`
	CommentsCount int64              `json:"commentsCount" bson:"commentsCount"`
}

// CommentStats thống kê bình luận trên video của kênh.
type CommentStats struct {
	TotalComments      int64               `json:"totalComments"`
	TopLikedComments   []TopComment        `json:"topLikedComments"`
	TopCommentedVideos []TopCommentedVideo `json:"topCommentedVideos"`
}

// SubscriberBrief người đăng ký trong phần thống kê (projection công khai).
type SubscriberBrief struct {
	ID           primitive.ObjectID    `json:"id" bson:"_id"`
	Username     string                `json:"username" bson:"username"`
	FullName     string                `json:"fullName" bson:"fullName"`
	Avatar       basemodels.MediaAsset `json:"avatar" bson:"avatar"`
	SubscribedAt int64                 `json:"subscribedAt" bson:"subscribedAt"`
}

// SubscriptionStats thống kê đăng ký của kênh.
type SubscriptionStats struct {
	TotalSubscribers  int64             `json:"totalSubscribers"`
	TotalSubscribedTo int64             `json:"totalSubscribedTo"`
	NewestSubscribers []SubscriberBrief `json:"newestSubscribers"`
	OldestSubscribers []SubscriberBrief `json:"oldestSubscribers"`
}

// PlaylistStats thống kê danh sách phát của kênh.
type PlaylistStats struct {
	TotalPlaylists         int64 `json:"totalPlaylists"`
	TotalVideosInPlaylists int64 `json:"totalVideosInPlaylists"`
}

// ChannelStats toàn bộ số liệu dashboard của một kênh.
// Kênh trống trả về số liệu bằng 0, không phải lỗi.
type ChannelStats struct {
	Videos        VideoOverview     `json:"videos"`
	Likes         LikeStats         `json:"likes"`
	Comments      CommentStats      `json:"comments"`
	Subscriptions SubscriptionStats `json:"subscriptions"`
	Playlists     PlaylistStats     `json:"playlists"`
}
