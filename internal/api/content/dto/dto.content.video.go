// Package contentdto - các cấu trúc vào/ra cho domain content.
package contentdto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "clip_hub/internal/api/auth/dto"
	basemodels "clip_hub/internal/api/base/models"
)

// VideoPublishInput đầu vào đăng video (các trường text của multipart form).
// Tệp video và thumbnail được gửi kèm qua multipart, không nằm trong struct này.
type VideoPublishInput struct {
	Title       string  `json:"title" form:"title" validate:"required,max=200,no_xss"`
	Description string  `json:"description" form:"description" validate:"omitempty,max=2000,no_xss"`
	Duration    float64 `json:"duration" form:"duration" validate:"gte=0"`
}

// VideoUpdateInput đầu vào cập nhật video (title/description; thumbnail qua form riêng).
type VideoUpdateInput struct {
	Title       string `json:"title" form:"title" validate:"omitempty,max=200,no_xss"`
	Description string `json:"description" form:"description" validate:"omitempty,max=2000,no_xss"`
}

// VideoListQuery tham số truy vấn danh sách video công khai.
type VideoListQuery struct {
	Query    string `json:"query" validate:"omitempty,max=200"`
	SortBy   string `json:"sortBy" validate:"omitempty,oneof=createdAt views duration"`
	SortType string `json:"sortType" validate:"sort_order"`
	UserID   string `json:"userId" validate:"objectid"`
}

// VideoWithOwner video kèm các trường công khai của chủ sở hữu (kết quả aggregation).
type VideoWithOwner struct {
	ID          primitive.ObjectID      `json:"id" bson:"_id"`
	VideoFile   basemodels.MediaAsset   `json:"videoFile" bson:"videoFile"`
	Thumbnail   basemodels.MediaAsset   `json:"thumbnail" bson:"thumbnail"`
	Title       string                  `json:"title" bson:"title"`
	Description string                  `json:"description" bson:"description"`
	Duration    float64                 `json:"duration" bson:"duration"`
	Views       int64                   `json:"views" bson:"views"`
	IsPublished bool                    `json:"isPublished" bson:"isPublished"`
	Owner       authdto.OwnerProjection `json:"owner" bson:"owner"`
	CreatedAt   int64                   `json:"createdAt" bson:"createdAt"`
}

// PlaylistCreateInput đầu vào tạo danh sách phát.
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required,max=100,no_xss"`
	Description string `json:"description" validate:"omitempty,max=1000,no_xss"`
}

// PlaylistUpdateInput đầu vào cập nhật danh sách phát.
type PlaylistUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,max=100,no_xss"`
	Description string `json:"description" validate:"omitempty,max=1000,no_xss"`
}

// PlaylistWithVideos danh sách phát kèm các video đã join.
type PlaylistWithVideos struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`
	Videos      []VideoWithOwner   `json:"videos" bson:"videos"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
