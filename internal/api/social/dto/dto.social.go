// Package socialdto - các cấu trúc vào/ra cho domain social.
package socialdto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "clip_hub/internal/api/auth/dto"
	basemodels "clip_hub/internal/api/base/models"
)

// CommentCreateInput đầu vào thêm bình luận.
type CommentCreateInput struct {
	Content string `json:"content" validate:"required,max=1000,no_xss"`
}

// CommentUpdateInput đầu vào sửa bình luận.
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required,max=1000,no_xss"`
}

// TweetCreateInput đầu vào tạo tweet.
type TweetCreateInput struct {
	Content string `json:"content" validate:"required,max=500,no_xss"`
}

// TweetUpdateInput đầu vào sửa tweet.
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required,max=500,no_xss"`
}

// ToggleLikeResult trạng thái sau khi toggle like.
type ToggleLikeResult struct {
	Liked bool `json:"liked"`
}

// ToggleSubscriptionResult trạng thái sau khi toggle theo dõi.
type ToggleSubscriptionResult struct {
	Subscribed bool `json:"subscribed"`
}

// CommentWithMeta bình luận kèm chủ sở hữu, số like và trạng thái like của người xem.
type CommentWithMeta struct {
	ID         primitive.ObjectID      `json:"id" bson:"_id"`
	Content    string                  `json:"content" bson:"content"`
	Video      primitive.ObjectID      `json:"video" bson:"video"`
	Owner      authdto.OwnerProjection `json:"owner" bson:"owner"`
	LikesCount int64                   `json:"likesCount" bson:"likesCount"`
	IsLiked    bool                    `json:"isLiked" bson:"isLiked"`
	CreatedAt  int64                   `json:"createdAt" bson:"createdAt"`
}

// TweetWithMeta tweet kèm chủ sở hữu và số like.
type TweetWithMeta struct {
	ID         primitive.ObjectID      `json:"id" bson:"_id"`
	Content    string                  `json:"content" bson:"content"`
	Owner      authdto.OwnerProjection `json:"owner" bson:"owner"`
	LikesCount int64                   `json:"likesCount" bson:"likesCount"`
	IsLiked    bool                    `json:"isLiked" bson:"isLiked"`
	CreatedAt  int64                   `json:"createdAt" bson:"createdAt"`
}

// SubscriberInfo một người đăng ký của kênh (projection công khai).
type SubscriberInfo struct {
	ID           primitive.ObjectID    `json:"id" bson:"_id"`
	Username     string                `json:"username" bson:"username"`
	FullName     string                `json:"fullName" bson:"fullName"`
	Avatar       basemodels.MediaAsset `json:"avatar" bson:"avatar"`
	SubscribedAt int64                 `json:"subscribedAt" bson:"subscribedAt"`
}

// SubscribersView kết quả xem người đăng ký của kênh.
// Người xem không phải chủ kênh chỉ nhận tổng số, không có danh sách.
type SubscribersView struct {
	TotalSubscribers int64                                      `json:"totalSubscribers"`
	Subscribers      *basemodels.PaginateResult[SubscriberInfo] `json:"subscribers,omitempty"`
}

// ChannelInfo một kênh mà người dùng theo dõi (projection công khai).
type ChannelInfo struct {
	ID           primitive.ObjectID    `json:"id" bson:"_id"`
	Username     string                `json:"username" bson:"username"`
	FullName     string                `json:"fullName" bson:"fullName"`
	Avatar       basemodels.MediaAsset `json:"avatar" bson:"avatar"`
	SubscribedAt int64                 `json:"subscribedAt" bson:"subscribedAt"`
}
