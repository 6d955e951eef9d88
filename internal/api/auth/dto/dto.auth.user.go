// Package authdto - các cấu trúc vào/ra cho domain auth.
package authdto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "clip_hub/internal/api/base/models"
)

// UserRegisterInput đầu vào đăng ký người dùng.
// Avatar và ảnh bìa được gửi kèm qua multipart form, không nằm trong struct này.
type UserRegisterInput struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=30,no_xss"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	FullName string `json:"fullName" form:"fullName" validate:"required,max=100,no_xss"`
	Password string `json:"password" form:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập. Cho phép đăng nhập bằng username hoặc email,
// ít nhất một trong hai phải có.
type UserLoginInput struct {
	Username string `json:"username" validate:"omitempty,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput đầu vào làm mới access token.
// RefreshToken có thể nằm trong body hoặc cookie; body được ưu tiên.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordInput đầu vào đổi mật khẩu.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UpdateAccountInput đầu vào cập nhật thông tin tài khoản.
type UpdateAccountInput struct {
	FullName string `json:"fullName" validate:"omitempty,max=100,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// TokenPair cặp token trả về sau khi đăng nhập hoặc làm mới.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// OwnerProjection là các trường công khai của chủ sở hữu được join vào
// video, comment, tweet trong các aggregation.
type OwnerProjection struct {
	ID       primitive.ObjectID    `json:"id" bson:"_id"`
	Username string                `json:"username" bson:"username"`
	FullName string                `json:"fullName" bson:"fullName"`
	Avatar   basemodels.MediaAsset `json:"avatar" bson:"avatar"`
}

// ChannelProfile kết quả aggregation hồ sơ kênh công khai.
type ChannelProfile struct {
	ID                primitive.ObjectID    `json:"id" bson:"_id"`
	Username          string                `json:"username" bson:"username"`
	FullName          string                `json:"fullName" bson:"fullName"`
	Avatar            basemodels.MediaAsset `json:"avatar" bson:"avatar"`
	CoverImage        basemodels.MediaAsset `json:"coverImage" bson:"coverImage"`
	SubscribersCount  int64                 `json:"subscribersCount" bson:"subscribersCount"`
	SubscribedToCount int64                 `json:"subscribedToCount" bson:"subscribedToCount"`
	IsSubscribed      bool                  `json:"isSubscribed" bson:"isSubscribed"`
	CreatedAt         int64                 `json:"createdAt" bson:"createdAt"`
}

// WatchHistoryVideo một video trong lịch sử xem, kèm chủ sở hữu đã join.
type WatchHistoryVideo struct {
	ID        primitive.ObjectID    `json:"id" bson:"_id"`
	Title     string                `json:"title" bson:"title"`
	Thumbnail basemodels.MediaAsset `json:"thumbnail" bson:"thumbnail"`
	Duration  float64               `json:"duration" bson:"duration"`
	Views     int64                 `json:"views" bson:"views"`
	Owner     OwnerProjection       `json:"owner" bson:"owner"`
	CreatedAt int64                 `json:"createdAt" bson:"createdAt"`
}
