// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "clip_hub/internal/api/base/models"
)

// User định nghĩa mô hình người dùng, đồng thời là kênh (channel) của hệ thống.
// Username được chuẩn hóa về chữ thường trước khi lưu.
// WatchHistory lưu danh sách video đã xem theo thứ tự lần xem đầu tiên,
// thêm bằng $addToSet nên không có phần tử trùng.
type User struct {
	ID           primitive.ObjectID    `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string                `json:"username" bson:"username" index:"unique"`
	Email        string                `json:"email" bson:"email" index:"unique"`
	FullName     string                `json:"fullName" bson:"fullName" index:"single"`
	Avatar       basemodels.MediaAsset `json:"avatar" bson:"avatar"`
	CoverImage   basemodels.MediaAsset `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	Password     string                `json:"-" bson:"password,omitempty"`
	RefreshToken string                `json:"-" bson:"refreshToken,omitempty"`
	WatchHistory []primitive.ObjectID  `json:"watchHistory,omitempty" bson:"watchHistory,omitempty"`
	CreatedAt    int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                 `json:"updatedAt" bson:"updatedAt"`
}
