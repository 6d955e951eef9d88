package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist định nghĩa mô hình danh sách phát.
// Videos là mảng videoId có thứ tự, không phần tử trùng (thêm bằng $addToSet).
type Playlist struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner" index:"single"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`
	CreatedAt   int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                `json:"updatedAt" bson:"updatedAt"`
}
