// Package models - các model thuộc domain content (Video, Playlist).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "clip_hub/internal/api/base/models"
)

// Video định nghĩa mô hình video.
// Owner là một userId duy nhất. Views được tăng nguyên tử bằng $inc.
type Video struct {
	ID          primitive.ObjectID    `json:"id,omitempty" bson:"_id,omitempty"`
	VideoFile   basemodels.MediaAsset `json:"videoFile" bson:"videoFile"`
	Thumbnail   basemodels.MediaAsset `json:"thumbnail" bson:"thumbnail"`
	Owner       primitive.ObjectID    `json:"owner" bson:"owner" index:"single"`
	Title       string                `json:"title" bson:"title" index:"text"`
	Description string                `json:"description" bson:"description"`
	Duration    float64               `json:"duration" bson:"duration"`
	Views       int64                 `json:"views" bson:"views"`
	IsPublished bool                  `json:"isPublished" bson:"isPublished"`
	CreatedAt   int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                 `json:"updatedAt" bson:"updatedAt"`
}
