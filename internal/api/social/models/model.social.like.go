// Package models - các model thuộc domain social (Like, Comment, Tweet, Subscription).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại đối tượng có thể được like.
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Like là một cạnh like từ người dùng tới đúng một đối tượng.
// Cặp (likedBy, targetKind, targetId) là duy nhất - index tạo trong
// database.CreateFeedAdditionalIndexes.
type Like struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TargetKind string             `json:"targetKind" bson:"targetKind"`
	TargetID   primitive.ObjectID `json:"targetId" bson:"targetId"`
	LikedBy    primitive.ObjectID `json:"likedBy" bson:"likedBy"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsValidLikeTarget kiểm tra targetKind có hợp lệ không
func IsValidLikeTarget(kind string) bool {
	switch kind {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}
