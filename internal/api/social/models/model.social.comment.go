package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment là bình luận của một người dùng trên một video.
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Video     primitive.ObjectID `json:"video" bson:"video" index:"single"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner" index:"single"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Tweet là bài viết ngắn của một người dùng.
type Tweet struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner" index:"single"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Subscription là cạnh theo dõi từ subscriber tới channel.
// Cặp (subscriber, channel) là duy nhất; không tự theo dõi chính mình.
type Subscription struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
