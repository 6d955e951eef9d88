package authsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWatchHistoryPurge(t *testing.T) {
	videoID := primitive.NewObjectID()
	filter, update := watchHistoryPurge(videoID)

	if got := filter["watchHistory"]; got != videoID {
		t.Errorf("filter[watchHistory] = %v, muốn %v", got, videoID)
	}
	if update.Pull == nil {
		t.Fatal("update phải dùng $pull để gỡ video khỏi mảng watchHistory")
	}
	if got := update.Pull["watchHistory"]; got != videoID {
		t.Errorf("Pull[watchHistory] = %v, muốn %v", got, videoID)
	}
	if update.Set != nil || update.AddToSet != nil {
		t.Error("purge không được kèm $set hay $addToSet")
	}
}
