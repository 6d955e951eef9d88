package socialsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "clip_hub/internal/api/base/service"
	contentmodels "clip_hub/internal/api/content/models"
	"clip_hub/internal/common"
)

// stubVideoLookup giả lập tra cứu video cho CommentService,
// chỉ cài đặt FindOneById
type stubVideoLookup struct {
	basesvc.BaseServiceMongo[contentmodels.Video]
	video contentmodels.Video
	err   error
}

func (s stubVideoLookup) FindOneById(ctx context.Context, id primitive.ObjectID) (contentmodels.Video, error) {
	return s.video, s.err
}

func TestGetVideoCommentsVideoVisibility(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	t.Run("video không tồn tại trả về 404", func(t *testing.T) {
		svc := &CommentService{
			videoService: stubVideoLookup{err: common.ErrNotFound},
		}

		_, err := svc.GetVideoComments(context.Background(), videoID, stranger, 1, 10)
		if !errors.Is(err, common.ErrNotFound) {
			t.Errorf("GetVideoComments với video không tồn tại = %v, muốn ErrNotFound", err)
		}
	})

	t.Run("người xem ẩn danh không đọc được bình luận video chưa publish", func(t *testing.T) {
		svc := &CommentService{
			videoService: stubVideoLookup{video: contentmodels.Video{Owner: owner, IsPublished: false}},
		}

		_, err := svc.GetVideoComments(context.Background(), videoID, primitive.NilObjectID, 1, 10)
		if !errors.Is(err, common.ErrNotFound) {
			t.Errorf("GetVideoComments ẩn danh trên video chưa publish = %v, muốn ErrNotFound", err)
		}
	})

	t.Run("người khác không đọc được bình luận video chưa publish", func(t *testing.T) {
		svc := &CommentService{
			videoService: stubVideoLookup{video: contentmodels.Video{Owner: owner, IsPublished: false}},
		}

		_, err := svc.GetVideoComments(context.Background(), videoID, stranger, 1, 10)
		if !errors.Is(err, common.ErrNotFound) {
			t.Errorf("GetVideoComments của người khác trên video chưa publish = %v, muốn ErrNotFound", err)
		}
	})
}
