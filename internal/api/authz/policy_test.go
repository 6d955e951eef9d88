package authz

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clip_hub/internal/common"
)

func TestCanMutate(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	tests := []struct {
		name    string
		actor   primitive.ObjectID
		wantErr error
	}{
		{"chủ sở hữu được phép sửa", owner, nil},
		{"người khác bị từ chối 403", other, common.ErrForbidden},
		{"chưa đăng nhập bị từ chối 401", primitive.NilObjectID, common.ErrTokenMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanMutate(tt.actor, owner)
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Errorf("CanMutate() = %v, muốn %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanViewVideo(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	tests := []struct {
		name        string
		viewer      primitive.ObjectID
		isPublished bool
		wantErr     error
	}{
		{"video đã publish ai cũng xem được", other, true, nil},
		{"video đã publish xem ẩn danh được", primitive.NilObjectID, true, nil},
		{"video chưa publish chủ sở hữu xem được", owner, false, nil},
		{"video chưa publish người khác nhận 404", other, false, common.ErrNotFound},
		{"video chưa publish ẩn danh nhận 404", primitive.NilObjectID, false, common.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanViewVideo(tt.viewer, owner, tt.isPublished)
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Errorf("CanViewVideo() = %v, muốn %v", err, tt.wantErr)
			}
		})
	}

	// 404 chứ không phải 403: không lộ sự tồn tại của video chưa publish
	err := CanViewVideo(other, owner, false)
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusNotFound {
		t.Errorf("video chưa publish phải trả về 404, nhận được %v", err)
	}
}

func TestCanListSubscribers(t *testing.T) {
	channel := primitive.NewObjectID()
	other := primitive.NewObjectID()

	if err := CanListSubscribers(channel, channel); err != nil {
		t.Errorf("chủ kênh phải xem được danh sách người đăng ký, nhận lỗi %v", err)
	}
	if err := CanListSubscribers(other, channel); !errors.Is(err, common.ErrForbidden) {
		t.Errorf("người khác phải nhận 403, nhận được %v", err)
	}
	if err := CanListSubscribers(primitive.NilObjectID, channel); !errors.Is(err, common.ErrTokenMissing) {
		t.Errorf("ẩn danh phải nhận 401, nhận được %v", err)
	}
}

func TestCanSubscribe(t *testing.T) {
	channel := primitive.NewObjectID()
	other := primitive.NewObjectID()

	if err := CanSubscribe(other, channel); err != nil {
		t.Errorf("người dùng khác phải đăng ký được kênh, nhận lỗi %v", err)
	}

	err := CanSubscribe(channel, channel)
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("tự đăng ký kênh của mình phải trả về 400, nhận được %v", err)
	}

	if err := CanSubscribe(primitive.NilObjectID, channel); !errors.Is(err, common.ErrTokenMissing) {
		t.Errorf("ẩn danh phải nhận 401, nhận được %v", err)
	}
}
