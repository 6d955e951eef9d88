// Package authz chứa các quy tắc phân quyền thuần túy của hệ thống.
// Các hàm trong package này không truy cập I/O: service tự tải dữ liệu
// cần thiết rồi gọi vào đây để ra quyết định cho phép hay từ chối.
package authz

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clip_hub/internal/common"
)

// CanMutate kiểm tra quyền sửa/xóa một tài nguyên có chủ sở hữu.
// Chỉ chủ sở hữu mới được phép thao tác ghi.
//
// Parameters:
//   - actor: ID người thực hiện thao tác
//   - owner: ID chủ sở hữu tài nguyên
//
// Returns:
//   - error: nil nếu được phép; 401 nếu chưa đăng nhập; 403 nếu không phải chủ sở hữu
func CanMutate(actor, owner primitive.ObjectID) error {
	if actor.IsZero() {
		return common.ErrTokenMissing
	}
	if actor != owner {
		return common.ErrForbidden
	}
	return nil
}

// CanViewVideo kiểm tra quyền xem một video.
// Video đã publish thì ai cũng xem được. Video chưa publish chỉ chủ sở hữu
// thấy; người khác nhận 404 thay vì 403 để không lộ sự tồn tại của video.
func CanViewVideo(viewer, owner primitive.ObjectID, isPublished bool) error {
	if isPublished {
		return nil
	}
	if !viewer.IsZero() && viewer == owner {
		return nil
	}
	return common.ErrNotFound
}

// CanListSubscribers kiểm tra quyền xem danh sách người đăng ký của một kênh.
// Chỉ chủ kênh xem được danh sách chi tiết; người khác chỉ nhận số lượng.
func CanListSubscribers(actor, channel primitive.ObjectID) error {
	if actor.IsZero() {
		return common.ErrTokenMissing
	}
	if actor != channel {
		return common.ErrForbidden
	}
	return nil
}

// CanSubscribe kiểm tra quyền đăng ký theo dõi một kênh.
// Không cho phép tự đăng ký kênh của chính mình.
func CanSubscribe(actor, channel primitive.ObjectID) error {
	if actor.IsZero() {
		return common.ErrTokenMissing
	}
	if actor == channel {
		return common.NewError(
			common.ErrCodeBusinessRule,
			"Không thể tự đăng ký kênh của chính mình",
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}
