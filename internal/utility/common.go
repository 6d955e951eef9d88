package utility

import (
	"clip_hub/internal/logger"
)

// GoProtect là một hàm bao bọc (wrapper) giúp bảo vệ một hàm khác khỏi bị panic.
// Nếu xảy ra panic trong hàm f(), GoProtect sẽ bắt lại và ghi log thay vì làm chương trình dừng hẳn.
// Dùng cho các tác vụ chạy nền (dọn dẹp media, ghi lịch sử xem, ...)
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.GetAppLogger().WithField("panic", err).Error("Đã bắt lỗi panic trong tác vụ nền")
		}
	}()

	f()
}
