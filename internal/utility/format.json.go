package utility

import (
	"strconv"
)

// S2Int64 chuyển đổi chuỗi thành int64, trả về giá trị mặc định nếu chuỗi không hợp lệ.
// Dùng cho các tham số query (page, limit, ...)
func S2Int64(input string, defaultValue int64) int64 {
	result, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return defaultValue
	}
	return result
}
