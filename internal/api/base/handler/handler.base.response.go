package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"clip_hub/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
//
// Parameters:
// - c: Fiber context
// - handler: Function xử lý chính của handler
func SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			HandleResponse(c, nil, common.NewError(
				common.ErrCodeSystem,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Mọi response đều có dạng {statusCode, data, message, success};
// lỗi giữ nguyên shape với data = null và thêm details khi có.
//
// Parameters:
// - c: Fiber context
// - data: Dữ liệu trả về cho client (có thể là nil nếu chỉ trả về lỗi)
// - err: Lỗi nếu có (nil nếu không có lỗi)
func HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			body := fiber.Map{
				"statusCode": customErr.StatusCode,
				"data":       nil,
				"message":    customErr.Message,
				"success":    false,
			}
			if len(customErr.Details) > 0 {
				body["details"] = customErr.Details
			}
			JSONResponse(c, customErr.StatusCode, body)
			return
		}

		// Lỗi không phải custom error, trả về internal server error
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"statusCode": common.StatusInternalServerError,
			"data":       nil,
			"message":    err.Error(),
			"success":    false,
		})
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"statusCode": common.StatusOK,
		"data":       data,
		"message":    common.MsgSuccess,
		"success":    true,
	})
}

// HandleResponseWithStatus giống HandleResponse nhưng cho phép chỉ định status code
// thành công (vd: 201 khi tạo mới tài nguyên).
func HandleResponseWithStatus(c fiber.Ctx, statusCode int, data interface{}, message string) {
	if message == "" {
		message = common.MsgSuccess
	}
	JSONResponse(c, statusCode, fiber.Map{
		"statusCode": statusCode,
		"data":       data,
		"message":    message,
		"success":    statusCode < 400,
	})
}
