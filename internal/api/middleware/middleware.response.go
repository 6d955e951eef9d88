package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"clip_hub/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse xử lý và trả về error response cho client.
// Tách riêng để tránh import cycle với handler package.
func HandleErrorResponse(c fiber.Ctx, err error) {
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

	// Nếu không phải custom error, trả về internal server error
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"statusCode": common.StatusInternalServerError,
		"data":       nil,
		"message":    err.Error(),
		"success":    false,
	})
}
