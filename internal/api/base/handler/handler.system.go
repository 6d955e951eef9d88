package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"clip_hub/internal/common"
	"clip_hub/internal/global"
)

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct{}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth kiểm tra tình trạng hệ thống
// @Summary Kiểm tra tình trạng hệ thống
// @Description Kiểm tra trạng thái của API, database connection và media storage
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Hệ thống hoạt động bình thường"
// @Failure 424 {object} map[string]interface{} "Dịch vụ lưu trữ không phản hồi"
// @Failure 503 {object} map[string]interface{} "Database không phản hồi"
// @Router /system/health [get]
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": fiber.Map{
			"api": "ok",
		},
	}

	// Database không phản hồi thì hệ thống coi như không phục vụ được
	if global.MongoDB_Session != nil {
		if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
			healthData["status"] = "degraded"
			healthData["services"].(fiber.Map)["database"] = "error"
			HandleResponseWithStatus(c, common.StatusServiceUnavailable, healthData, common.MsgDatabaseUnavailable)
			return nil
		}
		healthData["services"].(fiber.Map)["database"] = "ok"
	} else {
		healthData["status"] = "degraded"
		healthData["services"].(fiber.Map)["database"] = "not_initialized"
	}

	// Storage lỗi thì upload media sẽ fail nhưng các API đọc vẫn chạy được
	if global.MediaStorage != nil {
		if err := global.MediaStorage.Ping(ctx); err != nil {
			healthData["status"] = "degraded"
			healthData["services"].(fiber.Map)["storage"] = "error"
			HandleResponseWithStatus(c, common.StatusFailedDependency, healthData, common.MsgStorageUnavailable)
			return nil
		}
		healthData["services"].(fiber.Map)["storage"] = "ok"
	} else {
		healthData["services"].(fiber.Map)["storage"] = "not_initialized"
	}

	HandleResponse(c, healthData, nil)
	return nil
}
