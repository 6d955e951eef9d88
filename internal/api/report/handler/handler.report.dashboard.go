// Package reporthdl - các handler HTTP cho dashboard kênh.
package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "clip_hub/internal/api/base/handler"
	reportsvc "clip_hub/internal/api/report/service"
)

// DashboardHandler xử lý các request dashboard của chủ kênh
type DashboardHandler struct {
	reportService *reportsvc.ReportService
}

// NewDashboardHandler tạo instance mới của DashboardHandler
func NewDashboardHandler() (*DashboardHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}

	return &DashboardHandler{reportService: reportService}, nil
}

// HandleGetChannelStats số liệu tổng hợp kênh của người dùng đang đăng nhập
// @Router /dashboard/stats [get]
func (h *DashboardHandler) HandleGetChannelStats(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		channelID, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		stats, err := h.reportService.GetChannelStats(c.Context(), channelID)
		basehdl.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleGetChannelVideos video kênh của người dùng đang đăng nhập,
// gồm cả video chưa publish (phân trang)
// @Router /dashboard/videos [get]
func (h *DashboardHandler) HandleGetChannelVideos(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		channelID, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.reportService.GetChannelVideos(c.Context(), channelID, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}
