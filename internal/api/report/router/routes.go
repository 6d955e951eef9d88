// Package router đăng ký các route dashboard của chủ kênh.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"clip_hub/internal/api/middleware"
	reporthdl "clip_hub/internal/api/report/handler"
	apirouter "clip_hub/internal/api/router"
)

// Register đăng ký các route dashboard lên v1.
func Register(v1 fiber.Router) error {
	dashboardHandler, err := reporthdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("failed to create dashboard handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/stats", []fiber.Handler{authMiddleware}, dashboardHandler.HandleGetChannelStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/videos", []fiber.Handler{authMiddleware}, dashboardHandler.HandleGetChannelVideos)

	return nil
}
