// Package router đăng ký các route thuộc domain auth: tài khoản, phiên, kênh.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "clip_hub/internal/api/auth/handler"
	basehdl "clip_hub/internal/api/base/handler"
	"clip_hub/internal/api/middleware"
	apirouter "clip_hub/internal/api/router"
)

// Register đăng ký các route auth và system lên v1.
func Register(v1 fiber.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	return registerUserRoutes(v1)
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler := basehdl.NewSystemHandler()
	router.Get("/healthcheck", systemHandler.HandleHealth)
	return nil
}

func registerUserRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Route công khai
	router.Post("/users/register", userHandler.HandleRegister)
	router.Post("/users/login", userHandler.HandleLogin)
	router.Post("/users/refresh-token", userHandler.HandleRefreshToken)

	// Hồ sơ kênh công khai: ẩn danh xem được, đăng nhập thì có isSubscribed
	optionalAuth := middleware.OptionalAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/channel/:username", []fiber.Handler{optionalAuth}, userHandler.HandleGetChannelProfile)

	// Route yêu cầu đăng nhập
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/users", "POST", "/logout", []fiber.Handler{authMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "POST", "/change-password", []fiber.Handler{authMiddleware}, userHandler.HandleChangePassword)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/current-user", []fiber.Handler{authMiddleware}, userHandler.HandleGetCurrentUser)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "PATCH", "/update-account", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateAccount)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "PATCH", "/avatar", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateAvatar)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "PATCH", "/cover-image", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateCover)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/watch-history", []fiber.Handler{authMiddleware}, userHandler.HandleGetWatchHistory)

	return nil
}
