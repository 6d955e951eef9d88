// Package router đăng ký các route thuộc domain content: video, playlist.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "clip_hub/internal/api/content/handler"
	"clip_hub/internal/api/middleware"
	apirouter "clip_hub/internal/api/router"
)

// Register đăng ký các route content lên v1.
func Register(v1 fiber.Router) error {
	if err := registerVideoRoutes(v1); err != nil {
		return err
	}
	return registerPlaylistRoutes(v1)
}

func registerVideoRoutes(router fiber.Router) error {
	videoHandler, err := contenthdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("failed to create video handler: %w", err)
	}

	// Khám phá công khai: ẩn danh xem được; đăng nhập thì chủ kênh thấy
	// video chưa publish của mình và lượt xem được ghi vào lịch sử
	optionalAuth := middleware.OptionalAuthMiddleware()
	router.Get("/videos", videoHandler.HandleGetAllVideos)
	apirouter.RegisterRouteWithMiddleware(router, "/videos", "GET", "/:videoId", []fiber.Handler{optionalAuth}, videoHandler.HandleGetVideoById)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/videos", "POST", "/", []fiber.Handler{authMiddleware}, videoHandler.HandlePublishVideo)
	apirouter.RegisterRouteWithMiddleware(router, "/videos", "PATCH", "/:videoId", []fiber.Handler{authMiddleware}, videoHandler.HandleUpdateVideo)
	apirouter.RegisterRouteWithMiddleware(router, "/videos", "DELETE", "/:videoId", []fiber.Handler{authMiddleware}, videoHandler.HandleDeleteVideo)
	apirouter.RegisterRouteWithMiddleware(router, "/videos", "PATCH", "/toggle/publish/:videoId", []fiber.Handler{authMiddleware}, videoHandler.HandleTogglePublish)

	return nil
}

func registerPlaylistRoutes(router fiber.Router) error {
	playlistHandler, err := contenthdl.NewPlaylistHandler()
	if err != nil {
		return fmt.Errorf("failed to create playlist handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/playlists", "POST", "/", []fiber.Handler{authMiddleware}, playlistHandler.HandleCreatePlaylist)
	apirouter.RegisterRouteWithMiddleware(router, "/playlists", "GET", "/user/:userId", []fiber.Handler{authMiddleware}, playlistHandler.HandleGetUserPlaylists)
	apirouter.RegisterRouteWithMiddleware(router, "/playlists", "GET", "/:playlistId", []fiber.Handler{authMiddleware}, playlistHandler.HandleGetPlaylistById)
	apirouter.RegisterRouteWithMiddleware(router, "/playlists", "PATCH", "/:playlistId", []fiber.Handler{authMiddleware}, playlistHandler.HandleUpdatePlaylist)
	apirouter.RegisterRouteWithMiddleware(router, "/playlists", "DELETE", "/:playlistId", []fiber.Handler{authMiddleware}, playlistHandler.HandleDeletePlaylist)
	apirouter.RegisterRouteWithMiddleware(router, "/playlists", "PATCH", "/add/:videoId/:playlistId", []fiber.Handler{authMiddleware}, playlistHandler.HandleAddVideoToPlaylist)
	apirouter.RegisterRouteWithMiddleware(router, "/playlists", "PATCH", "/remove/:videoId/:playlistId", []fiber.Handler{authMiddleware}, playlistHandler.HandleRemoveVideoFromPlaylist)

	return nil
}
