// Package router đăng ký các route thuộc domain social: comment, tweet,
// like, subscription.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"clip_hub/internal/api/middleware"
	apirouter "clip_hub/internal/api/router"
	socialhdl "clip_hub/internal/api/social/handler"
)

// Register đăng ký các route social lên v1.
func Register(v1 fiber.Router) error {
	if err := registerCommentRoutes(v1); err != nil {
		return err
	}
	if err := registerTweetRoutes(v1); err != nil {
		return err
	}
	if err := registerLikeRoutes(v1); err != nil {
		return err
	}
	return registerSubscriptionRoutes(v1)
}

func registerCommentRoutes(router fiber.Router) error {
	commentHandler, err := socialhdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("failed to create comment handler: %w", err)
	}

	// Đọc bình luận công khai; đăng nhập thì isLiked phản ánh người xem
	optionalAuth := middleware.OptionalAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/comments", "GET", "/:videoId", []fiber.Handler{optionalAuth}, commentHandler.HandleGetVideoComments)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/comments", "POST", "/:videoId", []fiber.Handler{authMiddleware}, commentHandler.HandleAddComment)
	apirouter.RegisterRouteWithMiddleware(router, "/comments", "PATCH", "/c/:commentId", []fiber.Handler{authMiddleware}, commentHandler.HandleUpdateComment)
	apirouter.RegisterRouteWithMiddleware(router, "/comments", "DELETE", "/c/:commentId", []fiber.Handler{authMiddleware}, commentHandler.HandleDeleteComment)

	return nil
}

func registerTweetRoutes(router fiber.Router) error {
	tweetHandler, err := socialhdl.NewTweetHandler()
	if err != nil {
		return fmt.Errorf("failed to create tweet handler: %w", err)
	}

	optionalAuth := middleware.OptionalAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/tweets", "GET", "/user/:userId", []fiber.Handler{optionalAuth}, tweetHandler.HandleGetUserTweets)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/tweets", "POST", "/", []fiber.Handler{authMiddleware}, tweetHandler.HandleCreateTweet)
	apirouter.RegisterRouteWithMiddleware(router, "/tweets", "PATCH", "/:tweetId", []fiber.Handler{authMiddleware}, tweetHandler.HandleUpdateTweet)
	apirouter.RegisterRouteWithMiddleware(router, "/tweets", "DELETE", "/:tweetId", []fiber.Handler{authMiddleware}, tweetHandler.HandleDeleteTweet)

	return nil
}

func registerLikeRoutes(router fiber.Router) error {
	likeHandler, err := socialhdl.NewLikeHandler()
	if err != nil {
		return fmt.Errorf("failed to create like handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/likes", "POST", "/toggle/v/:videoId", []fiber.Handler{authMiddleware}, likeHandler.HandleToggleVideoLike)
	apirouter.RegisterRouteWithMiddleware(router, "/likes", "POST", "/toggle/c/:commentId", []fiber.Handler{authMiddleware}, likeHandler.HandleToggleCommentLike)
	apirouter.RegisterRouteWithMiddleware(router, "/likes", "POST", "/toggle/t/:tweetId", []fiber.Handler{authMiddleware}, likeHandler.HandleToggleTweetLike)
	apirouter.RegisterRouteWithMiddleware(router, "/likes", "GET", "/videos", []fiber.Handler{authMiddleware}, likeHandler.HandleGetLikedVideos)

	return nil
}

func registerSubscriptionRoutes(router fiber.Router) error {
	subscriptionHandler, err := socialhdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscription handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/subscriptions", "POST", "/c/:channelId", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleToggleSubscription)
	apirouter.RegisterRouteWithMiddleware(router, "/subscriptions", "GET", "/c/:channelId", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleGetChannelSubscribers)
	apirouter.RegisterRouteWithMiddleware(router, "/subscriptions", "GET", "/u/:subscriberId", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleGetSubscribedChannels)

	return nil
}
