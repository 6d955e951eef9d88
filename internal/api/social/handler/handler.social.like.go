package socialhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "clip_hub/internal/api/base/handler"
	models "clip_hub/internal/api/social/models"
	socialsvc "clip_hub/internal/api/social/service"
)

// LikeHandler xử lý các request liên quan đến like
type LikeHandler struct {
	*basehdl.BaseHandler[models.Like]
	likeService *socialsvc.LikeService
}

// NewLikeHandler tạo instance mới của LikeHandler
func NewLikeHandler() (*LikeHandler, error) {
	likeService, err := socialsvc.NewLikeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create like service: %v", err)
	}

	return &LikeHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Like](likeService),
		likeService: likeService,
	}, nil
}

// handleToggle đọc id từ param rồi toggle like trên loại đối tượng đã cho
func (h *LikeHandler) handleToggle(c fiber.Ctx, kind string, paramName string) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		targetID, err := basehdl.GetIDFromContext(c, paramName)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.likeService.ToggleLike(c.Context(), kind, targetID, actor)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleToggleVideoLike toggle like trên một video
// @Router /likes/toggle/v/:videoId [post]
func (h *LikeHandler) HandleToggleVideoLike(c fiber.Ctx) error {
	return h.handleToggle(c, models.LikeTargetVideo, "videoId")
}

// HandleToggleCommentLike toggle like trên một bình luận
// @Router /likes/toggle/c/:commentId [post]
func (h *LikeHandler) HandleToggleCommentLike(c fiber.Ctx) error {
	return h.handleToggle(c, models.LikeTargetComment, "commentId")
}

// HandleToggleTweetLike toggle like trên một tweet
// @Router /likes/toggle/t/:tweetId [post]
func (h *LikeHandler) HandleToggleTweetLike(c fiber.Ctx) error {
	return h.handleToggle(c, models.LikeTargetTweet, "tweetId")
}

// HandleGetLikedVideos các video người dùng đã like (phân trang)
// @Router /likes/videos [get]
func (h *LikeHandler) HandleGetLikedVideos(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.likeService.GetLikedVideos(c.Context(), actor, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}
