package socialhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "clip_hub/internal/api/base/handler"
	socialdto "clip_hub/internal/api/social/dto"
	models "clip_hub/internal/api/social/models"
	socialsvc "clip_hub/internal/api/social/service"
	"clip_hub/internal/common"
)

// TweetHandler xử lý các request liên quan đến tweet
type TweetHandler struct {
	*basehdl.BaseHandler[models.Tweet]
	tweetService *socialsvc.TweetService
}

// NewTweetHandler tạo instance mới của TweetHandler
func NewTweetHandler() (*TweetHandler, error) {
	tweetService, err := socialsvc.NewTweetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create tweet service: %v", err)
	}

	return &TweetHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Tweet](tweetService),
		tweetService: tweetService,
	}, nil
}

// HandleCreateTweet tạo tweet mới
// @Router /tweets [post]
func (h *TweetHandler) HandleCreateTweet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input socialdto.TweetCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.tweetService.CreateTweet(c.Context(), actor, &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponseWithStatus(c, common.StatusCreated, tweet, "Tạo tweet thành công")
		return nil
	})
}

// HandleGetUserTweets tweet của một người dùng (phân trang, kèm like)
// @Router /tweets/user/:userId [get]
func (h *TweetHandler) HandleGetUserTweets(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := basehdl.GetIDFromContext(c, "userId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		viewer := basehdl.OptionalUserID(c)
		page, limit := basehdl.ParsePagination(c)

		result, err := h.tweetService.GetUserTweets(c.Context(), userID, viewer, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdateTweet sửa nội dung tweet
// @Router /tweets/:tweetId [patch]
func (h *TweetHandler) HandleUpdateTweet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		tweetID, err := basehdl.GetIDFromContext(c, "tweetId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input socialdto.TweetUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.tweetService.UpdateTweet(c.Context(), tweetID, actor, &input)
		basehdl.HandleResponse(c, tweet, err)
		return nil
	})
}

// HandleDeleteTweet xóa tweet
// @Router /tweets/:tweetId [delete]
func (h *TweetHandler) HandleDeleteTweet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		tweetID, err := basehdl.GetIDFromContext(c, "tweetId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.tweetService.DeleteTweet(c.Context(), tweetID, actor)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}
