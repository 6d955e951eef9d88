package socialhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "clip_hub/internal/api/base/handler"
	models "clip_hub/internal/api/social/models"
	socialsvc "clip_hub/internal/api/social/service"
)

// SubscriptionHandler xử lý các request liên quan đến đăng ký kênh
type SubscriptionHandler struct {
	*basehdl.BaseHandler[models.Subscription]
	subscriptionService *socialsvc.SubscriptionService
}

// NewSubscriptionHandler tạo instance mới của SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := socialsvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}

	return &SubscriptionHandler{
		BaseHandler:         basehdl.NewBaseHandler[models.Subscription](subscriptionService),
		subscriptionService: subscriptionService,
	}, nil
}

// HandleToggleSubscription toggle đăng ký một kênh
// @Router /subscriptions/c/:channelId [post]
func (h *SubscriptionHandler) HandleToggleSubscription(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		channelID, err := basehdl.GetIDFromContext(c, "channelId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.subscriptionService.ToggleSubscription(c.Context(), channelID, actor)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetChannelSubscribers người đăng ký của một kênh.
// Chủ kênh nhận danh sách phân trang; người khác chỉ nhận tổng số.
// @Router /subscriptions/c/:channelId [get]
func (h *SubscriptionHandler) HandleGetChannelSubscribers(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		channelID, err := basehdl.GetIDFromContext(c, "channelId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.subscriptionService.GetUserChannelSubscribers(c.Context(), channelID, actor, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetSubscribedChannels các kênh mà một người dùng theo dõi (phân trang)
// @Router /subscriptions/u/:subscriberId [get]
func (h *SubscriptionHandler) HandleGetSubscribedChannels(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		subscriberID, err := basehdl.GetIDFromContext(c, "subscriberId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.subscriptionService.GetSubscribedChannels(c.Context(), subscriberID, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}
