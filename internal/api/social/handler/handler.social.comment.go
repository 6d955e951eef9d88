// Package socialhdl - các handler HTTP thuộc domain social.
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

// CommentHandler xử lý các request liên quan đến bình luận
type CommentHandler struct {
	*basehdl.BaseHandler[models.Comment]
	commentService *socialsvc.CommentService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := socialsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}

	return &CommentHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Comment](commentService),
		commentService: commentService,
	}, nil
}

// HandleAddComment thêm bình luận vào một video
// @Router /comments/:videoId [post]
func (h *CommentHandler) HandleAddComment(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := basehdl.GetIDFromContext(c, "videoId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input socialdto.CommentCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.AddComment(c.Context(), videoID, actor, &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponseWithStatus(c, common.StatusCreated, comment, "Thêm bình luận thành công")
		return nil
	})
}

// HandleGetVideoComments bình luận của một video (phân trang, kèm like)
// @Router /comments/:videoId [get]
func (h *CommentHandler) HandleGetVideoComments(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		videoID, err := basehdl.GetIDFromContext(c, "videoId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		viewer := basehdl.OptionalUserID(c)
		page, limit := basehdl.ParsePagination(c)

		result, err := h.commentService.GetVideoComments(c.Context(), videoID, viewer, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdateComment sửa nội dung bình luận
// @Router /comments/c/:commentId [patch]
func (h *CommentHandler) HandleUpdateComment(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := basehdl.GetIDFromContext(c, "commentId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input socialdto.CommentUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.UpdateComment(c.Context(), commentID, actor, &input)
		basehdl.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleDeleteComment xóa bình luận
// @Router /comments/c/:commentId [delete]
func (h *CommentHandler) HandleDeleteComment(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := basehdl.GetIDFromContext(c, "commentId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.commentService.DeleteComment(c.Context(), commentID, actor)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}
