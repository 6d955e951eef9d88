package contenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "clip_hub/internal/api/base/handler"
	contentdto "clip_hub/internal/api/content/dto"
	models "clip_hub/internal/api/content/models"
	contentsvc "clip_hub/internal/api/content/service"
	"clip_hub/internal/common"
)

// PlaylistHandler xử lý các request liên quan đến danh sách phát
type PlaylistHandler struct {
	*basehdl.BaseHandler[models.Playlist]
	playlistService *contentsvc.PlaylistService
}

// NewPlaylistHandler tạo instance mới của PlaylistHandler
func NewPlaylistHandler() (*PlaylistHandler, error) {
	playlistService, err := contentsvc.NewPlaylistService()
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist service: %v", err)
	}

	return &PlaylistHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Playlist](playlistService),
		playlistService: playlistService,
	}, nil
}

// HandleCreatePlaylist tạo danh sách phát mới
// @Router /playlists [post]
func (h *PlaylistHandler) HandleCreatePlaylist(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		owner, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input contentdto.PlaylistCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.CreatePlaylist(c.Context(), owner, &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponseWithStatus(c, common.StatusCreated, playlist, "Tạo danh sách phát thành công")
		return nil
	})
}

// HandleGetUserPlaylists danh sách phát của một người dùng (phân trang)
// @Router /playlists/user/:userId [get]
func (h *PlaylistHandler) HandleGetUserPlaylists(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := basehdl.GetIDFromContext(c, "userId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.playlistService.GetUserPlaylists(c.Context(), userID, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetPlaylistById một danh sách phát kèm video đã join
// @Router /playlists/:playlistId [get]
func (h *PlaylistHandler) HandleGetPlaylistById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		playlistID, err := basehdl.GetIDFromContext(c, "playlistId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.GetPlaylistById(c.Context(), playlistID)
		basehdl.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleUpdatePlaylist cập nhật tên/mô tả danh sách phát (chỉ chủ sở hữu)
// @Router /playlists/:playlistId [patch]
func (h *PlaylistHandler) HandleUpdatePlaylist(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := basehdl.GetIDFromContext(c, "playlistId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input contentdto.PlaylistUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.UpdatePlaylist(c.Context(), playlistID, actor, &input)
		basehdl.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleDeletePlaylist xóa danh sách phát (chỉ chủ sở hữu)
// @Router /playlists/:playlistId [delete]
func (h *PlaylistHandler) HandleDeletePlaylist(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := basehdl.GetIDFromContext(c, "playlistId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.playlistService.DeletePlaylist(c.Context(), playlistID, actor)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleAddVideoToPlaylist thêm video vào danh sách phát (chỉ chủ sở hữu, không trùng)
// @Router /playlists/add/:videoId/:playlistId [patch]
func (h *PlaylistHandler) HandleAddVideoToPlaylist(c fiber.Ctx) error {
	return h.handlePlaylistVideo(c, true)
}

// HandleRemoveVideoFromPlaylist gỡ video khỏi danh sách phát (chỉ chủ sở hữu)
// @Router /playlists/remove/:videoId/:playlistId [patch]
func (h *PlaylistHandler) HandleRemoveVideoFromPlaylist(c fiber.Ctx) error {
	return h.handlePlaylistVideo(c, false)
}

func (h *PlaylistHandler) handlePlaylistVideo(c fiber.Ctx, add bool) error {
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
		playlistID, err := basehdl.GetIDFromContext(c, "playlistId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var playlist models.Playlist
		if add {
			playlist, err = h.playlistService.AddVideoToPlaylist(c.Context(), playlistID, videoID, actor)
		} else {
			playlist, err = h.playlistService.RemoveVideoFromPlaylist(c.Context(), playlistID, videoID, actor)
		}
		basehdl.HandleResponse(c, playlist, err)
		return nil
	})
}
