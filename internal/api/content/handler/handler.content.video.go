// Package contenthdl - handler video và danh sách phát.
package contenthdl

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	basehdl "clip_hub/internal/api/base/handler"
	basemodels "clip_hub/internal/api/base/models"
	contentdto "clip_hub/internal/api/content/dto"
	models "clip_hub/internal/api/content/models"
	contentsvc "clip_hub/internal/api/content/service"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
	"clip_hub/internal/utility"
)

// VideoHandler xử lý các request liên quan đến video
type VideoHandler struct {
	*basehdl.BaseHandler[models.Video]
	videoService *contentsvc.VideoService
}

// NewVideoHandler tạo instance mới của VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := contentsvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}

	return &VideoHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Video](videoService),
		videoService: videoService,
	}, nil
}

// uploadFormFile upload một file từ multipart form lên media storage
func uploadFormFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*basemodels.MediaAsset, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Không đọc được tệp upload",
			common.StatusBadRequest,
			nil,
		)
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := global.MediaStorage.Upload(ctx, f, fileHeader.Size, folder, fileHeader.Filename, contentType)
	if err != nil {
		return nil, err
	}

	return &basemodels.MediaAsset{URL: result.URL, StorageID: result.StorageID}, nil
}

// cleanupAssets xóa các tệp đã upload trong nền (dùng khi bước sau đó thất bại)
func cleanupAssets(assets ...*basemodels.MediaAsset) {
	for _, asset := range assets {
		if asset == nil || asset.StorageID == "" {
			continue
		}
		storageID := asset.StorageID
		go utility.GoProtect(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := global.MediaStorage.Delete(ctx, storageID); err != nil {
				logrus.WithField("storage_id", storageID).WithError(err).
					Warn("⚠️ Không xóa được tệp upload thừa")
			}
		})
	}
}

// HandlePublishVideo đăng video mới qua multipart form (videoFile + thumbnail bắt buộc)
// @Router /videos [post]
func (h *VideoHandler) HandlePublishVideo(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		owner, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)
		input := contentdto.VideoPublishInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Duration:    duration,
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationFail,
				common.StatusBadRequest,
				map[string]interface{}{"error": err.Error()},
			))
			return nil
		}

		videoFile, err := c.FormFile("videoFile")
		if err != nil || videoFile == nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tệp videoFile trong form",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		thumbnailFile, err := c.FormFile("thumbnail")
		if err != nil || thumbnailFile == nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tệp thumbnail trong form",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		videoAsset, err := uploadFormFile(c.Context(), videoFile, "videos")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		thumbAsset, err := uploadFormFile(c.Context(), thumbnailFile, "thumbnails")
		if err != nil {
			cleanupAssets(videoAsset)
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.videoService.PublishVideo(c.Context(), owner, &input, *videoAsset, *thumbAsset)
		if err != nil {
			cleanupAssets(videoAsset, thumbAsset)
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponseWithStatus(c, common.StatusCreated, video, "Đăng video thành công")
		return nil
	})
}

// HandleGetAllVideos danh sách video công khai với tìm kiếm/sắp xếp/phân trang
// @Router /videos [get]
func (h *VideoHandler) HandleGetAllVideos(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		query := contentdto.VideoListQuery{
			Query:    c.Query("query", ""),
			SortBy:   c.Query("sortBy", ""),
			SortType: c.Query("sortType", ""),
			UserID:   c.Query("userId", ""),
		}
		if err := global.Validate.Struct(&query); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationFail,
				common.StatusBadRequest,
				map[string]interface{}{"error": err.Error()},
			))
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.videoService.GetAllVideos(c.Context(), &query, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetVideoById lấy một video; tăng lượt xem và ghi lịch sử xem.
// Route dùng OptionalAuthMiddleware để chủ kênh xem được video chưa publish.
// @Router /videos/:videoId [get]
func (h *VideoHandler) HandleGetVideoById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		videoID, err := basehdl.GetIDFromContext(c, "videoId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		viewer := basehdl.OptionalUserID(c)
		video, err := h.videoService.GetVideoById(c.Context(), videoID, viewer)
		basehdl.HandleResponse(c, video, err)
		return nil
	})
}

// HandleUpdateVideo cập nhật title/description/thumbnail của video (chỉ chủ sở hữu)
// @Router /videos/:videoId [patch]
func (h *VideoHandler) HandleUpdateVideo(c fiber.Ctx) error {
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

		input := contentdto.VideoUpdateInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationFail,
				common.StatusBadRequest,
				map[string]interface{}{"error": err.Error()},
			))
			return nil
		}

		var thumbAsset *basemodels.MediaAsset
		if thumbFile, ferr := c.FormFile("thumbnail"); ferr == nil && thumbFile != nil {
			thumbAsset, err = uploadFormFile(c.Context(), thumbFile, "thumbnails")
			if err != nil {
				basehdl.HandleResponse(c, nil, err)
				return nil
			}
		}

		video, err := h.videoService.UpdateVideo(c.Context(), videoID, actor, &input, thumbAsset)
		if err != nil {
			cleanupAssets(thumbAsset)
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, video, nil)
		return nil
	})
}

// HandleDeleteVideo xóa video cùng dữ liệu liên quan (chỉ chủ sở hữu)
// @Router /videos/:videoId [delete]
func (h *VideoHandler) HandleDeleteVideo(c fiber.Ctx) error {
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

		err = h.videoService.DeleteVideo(c.Context(), videoID, actor)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleTogglePublish đảo trạng thái publish của video (chỉ chủ sở hữu)
// @Router /videos/toggle/publish/:videoId [patch]
func (h *VideoHandler) HandleTogglePublish(c fiber.Ctx) error {
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

		video, err := h.videoService.TogglePublishStatus(c.Context(), videoID, actor)
		basehdl.HandleResponse(c, video, err)
		return nil
	})
}
