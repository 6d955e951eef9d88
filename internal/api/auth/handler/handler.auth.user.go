// Package authhdl - handler xác thực và quản lý tài khoản người dùng.
package authhdl

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authdto "clip_hub/internal/api/auth/dto"
	models "clip_hub/internal/api/auth/models"
	authsvc "clip_hub/internal/api/auth/service"
	basehdl "clip_hub/internal/api/base/handler"
	basemodels "clip_hub/internal/api/base/models"
	"clip_hub/internal/api/middleware"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
	"clip_hub/internal/utility"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User](userService),
		userService: userService,
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

// setAuthCookies gắn cặp token vào httpOnly cookie
func setAuthCookies(c fiber.Ctx, tokens *authdto.TokenPair) {
	cfg := global.MongoDB_ServerConfig
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    tokens.AccessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
		MaxAge:   cfg.JwtAccessExpiry,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    tokens.RefreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
		MaxAge:   cfg.JwtRefreshExpiry,
	})
}

// clearAuthCookies gỡ cookie xác thực
func clearAuthCookies(c fiber.Ctx) {
	c.ClearCookie("accessToken", "refreshToken")
}

// HandleRegister đăng ký người dùng mới qua multipart form (kèm avatar, ảnh bìa)
// @Router /users/register [post]
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := authdto.UserRegisterInput{
			Username: c.FormValue("username"),
			Email:    c.FormValue("email"),
			FullName: c.FormValue("fullName"),
			Password: c.FormValue("password"),
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

		var avatar, cover basemodels.MediaAsset

		avatarFile, err := c.FormFile("avatar")
		if err != nil || avatarFile == nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Avatar là bắt buộc khi đăng ký",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		avatarAsset, err := uploadFormFile(c.Context(), avatarFile, "avatars")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		avatar = *avatarAsset

		var coverAsset *basemodels.MediaAsset
		if coverFile, err := c.FormFile("coverImage"); err == nil && coverFile != nil {
			coverAsset, err = uploadFormFile(c.Context(), coverFile, "covers")
			if err != nil {
				cleanupAssets(avatarAsset)
				basehdl.HandleResponse(c, nil, err)
				return nil
			}
			cover = *coverAsset
		}

		user, err := h.userService.Register(c.Context(), &input, avatar, cover)
		if err != nil {
			// Đăng ký thất bại thì các tệp vừa upload trở thành rác
			cleanupAssets(avatarAsset, coverAsset)
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponseWithStatus(c, common.StatusCreated, user, "Đăng ký thành công")
		return nil
	})
}

// HandleLogin đăng nhập bằng username hoặc email
// @Router /users/login [post]
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, tokens, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		setAuthCookies(c, tokens)
		basehdl.HandleResponse(c, fiber.Map{
			"user":         user,
			"accessToken":  tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
		}, nil)
		return nil
	})
}

// HandleRefreshToken xoay vòng cặp token; nhận refresh token từ body hoặc cookie
// @Router /users/refresh-token [post]
func (h *UserHandler) HandleRefreshToken(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.RefreshTokenInput
		// Body rỗng vẫn hợp lệ khi token nằm trong cookie
		_ = basehdl.ParseRequestBody(c, &input)

		refreshToken := input.RefreshToken
		if refreshToken == "" {
			refreshToken = c.Cookies("refreshToken")
		}

		tokens, err := h.userService.RefreshAccessToken(c.Context(), refreshToken)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		setAuthCookies(c, tokens)
		basehdl.HandleResponse(c, tokens, nil)
		return nil
	})
}

// HandleLogout đăng xuất: gỡ refresh token, xóa cookie và vô hiệu hóa cache phiên
// @Router /users/logout [post]
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.Logout(c.Context(), userID); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		middleware.GetAuthManager().InvalidateUser(userID.Hex())
		clearAuthCookies(c)
		basehdl.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của người dùng hiện tại
// @Router /users/change-password [post]
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.ChangePasswordInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.ChangePassword(c.Context(), userID, &input)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetCurrentUser trả về thông tin người dùng hiện tại
// @Router /users/current-user [get]
func (h *UserHandler) HandleGetCurrentUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.FindOneById(c.Context(), userID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user.Password = ""
		user.RefreshToken = ""
		basehdl.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleUpdateAccount cập nhật fullName/email của người dùng hiện tại
// @Router /users/update-account [patch]
func (h *UserHandler) HandleUpdateAccount(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UpdateAccountInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.UpdateAccount(c.Context(), userID, &input)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateAvatar thay avatar; tệp cũ được dọn dẹp trong nền
// @Router /users/avatar [patch]
func (h *UserHandler) HandleUpdateAvatar(c fiber.Ctx) error {
	return h.handleUpdateMedia(c, "avatar", "avatars")
}

// HandleUpdateCover thay ảnh bìa; tệp cũ được dọn dẹp trong nền
// @Router /users/cover-image [patch]
func (h *UserHandler) HandleUpdateCover(c fiber.Ctx) error {
	return h.handleUpdateMedia(c, "coverImage", "covers")
}

func (h *UserHandler) handleUpdateMedia(c fiber.Ctx, formField string, folder string) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		fileHeader, err := c.FormFile(formField)
		if err != nil || fileHeader == nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tệp "+formField+" trong form",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		asset, err := uploadFormFile(c.Context(), fileHeader, folder)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var user models.User
		if formField == "avatar" {
			user, err = h.userService.ReplaceAvatar(c.Context(), userID, *asset)
		} else {
			user, err = h.userService.ReplaceCoverImage(c.Context(), userID, *asset)
		}
		if err != nil {
			cleanupAssets(asset)
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleGetChannelProfile trả về hồ sơ kênh công khai theo username.
// Route dùng OptionalAuthMiddleware: viewer đăng nhập sẽ thấy isSubscribed.
// @Router /users/channel/:username [get]
func (h *UserHandler) HandleGetChannelProfile(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		username := c.Params("username")
		viewer := basehdl.OptionalUserID(c)

		profile, err := h.userService.GetUserChannelProfile(c.Context(), username, viewer)
		basehdl.HandleResponse(c, profile, err)
		return nil
	})
}

// HandleGetWatchHistory trả về lịch sử xem của người dùng hiện tại (phân trang)
// @Router /users/watch-history [get]
func (h *UserHandler) HandleGetWatchHistory(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := basehdl.RequireUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.userService.GetWatchHistory(c.Context(), userID, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}
