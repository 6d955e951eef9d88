package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	models "clip_hub/internal/api/auth/models"
	authsvc "clip_hub/internal/api/auth/service"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
	"clip_hub/internal/logger"
	"clip_hub/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	// Khởi tạo cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	return &AuthManager{
		UserCRUD: userService,
		Cache:    utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// getCachedUser lấy user từ cache hoặc database theo ID
func (am *AuthManager) getCachedUser(ctx context.Context, userIDHex string) (models.User, error) {
	cacheKey := "auth_user:" + userIDHex

	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(models.User), nil
	}

	userID := utility.String2ObjectID(userIDHex)
	if userID.IsZero() {
		var zero models.User
		return zero, common.ErrTokenInvalid
	}

	user, err := am.UserCRUD.FindOneById(ctx, userID)
	if err != nil {
		var zero models.User
		return zero, err
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// InvalidateUser xóa user khỏi cache xác thực.
// Dùng khi người dùng đăng xuất hoặc đổi mật khẩu để phiên cũ hết hiệu lực ngay.
func (am *AuthManager) InvalidateUser(userIDHex string) {
	am.Cache.Delete("auth_user:" + userIDHex)
}

// extractBearerToken lấy token từ header Authorization, trả về chuỗi rỗng nếu không có
func extractBearerToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthMiddleware middleware xác thực cho Fiber.
// Yêu cầu access token hợp lệ; gắn user_id và user vào context khi thành công.
func AuthMiddleware() fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		token := extractBearerToken(c)
		if token == "" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := utility.ParseToken(token, global.MongoDB_ServerConfig.JwtAccessSecret)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		user, err := authManager.getCachedUser(c.Context(), claims.UserID)
		if err != nil {
			// Token hợp lệ nhưng user không còn tồn tại
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":    c.Path(),
				"user_id": claims.UserID,
			}).Warn("❌ [AUTH] User not found for valid token")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}
}

// OptionalAuthMiddleware xác thực nếu có token, cho qua ẩn danh nếu không.
// Dùng cho các route đọc công khai mà kết quả thay đổi theo người xem
// (vd: chủ kênh thấy video chưa publish của chính mình, isLiked/isSubscribed).
func OptionalAuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return c.Next()
		}

		claims, err := utility.ParseToken(token, global.MongoDB_ServerConfig.JwtAccessSecret)
		if err != nil {
			// Token hỏng hoặc hết hạn: xử lý như ẩn danh thay vì chặn request
			return c.Next()
		}

		user, err := authManager.getCachedUser(c.Context(), claims.UserID)
		if err != nil {
			return c.Next()
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}
}
