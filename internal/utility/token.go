package utility

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clip_hub/internal/common"
)

// TokenClaims là claims chuẩn của hệ thống cho cả access token và refresh token.
type TokenClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateToken tạo JWT ký bằng HMAC-SHA256.
//
// Parameters:
//   - userID: id người dùng (hex)
//   - secret: khóa ký
//   - ttl: thời gian sống của token
//
// Returns:
//   - chuỗi token đã ký và lỗi nếu có
func GenerateToken(userID string, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken xác thực chữ ký và thời hạn của token, trả về claims.
// Lỗi trả về luôn là lỗi chuẩn của hệ thống để handler ánh xạ trực tiếp.
func ParseToken(tokenString string, secret string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
