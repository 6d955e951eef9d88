package utility

import (
	"errors"
	"testing"
	"time"

	"clip_hub/internal/common"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := "test-secret"
	userID := "64f1b2c3d4e5f60718293a4b"

	tokenString, err := GenerateToken(userID, secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	claims, err := ParseToken(tokenString, secret)
	if err != nil {
		t.Fatalf("ParseToken lỗi: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %q, muốn %q", claims.UserID, userID)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateToken("user1", "secret-a", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	_, err = ParseToken(tokenString, "secret-b")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("sai secret phải trả về ErrTokenInvalid, nhận %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	tokenString, err := GenerateToken("user1", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	_, err = ParseToken(tokenString, "secret")
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("token hết hạn phải trả về ErrTokenExpired, nhận %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("không-phải-jwt", "secret")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("chuỗi rác phải trả về ErrTokenInvalid, nhận %v", err)
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hashed == "MatKhau@123" {
		t.Fatal("mật khẩu không được lưu dạng plaintext")
	}

	if !ComparePassword(hashed, "MatKhau@123") {
		t.Error("mật khẩu đúng phải khớp")
	}
	if ComparePassword(hashed, "MatKhauSai") {
		t.Error("mật khẩu sai không được khớp")
	}
}
