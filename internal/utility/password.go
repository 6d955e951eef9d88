package utility

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định
// @params - mật khẩu gốc
// @returns - chuỗi băm và lỗi nếu có
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu gốc với chuỗi băm đã lưu
// @params - chuỗi băm đã lưu, mật khẩu gốc
// @returns - true nếu khớp
func ComparePassword(hashed string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
