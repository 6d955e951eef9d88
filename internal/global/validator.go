package global

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = Validate.RegisterValidation("objectid", validateObjectID)
	_ = Validate.RegisterValidation("sort_order", validateSortOrder)
}

// validateNoXSS kiểm tra XSS trong các trường văn bản người dùng nhập
// (tiêu đề video, nội dung bình luận, tweet, ...)
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateStrongPassword kiểm tra mật khẩu mạnh:
// tối thiểu 8 ký tự và ít nhất 3 trong 4 nhóm (hoa, thường, số, ký tự đặc biệt)
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	if len(value) < 8 {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	conditions := 0
	if hasUpper {
		conditions++
	}
	if hasLower {
		conditions++
	}
	if hasNumber {
		conditions++
	}
	if hasSpecial {
		conditions++
	}

	return conditions >= 3
}

// validateObjectID kiểm tra chuỗi có phải ObjectID hex hợp lệ hay không.
// Chuỗi rỗng được bỏ qua (dùng kèm omitempty cho trường optional).
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

// validateSortOrder kiểm tra thứ tự sắp xếp
func validateSortOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "asc", "desc":
		return true
	}
	return false
}
