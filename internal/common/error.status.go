package common

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// =====================================================
// HTTP STATUS CODES
// =====================================================

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessable       = 422
	StatusFailedDependency    = 424
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

// =====================================================
// RESPONSE MESSAGES
// =====================================================

const (
	MsgSuccess             = "Thành công"
	MsgCreated             = "Tạo mới thành công"
	MsgBadRequest          = "Yêu cầu không hợp lệ"
	MsgUnauthorized        = "Chưa xác thực"
	MsgForbidden           = "Không có quyền truy cập"
	MsgNotFound            = "Không tìm thấy dữ liệu"
	MsgConflict            = "Dữ liệu đã tồn tại"
	MsgValidationFail      = "Dữ liệu không hợp lệ"
	MsgStorageUnavailable  = "Dịch vụ lưu trữ không khả dụng"
	MsgDatabaseUnavailable = "Cơ sở dữ liệu không khả dụng"
	MsgInternalError       = "Lỗi hệ thống"
)

// =====================================================
// ERROR CODES
// =====================================================

// ErrorCode định nghĩa mã lỗi có cấu trúc theo nhóm nghiệp vụ.
type ErrorCode struct {
	Code        string // Mã lỗi duy nhất, ví dụ: AUTH_001
	Category    string // Nhóm lỗi chính: AUTH, VAL, DB, STO, BIZ, SYS
	SubCategory string // Nhóm lỗi phụ (nếu có)
	Description string // Mô tả ngắn gọn về lỗi
}

var (
	// Nhóm lỗi hệ thống
	ErrCodeSystem = ErrorCode{Code: "SYS_001", Category: "SYS", Description: "Lỗi hệ thống không xác định"}

	// Nhóm lỗi xác thực
	ErrCodeAuthCredentials  = ErrorCode{Code: "AUTH_001", Category: "AUTH", SubCategory: "CREDENTIALS", Description: "Thông tin đăng nhập không đúng"}
	ErrCodeAuthToken        = ErrorCode{Code: "AUTH_002", Category: "AUTH", SubCategory: "TOKEN", Description: "Token không hợp lệ hoặc đã hết hạn"}
	ErrCodeAuthPermission   = ErrorCode{Code: "AUTH_003", Category: "AUTH", SubCategory: "PERMISSION", Description: "Không có quyền thực hiện thao tác"}

	// Nhóm lỗi dữ liệu đầu vào
	ErrCodeValidationInput  = ErrorCode{Code: "VAL_001", Category: "VAL", SubCategory: "INPUT", Description: "Dữ liệu đầu vào không hợp lệ"}
	ErrCodeValidationFormat = ErrorCode{Code: "VAL_002", Category: "VAL", SubCategory: "FORMAT", Description: "Định dạng dữ liệu không hợp lệ"}

	// Nhóm lỗi cơ sở dữ liệu
	ErrCodeDatabaseConnection = ErrorCode{Code: "DB_001", Category: "DB", SubCategory: "CONNECTION", Description: "Lỗi kết nối cơ sở dữ liệu"}
	ErrCodeDatabaseQuery      = ErrorCode{Code: "DB_002", Category: "DB", SubCategory: "QUERY", Description: "Lỗi truy vấn cơ sở dữ liệu"}
	ErrCodeDatabaseDuplicate  = ErrorCode{Code: "DB_003", Category: "DB", SubCategory: "DUPLICATE", Description: "Dữ liệu bị trùng lặp"}

	// Nhóm lỗi dịch vụ lưu trữ media
	ErrCodeStorageUpload      = ErrorCode{Code: "STO_001", Category: "STO", SubCategory: "UPLOAD", Description: "Lỗi tải tệp lên dịch vụ lưu trữ"}
	ErrCodeStorageDelete      = ErrorCode{Code: "STO_002", Category: "STO", SubCategory: "DELETE", Description: "Lỗi xóa tệp trên dịch vụ lưu trữ"}
	ErrCodeStorageUnavailable = ErrorCode{Code: "STO_003", Category: "STO", SubCategory: "HEALTH", Description: "Dịch vụ lưu trữ không phản hồi"}

	// Nhóm lỗi nghiệp vụ
	ErrCodeBusinessNotFound = ErrorCode{Code: "BIZ_001", Category: "BIZ", SubCategory: "NOT_FOUND", Description: "Không tìm thấy tài nguyên"}
	ErrCodeBusinessRule     = ErrorCode{Code: "BIZ_002", Category: "BIZ", SubCategory: "RULE", Description: "Vi phạm quy tắc nghiệp vụ"}
)

// =====================================================
// ERROR TYPE
// =====================================================

// Error là kiểu lỗi chuẩn của hệ thống, mang theo mã lỗi,
// thông điệp cho client và HTTP status code tương ứng.
type Error struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// Error trả về chuỗi mô tả lỗi, thỏa mãn interface error.
func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("[%s] %s (details: %v)", e.Code.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code.Code, e.Message)
}

// Is so sánh hai lỗi dựa trên mã lỗi, phục vụ errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code.Code == t.Code.Code
	}
	return false
}

// NewError tạo một lỗi chuẩn mới.
//
// Parameters:
//   - code: mã lỗi có cấu trúc
//   - message: thông điệp trả về cho client
//   - statusCode: HTTP status code tương ứng
//   - details: thông tin bổ sung (có thể nil)
func NewError(code ErrorCode, message string, statusCode int, details map[string]interface{}) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// =====================================================
// SENTINEL ERRORS
// =====================================================

var (
	// Lỗi nghiệp vụ chung
	ErrNotFound     = NewError(ErrCodeBusinessNotFound, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate    = NewError(ErrCodeDatabaseDuplicate, MsgConflict, StatusConflict, nil)
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationFail, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu trường dữ liệu bắt buộc", StatusBadRequest, nil)

	// Lỗi xác thực
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Thiếu token xác thực", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token không hợp lệ", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Token đã hết hạn", StatusUnauthorized, nil)
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Email hoặc mật khẩu không đúng", StatusUnauthorized, nil)
	ErrForbidden          = NewError(ErrCodeAuthPermission, MsgForbidden, StatusForbidden, nil)

	// Lỗi hạ tầng
	ErrMongoConnection    = NewError(ErrCodeDatabaseConnection, MsgDatabaseUnavailable, StatusServiceUnavailable, nil)
	ErrMongoQuery         = NewError(ErrCodeDatabaseQuery, "Lỗi truy vấn dữ liệu", StatusInternalServerError, nil)
	ErrMongoTimeout       = NewError(ErrCodeDatabaseQuery, "Truy vấn dữ liệu quá thời gian cho phép", StatusServiceUnavailable, nil)
	ErrStorageUpload      = NewError(ErrCodeStorageUpload, MsgStorageUnavailable, StatusFailedDependency, nil)
	ErrStorageDelete      = NewError(ErrCodeStorageDelete, MsgStorageUnavailable, StatusFailedDependency, nil)
	ErrStorageUnavailable = NewError(ErrCodeStorageUnavailable, MsgStorageUnavailable, StatusFailedDependency, nil)
)

// =====================================================
// MONGO ERROR CONVERSION
// =====================================================

// ConvertMongoError chuyển lỗi từ mongo-driver về lỗi chuẩn của hệ thống.
// Mọi tầng service gọi hàm này trước khi trả lỗi lên handler để client
// luôn nhận được mã lỗi và status code nhất quán.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Lỗi đã được chuẩn hóa thì giữ nguyên
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return ErrMongoTimeout
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoConnection
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch {
		case cmdErr.Code >= 100 && cmdErr.Code < 200:
			return NewError(ErrCodeDatabaseConnection, MsgDatabaseUnavailable, StatusServiceUnavailable,
				map[string]interface{}{"mongoCode": cmdErr.Code})
		case cmdErr.Code >= 200 && cmdErr.Code < 300:
			return NewError(ErrCodeAuthPermission, MsgForbidden, StatusForbidden,
				map[string]interface{}{"mongoCode": cmdErr.Code})
		default:
			return NewError(ErrCodeDatabaseQuery, "Lỗi truy vấn dữ liệu", StatusInternalServerError,
				map[string]interface{}{"mongoCode": cmdErr.Code})
		}
	}

	return NewError(ErrCodeSystem, MsgInternalError, StatusInternalServerError,
		map[string]interface{}{"error": err.Error()})
}
