package basehdl

// Package basehdl chứa các handler cơ bản dùng chung cho các domain handler.
// Cung cấp helper parse request, phân trang và lấy thông tin người dùng từ context.

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "clip_hub/internal/api/base/models"
	basesvc "clip_hub/internal/api/base/service"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
	"clip_hub/internal/utility"
)

// BaseHandler là base handler cho các Fiber handler.
// Struct này sử dụng Generic Type để tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
type BaseHandler[T any] struct {
	BaseService basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T] {
	return &BaseHandler[T]{
		BaseService: baseService,
	}
}

// validateInput thực hiện validate dữ liệu đầu vào với validator từ global
func validateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			common.MsgValidationFail,
			common.StatusBadRequest,
			map[string]interface{}{"error": err.Error()},
		)
	}
	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
//
// Parameters:
// - c: Fiber context
// - input: Con trỏ tới struct sẽ chứa dữ liệu được parse
//
// Returns:
// - error: Lỗi nếu có trong quá trình parse hoặc validate
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			common.MsgValidationFail,
			common.StatusBadRequest,
			map[string]interface{}{"error": err.Error()},
		)
	}

	return validateInput(input)
}

// ParsePagination đọc page và limit từ query string và chuẩn hóa về khoảng hợp lệ.
// Giá trị không phải số hoặc ngoài khoảng đều quay về mặc định.
func ParsePagination(c fiber.Ctx) (page int64, limit int64) {
	page = utility.S2Int64(c.Query("page", ""), basemodels.DefaultPage)
	limit = utility.S2Int64(c.Query("limit", ""), basemodels.DefaultLimit)

	page = basemodels.NormalizePage(page)
	limit = basemodels.NormalizeLimit(limit)
	return page, limit
}

// GetIDFromContext lấy và parse một URI param thành ObjectID
// Parameters:
// - c: Fiber context
// - paramName: Tên param trên URI (vd: "id", "videoId")
//
// Returns:
// - primitive.ObjectID: ObjectID đã parse
// - error: Lỗi nếu param rỗng hoặc không đúng định dạng
func GetIDFromContext(c fiber.Ctx, paramName string) (primitive.ObjectID, error) {
	idStr := c.Params(paramName)
	if idStr == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu tham số "+paramName+" trên đường dẫn",
			common.StatusBadRequest,
			nil,
		)
	}

	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput,
			"Tham số "+paramName+" không đúng định dạng ObjectID",
			common.StatusBadRequest,
			nil,
		)
	}

	return id, nil
}

// RequireUserID lấy user ID đã được middleware xác thực gắn vào context.
// Trả về lỗi 401 nếu request chưa qua middleware xác thực.
func RequireUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	return userID, nil
}

// OptionalUserID lấy user ID từ context nếu có, trả về NilObjectID cho request ẩn danh.
// Dùng cho các route đọc công khai mà hành vi thay đổi theo người xem
// (vd: chủ kênh thấy video chưa publish của chính mình).
func OptionalUserID(c fiber.Ctx) primitive.ObjectID {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID
	}

	return userID
}
