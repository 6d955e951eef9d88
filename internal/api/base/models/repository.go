// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang).
package models

// PaginateResult đại diện cho kết quả phân trang trả về cho client
type PaginateResult[T any] struct {
	// Danh sách các mục trong trang hiện tại
	Docs []T `json:"docs" bson:"docs"`
	// Tổng số mục thỏa điều kiện lọc
	TotalDocs int64 `json:"totalDocs" bson:"totalDocs"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Trang hiện tại (sau khi đã chuẩn hóa)
	Page int64 `json:"page" bson:"page"`
	// Tổng số trang
	TotalPages int64 `json:"totalPages" bson:"totalPages"`
	// Có trang trước hay không
	HasPrevPage bool `json:"hasPrevPage" bson:"hasPrevPage"`
	// Có trang sau hay không
	HasNextPage bool `json:"hasNextPage" bson:"hasNextPage"`
}
