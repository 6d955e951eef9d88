package models

// Giá trị phân trang mặc định. Limit vượt quá MaxLimit bị coi là
// không hợp lệ và quay về DefaultLimit thay vì bị cắt xuống MaxLimit.
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 1000
)

// NormalizeLimit chuẩn hóa limit: giá trị <= 0 hoặc >= MaxLimit quay về mặc định
func NormalizeLimit(limit int64) int64 {
	if limit <= 0 || limit >= MaxLimit {
		return DefaultLimit
	}
	return limit
}

// NormalizePage chuẩn hóa page trước khi biết tổng số trang: giá trị < 1 quay về 1
func NormalizePage(page int64) int64 {
	if page < 1 {
		return DefaultPage
	}
	return page
}

// ResolvePage chuẩn hóa page sau khi đã biết tổng số trang.
// Page vượt quá totalPages quay về trang 1, không phải trang cuối,
// để client nhận ra con trỏ phân trang đã trôi. Không có dữ liệu
// (totalPages = 0) thì page luôn là 1.
func ResolvePage(page int64, totalPages int64) int64 {
	page = NormalizePage(page)
	if page > totalPages {
		return DefaultPage
	}
	return page
}

// TotalPages tính tổng số trang. Không có dữ liệu thì tổng số trang là 0.
func TotalPages(total int64, limit int64) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// NewPaginateResult dựng kết quả phân trang hoàn chỉnh từ danh sách đã fetch.
// Docs không bao giờ là nil để client luôn nhận được mảng JSON.
func NewPaginateResult[T any](docs []T, total int64, page int64, limit int64) *PaginateResult[T] {
	if docs == nil {
		docs = []T{}
	}
	totalPages := TotalPages(total, limit)
	page = ResolvePage(page, totalPages)

	return &PaginateResult[T]{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       limit,
		Page:        page,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: totalPages > 0 && page < totalPages,
	}
}
