package models

import "testing"

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		name  string
		input int64
		want  int64
	}{
		{"limit hợp lệ giữ nguyên", 25, 25},
		{"limit 0 quay về mặc định", 0, 10},
		{"limit âm quay về mặc định", -5, 10},
		{"limit bằng trần quay về mặc định", 1000, 10},
		{"limit vượt trần quay về mặc định", 5000, 10},
		{"limit sát dưới trần giữ nguyên", 999, 999},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeLimit(tc.input)
			if got != tc.want {
				t.Errorf("NormalizeLimit(%d) = %d, muốn %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestResolvePage(t *testing.T) {
	cases := []struct {
		name       string
		page       int64
		totalPages int64
		want       int64
	}{
		{"page trong khoảng giữ nguyên", 3, 5, 3},
		{"page bằng tổng số trang giữ nguyên", 5, 5, 5},
		{"page vượt tổng số trang quay về 1", 7, 5, 1},
		{"page 0 quay về 1", 0, 5, 1},
		{"page âm quay về 1", -2, 5, 1},
		{"không có dữ liệu vẫn giữ page 1", 1, 0, 1},
		{"không có dữ liệu page lớn quay về 1", 9, 0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolvePage(tc.page, tc.totalPages)
			if got != tc.want {
				t.Errorf("ResolvePage(%d, %d) = %d, muốn %d", tc.page, tc.totalPages, got, tc.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int64
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
	}

	for _, tc := range cases {
		got := TotalPages(tc.total, tc.limit)
		if got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, muốn %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestNewPaginateResult(t *testing.T) {
	t.Run("trang giữa có cả prev và next", func(t *testing.T) {
		docs := []int{1, 2, 3}
		result := NewPaginateResult(docs, 30, 2, 10)

		if result.Page != 2 {
			t.Errorf("Page = %d, muốn 2", result.Page)
		}
		if result.TotalPages != 3 {
			t.Errorf("TotalPages = %d, muốn 3", result.TotalPages)
		}
		if !result.HasPrevPage {
			t.Error("HasPrevPage phải là true ở trang giữa")
		}
		if !result.HasNextPage {
			t.Error("HasNextPage phải là true ở trang giữa")
		}
	})

	t.Run("không có dữ liệu", func(t *testing.T) {
		result := NewPaginateResult[int](nil, 0, 1, 10)

		if result.Docs == nil {
			t.Fatal("Docs không được là nil")
		}
		if len(result.Docs) != 0 {
			t.Errorf("Docs phải rỗng, có %d phần tử", len(result.Docs))
		}
		if result.TotalDocs != 0 || result.TotalPages != 0 {
			t.Errorf("TotalDocs = %d, TotalPages = %d, muốn 0 và 0", result.TotalDocs, result.TotalPages)
		}
		if result.HasPrevPage || result.HasNextPage {
			t.Error("HasPrevPage và HasNextPage phải là false khi không có dữ liệu")
		}
	})

	t.Run("không có dữ liệu và page lớn vẫn quay về 1", func(t *testing.T) {
		result := NewPaginateResult[int](nil, 0, 9, 10)

		if result.Page != 1 {
			t.Errorf("Page = %d, muốn 1 khi totalPages = 0", result.Page)
		}
		if result.HasPrevPage {
			t.Error("HasPrevPage phải là false với 0 bản ghi")
		}
	})

	t.Run("page vượt tổng số trang quay về 1", func(t *testing.T) {
		result := NewPaginateResult([]int{1}, 15, 9, 10)

		if result.Page != 1 {
			t.Errorf("Page = %d, muốn 1", result.Page)
		}
		if !result.HasNextPage {
			t.Error("HasNextPage phải là true khi quay về trang 1 và còn trang sau")
		}
		if result.HasPrevPage {
			t.Error("HasPrevPage phải là false ở trang 1")
		}
	})
}
