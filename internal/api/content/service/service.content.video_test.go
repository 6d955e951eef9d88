package contentsvc

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	contentdto "clip_hub/internal/api/content/dto"
	"clip_hub/internal/common"
)

func TestBuildVideoSort(t *testing.T) {
	cases := []struct {
		name      string
		sortBy    string
		sortType  string
		wantKey   string
		wantOrder int
	}{
		{"mặc định theo lượt xem giảm dần", "", "", "views", -1},
		{"trường lạ quay về mặc định", "password", "asc", "views", -1},
		{"createdAt giảm dần", "createdAt", "desc", "createdAt", -1},
		{"createdAt tăng dần", "createdAt", "asc", "createdAt", 1},
		{"views tăng dần", "views", "asc", "views", 1},
		{"duration không ghi chiều thì tăng dần", "duration", "", "duration", 1},
		{"chiều sắp xếp lạ coi như tăng dần", "views", "descending", "views", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sort := BuildVideoSort(tc.sortBy, tc.sortType)
			if len(sort) != 1 {
				t.Fatalf("BuildVideoSort(%q, %q) trả về %d phần tử, muốn 1", tc.sortBy, tc.sortType, len(sort))
			}
			if sort[0].Key != tc.wantKey {
				t.Errorf("key = %q, muốn %q", sort[0].Key, tc.wantKey)
			}
			if got := sort[0].Value.(int); got != tc.wantOrder {
				t.Errorf("order = %d, muốn %d", got, tc.wantOrder)
			}
		})
	}
}

func TestBuildVideoMatch(t *testing.T) {
	t.Run("mặc định chỉ lọc video đã publish", func(t *testing.T) {
		match, err := BuildVideoMatch(&contentdto.VideoListQuery{})
		if err != nil {
			t.Fatalf("BuildVideoMatch rỗng trả về lỗi: %v", err)
		}
		if match["isPublished"] != true {
			t.Error("filter phải có isPublished = true")
		}
		if _, ok := match["$or"]; ok {
			t.Error("không có từ khóa thì không được sinh $or")
		}
	})

	t.Run("từ khóa tìm trên cả title và description", func(t *testing.T) {
		match, err := BuildVideoMatch(&contentdto.VideoListQuery{Query: "golang"})
		if err != nil {
			t.Fatalf("BuildVideoMatch trả về lỗi: %v", err)
		}

		or, ok := match["$or"].(bson.A)
		if !ok {
			t.Fatal("từ khóa phải sinh điều kiện $or")
		}
		if len(or) != 2 {
			t.Fatalf("$or có %d nhánh, muốn 2", len(or))
		}

		fields := make(map[string]bool)
		for _, branch := range or {
			for field := range branch.(bson.M) {
				fields[field] = true
			}
		}
		if !fields["title"] || !fields["description"] {
			t.Errorf("$or phải phủ title và description, có %v", fields)
		}
	})

	t.Run("userId hợp lệ lọc theo owner", func(t *testing.T) {
		ownerID := primitive.NewObjectID()
		match, err := BuildVideoMatch(&contentdto.VideoListQuery{UserID: ownerID.Hex()})
		if err != nil {
			t.Fatalf("BuildVideoMatch trả về lỗi: %v", err)
		}
		if match["owner"] != ownerID {
			t.Errorf("owner = %v, muốn %v", match["owner"], ownerID)
		}
	})

	t.Run("userId không hợp lệ trả về lỗi", func(t *testing.T) {
		_, err := BuildVideoMatch(&contentdto.VideoListQuery{UserID: "không-phải-objectid"})
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("BuildVideoMatch với userId hỏng = %v, muốn ErrInvalidInput", err)
		}
	})
}
