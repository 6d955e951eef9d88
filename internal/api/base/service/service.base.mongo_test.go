package basesvc

import "testing"

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	data := map[string]interface{}{"title": "Video mới", "views": 3}

	update, err := ToUpdateData(data)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update.Set == nil {
		t.Fatal("map thường phải được wrap trong $set")
	}
	if update.Set["title"] != "Video mới" {
		t.Errorf("Set[title] = %v, muốn %q", update.Set["title"], "Video mới")
	}
	if update.Unset != nil || update.Inc != nil {
		t.Error("các operator khác phải để trống")
	}
}

func TestToUpdateData_OperatorMapKeptAsIs(t *testing.T) {
	data := map[string]interface{}{
		"$set":   map[string]interface{}{"title": "Đổi tên"},
		"$inc":   map[string]interface{}{"views": 1},
		"$unset": map[string]interface{}{"description": ""},
	}

	update, err := ToUpdateData(data)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update.Set["title"] != "Đổi tên" {
		t.Errorf("Set[title] = %v, muốn %q", update.Set["title"], "Đổi tên")
	}
	// BSON round-trip trả số nguyên về dạng int32
	if got, ok := update.Inc["views"].(int32); !ok || got != 1 {
		t.Errorf("Inc[views] = %v, muốn 1", update.Inc["views"])
	}
	if _, ok := update.Unset["description"]; !ok {
		t.Error("Unset[description] phải được giữ lại")
	}
}

func TestToUpdateData_ExistingUpdateDataPassthrough(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"name": "x"}}

	update, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update != original {
		t.Error("con trỏ UpdateData phải được trả về nguyên vẹn")
	}

	byValue, err := ToUpdateData(UpdateData{Unset: map[string]interface{}{"name": ""}})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if _, ok := byValue.Unset["name"]; !ok {
		t.Error("UpdateData truyền theo giá trị phải giữ nguyên nội dung")
	}
}

func TestToUpdateData_StructWrappedInSet(t *testing.T) {
	input := struct {
		Title string `json:"title"`
	}{Title: "Từ struct"}

	update, err := ToUpdateData(input)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update.Set["title"] != "Từ struct" {
		t.Errorf("Set[title] = %v, muốn %q", update.Set["title"], "Từ struct")
	}
}
