package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct thành bản đồ thông qua bson marshal,
// giữ nguyên các bson tag đã khai báo trên model.
// @params - struct cần chuyển đổi
// @returns - bản đồ và lỗi nếu có
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}
