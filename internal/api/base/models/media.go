package models

// MediaAsset là tham chiếu tới một tệp media trên dịch vụ lưu trữ đối tượng.
// StorageID là object key, dùng để xóa tệp cũ khi thay thế.
type MediaAsset struct {
	URL       string `json:"url" bson:"url"`
	StorageID string `json:"storageId,omitempty" bson:"storageId,omitempty"`
}
