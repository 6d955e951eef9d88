// Package storage bao bọc dịch vụ lưu trữ media S3-compatible (MinIO).
// Video, thumbnail, avatar và ảnh bìa đều được đẩy lên đây; database chỉ
// lưu URL công khai và storageId để xóa về sau.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"clip_hub/config"
	"clip_hub/internal/common"
	"clip_hub/internal/logger"
)

// MediaStorage là client lưu trữ media dùng chung cho toàn ứng dụng
type MediaStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// UploadResult chứa thông tin tệp sau khi upload thành công
type UploadResult struct {
	URL       string `json:"url"`       // URL công khai của tệp
	StorageID string `json:"storageId"` // Object key, dùng để xóa tệp về sau
}

// NewMediaStorage tạo client lưu trữ từ cấu hình và đảm bảo bucket tồn tại
func NewMediaStorage(cfg *config.Configuration) (*MediaStorage, error) {
	client, err := minio.New(cfg.Storage_Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage_AccessKey, cfg.Storage_SecretKey, ""),
		Secure: cfg.Storage_UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	publicURL := cfg.Storage_PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.Storage_UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Storage_Endpoint)
	}

	s := &MediaStorage{
		client:    client,
		bucket:    cfg.Storage_Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"endpoint": cfg.Storage_Endpoint,
		"bucket":   cfg.Storage_Bucket,
	}).Info("✅ Media storage initialized")

	return s, nil
}

// ensureBucket tạo bucket nếu chưa tồn tại
func (s *MediaStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
		logger.GetAppLogger().Infof("Bucket %s chưa tồn tại, tạo mới.", s.bucket)
	}
	return nil
}

// Upload đẩy một tệp lên bucket dưới folder cho trước.
// Object key được sinh từ uuid để không bao giờ đụng tên.
//
// Parameters:
//   - folder: nhóm tệp ("videos", "thumbnails", "avatars", "covers")
//   - filename: tên tệp gốc, chỉ dùng lấy phần mở rộng
//   - contentType: MIME type của tệp
func (s *MediaStorage) Upload(ctx context.Context, reader io.Reader, size int64, folder string, filename string, contentType string) (*UploadResult, error) {
	ext := path.Ext(filename)
	objectName := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.WithModule("storage").WithError(err).WithField("object", objectName).Error("❌ Upload failed")
		return nil, common.ErrStorageUpload
	}

	return &UploadResult{
		URL:       fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName),
		StorageID: objectName,
	}, nil
}

// Delete xóa một tệp theo storageId. Thao tác là idempotent:
// xóa tệp không tồn tại không trả lỗi.
func (s *MediaStorage) Delete(ctx context.Context, storageID string) error {
	if storageID == "" {
		return nil
	}
	err := s.client.RemoveObject(ctx, s.bucket, storageID, minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return nil
		}
		logger.WithModule("storage").WithError(err).WithField("object", storageID).Error("❌ Delete failed")
		return common.ErrStorageDelete
	}
	return nil
}

// Ping kiểm tra dịch vụ lưu trữ có phản hồi hay không (dùng cho healthcheck)
func (s *MediaStorage) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil || !exists {
		return common.ErrStorageUnavailable
	}
	return nil
}
