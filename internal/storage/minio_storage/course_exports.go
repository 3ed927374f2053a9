package minio_storage

import (
	"TubeCourse/internal/export"
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

type ExportStorage struct {
	storage      *MinioStorage
	bucket       string
	presignedTTL time.Duration
	now          func() time.Time
}

func NewExportStorage(ctx context.Context, storage *MinioStorage, bucketName string, presignedTTL time.Duration) (*ExportStorage, error) {
	if err := storage.EnsureBucket(ctx, bucketName); err != nil {
		return nil, err
	}
	return &ExportStorage{
		storage:      storage,
		bucket:       bucketName,
		presignedTTL: presignedTTL,
		now:          time.Now,
	}, nil
}

// objectKey keeps every upload of a course under its own prefix.
func objectKey(courseID, filename string, at time.Time) string {
	return fmt.Sprintf("courses/%s/%d-%s", courseID, at.UnixMilli(), filename)
}

func (s *ExportStorage) UploadExport(ctx context.Context, courseID string, file export.File) (string, error) {
	key := objectKey(courseID, file.Name, s.now())
	_, err := s.storage.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(file.Data),
		int64(len(file.Data)),
		minio.PutObjectOptions{ContentType: file.ContentType},
	)
	if err != nil {
		return "", err
	}
	return key, nil
}

// ExportURL presigns a download that saves under the export's file name.
func (s *ExportStorage) ExportURL(ctx context.Context, key string) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", fileName(key)))
	presignedURL, err := s.storage.client.PresignedGetObject(
		ctx,
		s.bucket,
		key,
		s.presignedTTL,
		reqParams,
	)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

// fileName strips the prefix objectKey adds.
func fileName(key string) string {
	base := path.Base(key)
	if _, name, ok := strings.Cut(base, "-"); ok {
		return name
	}
	return base
}
