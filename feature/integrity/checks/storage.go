package checks

import (
	"bytes"
	"context"
	"fmt"

	"hotel-indexer/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ProbeObject is written and removed again to prove the bucket is writable.
const ProbeObject = ".integrity-probe"

// StorageReport is the result of a bucket check.
type StorageReport struct {
	Bucket   string `json:"bucket"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
}

// CheckStorage reports whether the image bucket exists and accepts writes.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	if !exists {
		return report, nil
	}

	if _, err := client.PutObject(ctx, bucket, ProbeObject, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{}); err != nil {
		return report, nil
	}
	report.Writable = true

	if err := client.RemoveObject(ctx, bucket, ProbeObject, minio.RemoveObjectOptions{}); err != nil {
		return nil, fmt.Errorf("failed to remove probe object: %w", err)
	}
	return report, nil
}

// FixStorage creates the bucket.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}
