package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"hotel-indexer/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ImagePrefix is the object key prefix of uploaded images.
const ImagePrefix = "images/"

// ErrUnsupportedFormat is returned for files that are not jpeg or png images.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Service uploads images to object storage.
type Service struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewService creates a new media service.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{client: client, cfg: cfg, logger: logger}
}

// UploadImage stores an image under a fresh key and returns its public URL.
// The format is taken from the file extension of filename.
func (s *Service) UploadImage(ctx context.Context, filename string, body io.Reader, size int64) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := contentTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	key := ImagePrefix + uuid.NewString() + ext
	if _, err := s.client.PutObject(ctx, s.cfg.Bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	s.logger.Info("Uploaded image", zap.String("key", key), zap.Int64("size", size))
	return storage.ObjectURL(s.cfg, key), nil
}
