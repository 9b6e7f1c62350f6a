package media

import (
	"hotel-indexer/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	client  storage.Client
	handler *Handler
}

// NewFeature creates a new Media feature. Without a storage client the
// feature stays disabled.
func NewFeature(client storage.Client, cfg storage.Config, logger *zap.Logger) *Feature {
	return &Feature{
		client:  client,
		handler: NewHandler(NewService(client, cfg, logger)),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "media"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
