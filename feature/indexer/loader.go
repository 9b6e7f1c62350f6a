package indexer

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	runner  Runner
	handler *Handler
}

// NewFeature creates a new Indexer feature.
func NewFeature(runner Runner, secret string, logger *zap.Logger) *Feature {
	return &Feature{runner: runner, handler: NewHandler(runner, secret, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "indexer"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.runner != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
