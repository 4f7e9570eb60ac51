package content

import (
	"content-sync/core/notify"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the content feature.
func NewFeature(store Store, logger *zap.Logger, notifier *notify.Notifier, cfg Config, fallback FallbackDoc) *Feature {
	svc := NewService(store, logger, notifier, cfg, fallback)
	h := NewHandler(svc, notifier, logger)
	return &Feature{service: svc, handler: h}
}

// Service exposes the underlying service for peers (cmd, editor feature).
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "content"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
