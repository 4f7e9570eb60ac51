package structure

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the structure feature. The manifest comes from
// cfg.ManifestPath when set, otherwise from the bundled copy.
func NewFeature(store PageStore, logger *zap.Logger, fs afero.Fs, cfg Config) (*Feature, error) {
	manifest, err := LoadManifest(fs, cfg.ManifestPath)
	if err != nil {
		return nil, err
	}
	svc := NewService(store, logger, fs, manifest, cfg)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}, nil
}

// Service exposes the underlying service for peers.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "structure"
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
