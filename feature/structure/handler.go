package structure

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the structure sync over HTTP.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the structure routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/structure")
	group.Get("/status", h.HandleStatus)
	group.Post("/refresh", h.HandleRefresh)
	group.Post("/sync", h.HandleSync)
}

// HandleStatus reports the sync state machine position and the last diff.
// @Summary Structure sync status
// @Tags structure
// @Produce json
// @Success 200 {object} State
// @Router /structure/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.State())
}

// HandleRefresh recomputes the manifest/remote page difference.
// @Summary Refresh the page diff
// @Tags structure
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string
// @Router /structure/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	result, err := h.service.Refresh(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"diff":  result,
		"state": h.service.State(),
	})
}

// HandleSync creates remote records for missing manifest pages.
// @Summary Sync missing pages
// @Tags structure
// @Produce json
// @Success 200 {object} State
// @Failure 502 {object} map[string]string
// @Router /structure/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	if err := h.service.Sync(c.Context()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.service.State())
}
