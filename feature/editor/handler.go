package editor

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the editor read composition over HTTP.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the editor routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/editor")
	group.Get("/section", h.HandleSection)
}

// HandleSection loads one page section for editing: page record, content
// rows and media rows with presigned URLs. Fetch never errors; failures
// arrive as the result's error message, and an unknown page as the
// page_not_found flag with status 404.
// @Summary Load a page section for editing
// @Tags editor
// @Produce json
// @Param page query string true "Page slug"
// @Param section query string true "Section identifier"
// @Success 200 {object} Result
// @Failure 400 {object} Result
// @Failure 404 {object} Result
// @Router /editor/section [get]
func (h *Handler) HandleSection(c *fiber.Ctx) error {
	result := h.service.Fetch(c.Context(), c.Query("page"), c.Query("section"))
	switch {
	case result.PageNotFound:
		return c.Status(fiber.StatusNotFound).JSON(result)
	case result.Error != "" && result.Page == nil:
		return c.Status(fiber.StatusBadRequest).JSON(result)
	default:
		return c.JSON(result)
	}
}
