package drafts

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-sync/feature/content/models"
)

// Handler exposes the draft store over HTTP.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the draft routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/drafts")
	group.Post("/queue", h.HandleQueue)
	group.Get("/", h.HandleLoad)
	group.Delete("/", h.HandleDiscard)
	group.Post("/flush", h.HandleFlush)
}

type queueRequest struct {
	Page    string                             `json:"page"`
	Section string                             `json:"section"`
	Fields  map[string]map[string]models.Value `json:"fields"`
}

// HandleQueue merges edits into the pending draft of a page section and
// restarts its autosave debounce window.
// @Summary Queue draft edits
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body queueRequest true "Draft edits"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /drafts/queue [post]
func (h *Handler) HandleQueue(c *fiber.Ctx) error {
	var req queueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Page == "" || req.Section == "" || len(req.Fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "page, section and fields are required"})
	}

	edits := Edits{}
	for field, langs := range req.Fields {
		for lang, value := range langs {
			if !models.IsLanguage(lang) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown language: " + lang})
			}
			edits.set(field, lang, value)
		}
	}

	h.service.Queue(req.Page, req.Section, edits)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "queued"})
}

// HandleLoad returns the persisted draft of one page section.
// @Summary Load a persisted draft
// @Tags drafts
// @Produce json
// @Param page query string true "Page slug"
// @Param section query string true "Section identifier"
// @Success 200 {object} Draft
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /drafts/ [get]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	page := c.Query("page")
	section := c.Query("section")
	if page == "" || section == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "page and section are required"})
	}

	draft, err := h.service.Load(c.Context(), page, section)
	if err != nil {
		h.logger.Error("draft load failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "draft load failed"})
	}
	if draft == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(draft)
}

// HandleDiscard drops pending edits and deletes the persisted drafts of one
// page section. Drafts are only ever discarded through this explicit call.
// @Summary Discard drafts
// @Tags drafts
// @Produce json
// @Param page query string true "Page slug"
// @Param section query string true "Section identifier"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /drafts/ [delete]
func (h *Handler) HandleDiscard(c *fiber.Ctx) error {
	page := c.Query("page")
	section := c.Query("section")
	if page == "" || section == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "page and section are required"})
	}

	if err := h.service.Discard(c.Context(), page, section); err != nil {
		h.logger.Error("draft discard failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "draft discard failed"})
	}
	return c.JSON(fiber.Map{"status": "discarded"})
}

// HandleFlush writes every pending draft immediately.
// @Summary Flush pending drafts
// @Tags drafts
// @Produce json
// @Success 200 {object} map[string]string
// @Router /drafts/flush [post]
func (h *Handler) HandleFlush(c *fiber.Ctx) error {
	h.service.Flush()
	return c.JSON(fiber.Map{"status": "flushed"})
}
