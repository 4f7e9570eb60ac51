package content

import (
	"content-sync/core/logger"
	"content-sync/core/notify"
	"content-sync/feature/content/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the content sync operations over HTTP.
type Handler struct {
	service  *Service
	notifier *notify.Notifier
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, notifier *notify.Notifier, log *zap.Logger) *Handler {
	return &Handler{service: service, notifier: notifier, logger: log}
}

// RegisterRoutes registers the content routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/content")
	group.Get("/status", h.HandleStatus)
	group.Get("/value", h.HandleGetValue)
	group.Post("/edits", h.HandleRecordEdit)
	group.Post("/save", h.HandleSave)
	group.Post("/resync", h.HandleResync)
	group.Get("/notifications", h.HandleNotifications)
}

// HandleStatus reports the dirty flag and pending-change count.
// @Summary Content sync status
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /content/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"dirty":     h.service.Dirty(),
		"pending":   h.service.PendingCount(),
		"loaded_at": h.service.LoadedAt(),
	})
}

// HandleGetValue reads one field value with primary-language fallback.
// @Summary Read a content value
// @Tags content
// @Produce json
// @Param page query string true "Page slug"
// @Param section query string true "Section name"
// @Param field query string true "Field name"
// @Param lang query string false "Language code"
// @Success 200 {object} map[string]interface{}
// @Router /content/value [get]
func (h *Handler) HandleGetValue(c *fiber.Ctx) error {
	page := c.Query("page")
	section := c.Query("section")
	field := c.Query("field")
	lang := c.Query("lang", models.PrimaryLanguage)

	if page == "" || section == "" || field == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "page, section and field are required",
		})
	}

	return c.JSON(fiber.Map{
		"value": h.service.GetValue(page, section, field, lang),
	})
}

type editRequest struct {
	Page     string       `json:"page"`
	Section  string       `json:"section"`
	Field    string       `json:"field"`
	Language string       `json:"language"`
	Value    models.Value `json:"value"`
}

// HandleRecordEdit records one local edit.
// @Summary Record a content edit
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /content/edits [post]
func (h *Handler) HandleRecordEdit(c *fiber.Ctx) error {
	var req editRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Page == "" || req.Section == "" || req.Field == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "page, section and field are required",
		})
	}

	if err := h.service.RecordEdit(req.Page, req.Section, req.Field, req.Language, req.Value); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"pending": h.service.PendingCount()})
}

// HandleSave drains the pending-change queue to the remote store.
// @Summary Save pending content edits
// @Tags content
// @Produce json
// @Success 200 {object} SaveResult
// @Router /content/save [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	result := h.service.Save(c.Context())
	if !result.OK() {
		l.Warn("save completed with failures",
			zap.Int("saved", result.Saved),
			zap.Int("skipped", len(result.Skipped)),
			zap.Int("failed", len(result.Failed)))
	}
	return c.JSON(result)
}

// HandleResync rebuilds remote content from the bundled fallback snapshot.
// @Summary Force a full content resync
// @Tags content
// @Produce json
// @Success 200 {object} ResyncResult
// @Failure 502 {object} map[string]string
// @Router /content/resync [post]
func (h *Handler) HandleResync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	result, err := h.service.Resync(c.Context())
	if err != nil {
		l.Error("resync failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// HandleNotifications returns the recent user-visible notifications.
// @Summary List recent notifications
// @Tags content
// @Produce json
// @Success 200 {array} notify.Notification
// @Router /content/notifications [get]
func (h *Handler) HandleNotifications(c *fiber.Ctx) error {
	return c.JSON(h.notifier.Recent())
}
