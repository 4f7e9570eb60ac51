package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the ray ID in and out of the service.
const HeaderName = "X-Ray-ID"

// New returns a middleware that ensures every request carries a ray ID.
// An incoming ID is trusted and propagated; otherwise a fresh UUID is minted.
// The ID is stored in c.Locals("ray_id") for logger.WithRayID.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
