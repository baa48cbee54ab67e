package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK", "timestamp": time.Now().UnixMilli()})
}

func (h *Handler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

// Ready reports whether the repository driver answers.
func (h *Handler) Ready(c *fiber.Ctx) error {
	if h.svc.Ping != nil {
		if err := h.svc.Ping(c.UserContext()); err != nil {
			h.logger.Warn("readiness check failed", "error", err.Error())
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
