package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/auth"
)

const claimsKey = "claims"

func (h *Handler) requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	h.logger.Info("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start).String(),
		"request_id", c.Locals("requestid"),
	)
	return err
}

func bearer(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": message})
}

func (h *Handler) requireAuth(c *fiber.Ctx) error {
	token := bearer(c)
	if token == "" {
		return unauthorized(c, "Unauthorized")
	}
	claims, err := h.svc.Tokens.Parse(token)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}
	c.Locals(claimsKey, claims)
	return c.Next()
}

// requireAdmin checks the role stored on the account, not the one in the
// token, so a demotion takes effect immediately.
func (h *Handler) requireAdmin(c *fiber.Ctx) error {
	token := bearer(c)
	if token == "" {
		return unauthorized(c, "No token provided")
	}
	claims, err := h.svc.Tokens.Parse(token)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}
	u, err := h.svc.Users.Get(c.UserContext(), claims.ID)
	if err != nil || !u.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Access denied. Admin only."})
	}
	c.Locals(claimsKey, claims)
	return c.Next()
}

func userID(c *fiber.Ctx) string {
	if claims, ok := c.Locals(claimsKey).(*auth.Claims); ok {
		return claims.ID
	}
	return ""
}
