package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/domain"
	"resume-builder/pkg/ai"
)

type statusMessage struct {
	status  int
	message string
}

// errorStatus maps sentinels to a status and the message used when the
// error carries none of its own.
var errorStatus = []struct {
	err error
	statusMessage
}{
	{domain.ErrNotFound, statusMessage{fiber.StatusNotFound, "Not found"}},
	{domain.ErrInvalidCredentials, statusMessage{fiber.StatusBadRequest, "Invalid credentials"}},
	{domain.ErrAlreadyExists, statusMessage{fiber.StatusBadRequest, "Already exists"}},
	{domain.ErrInvalidInput, statusMessage{fiber.StatusBadRequest, ""}},
	{domain.ErrUnknownField, statusMessage{fiber.StatusBadRequest, ""}},
	{domain.ErrInvalidPermutation, statusMessage{fiber.StatusBadRequest, ""}},
	{domain.ErrForbidden, statusMessage{fiber.StatusForbidden, "Access denied. Admin only."}},
	{domain.ErrExportBlocked, statusMessage{fiber.StatusUnprocessableEntity, ""}},
	{domain.ErrConfirmationRequired, statusMessage{fiber.StatusConflict, ""}},
	{domain.ErrExportInProgress, statusMessage{fiber.StatusConflict, ""}},
	{domain.ErrExportFailed, statusMessage{fiber.StatusInternalServerError, "Export failed, please try again"}},
	{ai.ErrUnavailable, statusMessage{fiber.StatusBadGateway, ai.ErrUnavailable.Error()}},
}

func classify(err error) statusMessage {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			out := e.statusMessage
			var de *domain.Error
			if errors.As(err, &de) {
				out.message = de.Message
			} else if out.message == "" {
				out.message = err.Error()
			}
			return out
		}
	}
	return statusMessage{fiber.StatusInternalServerError, "Server error"}
}

// fail writes the error body. Unclassified errors are logged and hidden.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	sm := classify(err)
	if sm.status >= fiber.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.Path(), "error", err.Error())
	}
	return c.Status(sm.status).JSON(fiber.Map{"success": false, "message": sm.message})
}

func (h *Handler) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
	}
	return h.fail(c, err)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": message})
}
