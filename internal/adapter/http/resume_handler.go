package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/domain"
	"resume-builder/internal/editor"
)

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	list, err := h.svc.Resumes.List(c.UserContext(), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "resumes": list})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	r, err := h.svc.Resumes.Get(c.UserContext(), userID(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "resume": r})
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	r, err := h.svc.Resumes.Create(c.UserContext(), userID(c), json.RawMessage(c.Body()))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "resume": r})
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	r, err := h.svc.Resumes.Update(c.UserContext(), userID(c), c.Params("id"), json.RawMessage(c.Body()))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "resume": r})
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	if err := h.svc.Resumes.Delete(c.UserContext(), userID(c), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Deleted"})
}

type actionsReq struct {
	Commands []editor.Command `json:"commands"`
}

func (h *Handler) ApplyActions(c *fiber.Ctx) error {
	var req actionsReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	r, outcomes, err := h.svc.Resumes.Apply(c.UserContext(), userID(c), c.Params("id"), req.Commands)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "resume": r, "outcomes": outcomes})
}

func (h *Handler) ApplyTemplate(c *fiber.Ctx) error {
	r, err := h.svc.Resumes.ApplyTemplate(c.UserContext(), userID(c), c.Params("id"), c.Params("templateId"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "resume": r})
}

func (h *Handler) Export(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm", false)
	res, report, err := h.svc.Exports.Export(c.UserContext(), userID(c), c.Params("id"), confirmed)
	switch {
	case errors.Is(err, domain.ErrExportBlocked):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false, "message": "Please fix the issues before exporting", "issues": report.Issues, "report": report,
		})
	case errors.Is(err, domain.ErrConfirmationRequired):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false, "message": "Review the warnings and confirm the export", "warnings": report.Warnings, "report": report,
		})
	case err != nil:
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, attachment(res.FileName))
	return c.Send(res.PDF)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	html, err := h.svc.Exports.Preview(c.UserContext(), userID(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *Handler) PreviewCheck(c *fiber.Ctx) error {
	doc := domain.NewDocument()
	if err := json.Unmarshal(c.Body(), &doc); err != nil {
		return badRequest(c, "invalid payload")
	}
	return c.JSON(fiber.Map{"success": true, "report": h.svc.Exports.Check(doc)})
}

// attachment builds a Content-Disposition value with a quoted ASCII
// fallback and an RFC 6266 UTF-8 file name.
func attachment(name string) string {
	fallback := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, name)
	encoded := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, encoded)
}
