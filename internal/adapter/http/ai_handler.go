package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/domain"
	"resume-builder/pkg/ai"
)

type textReq struct {
	Text string `json:"text"`
}

func (h *Handler) transform(op ai.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req textReq
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			return badRequest(c, "Text is required")
		}
		out, err := h.svc.Assistant.Transform(c.UserContext(), op, req.Text)
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "result": out})
	}
}

func (h *Handler) GenerateSummary(c *fiber.Ctx) error {
	doc := domain.NewDocument()
	if err := json.Unmarshal(c.Body(), &doc); err != nil {
		return badRequest(c, "invalid payload")
	}
	out, err := h.svc.Assistant.Summary(c.UserContext(), doc)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "summary": out})
}

type chatReq struct {
	Prompt string `json:"prompt"`
}

func (h *Handler) Chat(c *fiber.Ctx) error {
	var req chatReq
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		return badRequest(c, "Prompt is required")
	}
	reply, err := h.svc.Assistant.Chat(c.UserContext(), req.Prompt)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "reply": reply})
}

type analyzeReq struct {
	ResumeData json.RawMessage `json:"resumeData"`
}

func (h *Handler) AnalyzeResume(c *fiber.Ctx) error {
	var req analyzeReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	analysis, err := h.svc.Assistant.Analyze(c.UserContext(), req.ResumeData)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "analysis": analysis})
}

func (h *Handler) AIHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":          true,
		"service":          "AI API",
		"status":           "operational",
		"apiKeyConfigured": h.opts.AIConfigured,
	})
}
