package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"resume-builder/pkg/ai"
)

type completionRequest struct {
	Model    string       `json:"model"`
	Messages []ai.Message `json:"messages"`
}

type choice struct {
	Index        int        `json:"index"`
	Message      ai.Message `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

type completionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
}

func newApp(b behavior) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := func(c *fiber.Ctx) error {
		if b.delay > 0 {
			time.Sleep(b.delay)
		}
		if b.fail {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "mock failure"})
		}
		var req completionRequest
		if err := c.BodyParser(&req); err != nil || len(req.Messages) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "messages are required"})
		}
		return c.JSON(completionResponse{
			ID:      fmt.Sprintf("mock-%d", time.Now().UnixNano()),
			Object:  "chat.completion",
			Created: time.Now().Unix(),
			Model:   req.Model,
			Choices: []choice{{
				Message:      ai.Message{Role: "assistant", Content: reply(req.Messages)},
				FinishReason: "stop",
			}},
		})
	}
	app.Post("/v1/chat/completions", handler)
	app.Post("/chat/completions", handler)
	return app
}

// reply answers with the last user turn wrapped the way real models often
// decorate their output, so sanitizing can be observed end to end.
func reply(messages []ai.Message) string {
	var user string
	for _, m := range messages {
		if m.Role == "user" {
			user = m.Content
		}
	}
	return "Here's the rewritten content:\n**" + strings.TrimSpace(user) + "** improved by 30%"
}
