package ai

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// VertexCompleter runs completions on a Vertex AI Gemini model. System
// messages become the model's system instruction.
type VertexCompleter struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

func NewVertexCompleter(ctx context.Context, project, location, model string, temperature float64, maxTokens int) (*VertexCompleter, error) {
	c, err := genai.NewClient(ctx, project, location)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}
	return &VertexCompleter{client: c, model: model, temperature: float32(temperature), maxTokens: int32(maxTokens)}, nil
}

func (v *VertexCompleter) Complete(ctx context.Context, messages []Message) (string, error) {
	m := v.client.GenerativeModel(v.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:     genai.Ptr(v.temperature),
		MaxOutputTokens: genai.Ptr(v.maxTokens),
	}

	var system []genai.Part
	var prompt []genai.Part
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			system = append(system, genai.Text(msg.Content))
			continue
		}
		prompt = append(prompt, genai.Text(msg.Content))
	}
	if len(system) > 0 {
		m.SystemInstruction = &genai.Content{Parts: system}
	}

	resp, err := m.GenerateContent(ctx, prompt...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

func (v *VertexCompleter) Close() error { return v.client.Close() }
