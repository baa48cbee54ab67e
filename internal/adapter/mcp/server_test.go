package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func call(t *testing.T, h handler, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text, res.IsError
}

func decode(t *testing.T, text string) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	return out
}

func TestValidateEmailTool(t *testing.T) {
	s := New("test")

	text, isErr := call(t, s.validateEmail, map[string]any{"email": "jane@gmial.com"})
	require.False(t, isErr)
	out := decode(t, text)
	assert.Equal(t, true, out["valid"])
	assert.Equal(t, "jane@gmail.com", out["suggested"])

	_, isErr = call(t, s.validateEmail, map[string]any{})
	assert.True(t, isErr)
}

func TestValidateDateRangeTool(t *testing.T) {
	s := New("test")

	text, _ := call(t, s.validateDateRange, map[string]any{"start": "2020", "end": "2019"})
	out := decode(t, text)
	assert.Equal(t, false, out["valid"])
	assert.Equal(t, "End date must be after start date", out["error"])

	text, _ = call(t, s.validateDateRange, map[string]any{"start": "01/2020", "isCurrent": true})
	assert.Equal(t, true, decode(t, text)["valid"])
}

func TestScoreSectionTool(t *testing.T) {
	s := New("test")

	text, isErr := call(t, s.scoreSection, map[string]any{
		"section": "education",
		"data":    `{"institution": "MIT", "degree": "BSc"}`,
	})
	require.False(t, isErr)
	out := decode(t, text)
	assert.Equal(t, float64(80), out["score"])
	assert.Equal(t, []any{"Add dates"}, out["feedback"])

	_, isErr = call(t, s.scoreSection, map[string]any{"section": "hobbies", "data": "{}"})
	assert.True(t, isErr)
	_, isErr = call(t, s.scoreSection, map[string]any{"section": "skills", "data": "{}"})
	assert.True(t, isErr)
}

func TestCheckExportReadinessTool(t *testing.T) {
	s := New("test")

	text, isErr := call(t, s.checkExportReadiness, map[string]any{"document": `{}`})
	require.False(t, isErr)
	out := decode(t, text)
	assert.Equal(t, "blocked", out["decision"])
	assert.Len(t, out["issues"], 5)

	_, isErr = call(t, s.checkExportReadiness, map[string]any{"document": `not json`})
	assert.True(t, isErr)
}
