package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/pkg/ai"
)

func post(t *testing.T, b behavior, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/chat/completions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := newApp(b).Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestCompletion(t *testing.T) {
	status, body := post(t, behavior{}, `{"model":"m","messages":[{"role":"system","content":"Rewrite"},{"role":"user","content":"led team"}]}`)
	require.Equal(t, 200, status)

	var out completionResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Choices, 1)
	assert.Equal(t, "m", out.Model)
	assert.Equal(t, "led team improved by 30%", ai.Sanitize(out.Choices[0].Message.Content))
}

func TestCompletionRejectsEmpty(t *testing.T) {
	status, _ := post(t, behavior{}, `{"messages":[]}`)
	assert.Equal(t, 400, status)
}

func TestCompletionFailMode(t *testing.T) {
	status, _ := post(t, behavior{fail: true}, `{"messages":[{"role":"user","content":"x"}]}`)
	assert.Equal(t, 500, status)
}
