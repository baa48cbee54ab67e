package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"**Led** the team", "Led the team"},
		{"## Summary\nBuilt things", "Summary\nBuilt things"},
		{"Here's the rewritten content for you: Built APIs", "Built APIs"},
		{"Grew revenue 30% YoY and cut latency by 45% for 2000 users", "Grew revenue 30% YoY and cut latency by 45% for 2000 users"},
		{"Saved 50%off costs", "Saved off costs"},
		{"Cut churn by 12%", "Cut churn by 12%"},
		{"  plain  ", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), tt.in)
	}
}

func TestSummaryContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "User is creating a resume", SummaryContext(domain.NewDocument()))

	doc := domain.NewDocument()
	doc.PersonalDetails.JobTitle = "Backend Engineer"
	doc.Experience = []domain.ExperienceEntry{
		{Role: "Engineer", Company: "Acme", StartDate: "2019", EndDate: "2021"},
		{Role: "Lead", Company: "Beta", StartDate: "2021", EndDate: "ignored", IsCurrent: true},
		{Role: "Intern", Company: "Gamma", StartDate: "2018"},
	}
	doc.Skills = []domain.SkillCategory{{Items: []string{"Go", "SQL"}}, {Items: []string{"AWS"}}}
	doc.Education = []domain.EducationEntry{{Degree: "BSc", Institution: "MIT"}}

	want := "Job Title: Backend Engineer\n" +
		"Experience: Engineer at Acme (2019 - 2021); Lead at Beta (2021 - Present); Intern at Gamma (2018 - Present)\n" +
		"Skills: Go, SQL, AWS\n" +
		"Education: BSc from MIT"
	assert.Equal(t, want, SummaryContext(doc))
}

type fakeCompleter struct {
	reply string
	err   error
	got   []Message
}

func (f *fakeCompleter) Complete(_ context.Context, m []Message) (string, error) {
	f.got = m
	return f.reply, f.err
}

func TestAssistantTransform(t *testing.T) {
	t.Parallel()

	f := &fakeCompleter{reply: "**Built** payment APIs"}
	a := NewAssistant(f)

	out, err := a.Transform(context.Background(), OpGrammar, "built payment apis")
	require.NoError(t, err)
	assert.Equal(t, "Built payment APIs", out)
	require.Len(t, f.got, 2)
	assert.Equal(t, RoleSystem, f.got[0].Role)
	assert.Equal(t, "Fix grammar and spelling errors in:\n\nbuilt payment apis", f.got[1].Content)

	_, err = a.Transform(context.Background(), "poetry", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = a.Transform(context.Background(), OpSummary, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f.err = ErrUnavailable
	_, err = a.Transform(context.Background(), OpEnhance, "x")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAssistantChatIsNotSanitized(t *testing.T) {
	t.Parallel()

	f := &fakeCompleter{reply: "## Tips\n**Use verbs**"}
	out, err := NewAssistant(f).Chat(context.Background(), "help")
	require.NoError(t, err)
	assert.Equal(t, "## Tips\n**Use verbs**", out)
}

func TestClientComplete(t *testing.T) {
	t.Parallel()

	var got completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL + "/", APIKey: "k", Model: "llama-3.1-8b-instant", Temperature: 0.7, MaxTokens: 1024})
	out, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, "llama-3.1-8b-instant", got.Model)
	assert.Equal(t, 1024, got.MaxTokens)
}

func TestClientFailsOnceWithoutRetry(t *testing.T) {
	t.Parallel()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(Options{BaseURL: srv.URL}).Complete(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, 1, calls)
}
