package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository/memory"
	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// minimalJSON passes every blocking check and leaves three warnings.
const minimalJSON = `{
	"title": "Backend",
	"personalDetails": {"fullName": "Jane Doe", "email": "jane@example.com", "phone": "+1 415 555 0101", "location": "Remote"},
	"experience": [{"role": "Engineer", "company": "Acme", "startDate": "2019", "endDate": "2021", "enabled": true}]
}`

func newResumes(t *testing.T) (*usecase.ResumeService, usecase.Repositories) {
	t.Helper()
	repos := memory.New()
	return usecase.NewResumeService(repos, discard()), repos
}

func create(t *testing.T, s *usecase.ResumeService, userID, raw string) *domain.Resume {
	t.Helper()
	r, err := s.Create(context.Background(), userID, json.RawMessage(raw))
	require.NoError(t, err)
	return r
}

func long(n int) string { return strings.Repeat("a", n) }
