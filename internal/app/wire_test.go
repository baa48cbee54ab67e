package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/storage"
	"resume-builder/internal/config"
)

func TestOpenRepositoriesMemory(t *testing.T) {
	repos, closeFn, err := OpenRepositories(context.Background(), config.DatabaseConfig{Driver: config.DriverMemory}, NewLogger(io.Discard, 0))
	require.NoError(t, err)
	defer closeFn()

	require.NotNil(t, repos.Resumes)
	require.NoError(t, repos.Ping(context.Background()))
}

func TestOpenArchiveNone(t *testing.T) {
	archive, keyFor, closeFn, err := OpenArchive(context.Background(), config.StorageConfig{Driver: config.StorageNone, Prefix: "pdfs"})
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, storage.Nop{}, archive)
	key := keyFor("u1", "Jane_Resume.pdf", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(key, "pdfs/u1/2024/03/09/"), key)
	assert.True(t, strings.HasSuffix(key, "/Jane_Resume.pdf"), key)
}

func TestNewAssistantOpenAI(t *testing.T) {
	cfg := config.NewDefaultConfig().AI
	a, closeFn, err := NewAssistant(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, a)
}

func TestRunRequiresConfig(t *testing.T) {
	err := Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")
}

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, 0).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
