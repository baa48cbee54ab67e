package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	at := time.Date(2024, 3, 7, 23, 0, 0, 0, time.FixedZone("X", -2*3600))
	key := Key("", "u1", "Jane_Doe_Resume.pdf", at)
	assert.Regexp(t, regexp.MustCompile(`^exports/u1/2024/03/08/[0-9a-f-]{36}/Jane_Doe_Resume\.pdf$`), key)

	assert.Contains(t, Key("archive", "u1", "f.pdf", at), "archive/u1/")
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Put(context.Background(), "k", bytes.NewReader(nil), "application/pdf"))
}

func TestS3ArchivePut(t *testing.T) {
	var gotPath, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, err := NewS3Archive(context.Background(), S3Options{
		Bucket: "resumes", Region: "us-east-1", Endpoint: srv.URL, AccessKey: "key", SecretKey: "secret",
	})
	require.NoError(t, err)

	err = a.Put(context.Background(), "exports/u1/f.pdf", bytes.NewReader([]byte("%PDF-1.7")), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/resumes/exports/u1/f.pdf", gotPath)
	assert.Equal(t, "application/pdf", gotType)
	assert.Contains(t, string(gotBody), "%PDF-1.7")
}
