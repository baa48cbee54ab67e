// Package storage archives exported PDFs to object storage.
package storage

import (
	"context"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
)

// Key builds the object key for an exported file:
// <prefix>/<userId>/<yyyy>/<mm>/<dd>/<uuid>/<file>.
func Key(prefix, userID, fileName string, at time.Time) string {
	if prefix == "" {
		prefix = "exports"
	}
	return path.Join(prefix, userID, at.UTC().Format("2006/01/02"), uuid.NewString(), fileName)
}

// Nop discards everything. It is used when no storage driver is configured.
type Nop struct{}

func (Nop) Put(context.Context, string, io.Reader, string) error { return nil }
