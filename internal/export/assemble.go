package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// AssemblePDF places each page image full-bleed on its own A4 page and
// verifies the page count of the result.
func AssemblePDF(pages [][]byte) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages to assemble")
	}
	imp, err := api.Import("formsize:A4, position:full", types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("import settings: %w", err)
	}
	readers := make([]io.Reader, len(pages))
	for i, p := range pages {
		readers[i] = bytes.NewReader(p)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	var out bytes.Buffer
	if err := api.ImportImages(nil, &out, readers, imp, conf); err != nil {
		return nil, fmt.Errorf("import images: %w", err)
	}
	n, err := api.PageCount(bytes.NewReader(out.Bytes()), conf)
	if err != nil {
		return nil, fmt.Errorf("verify pdf: %w", err)
	}
	if n != len(pages) {
		return nil, fmt.Errorf("pdf has %d pages, want %d", n, len(pages))
	}
	return out.Bytes(), nil
}
