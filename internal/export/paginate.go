package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
)

// A4 dimensions in millimetres.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
	// PageEpsilonMM is the leftover height below which no trailing page is
	// emitted.
	PageEpsilonMM = 0.5
)

// Paginate returns the vertical offset of the content on each page, in the
// same unit as total. The first page is always emitted at offset 0; every
// following page sits at minus the height already consumed.
func Paginate(total, page, epsilon float64) []float64 {
	offsets := []float64{0}
	left := total - page
	for left > epsilon {
		offsets = append(offsets, left-total)
		left -= page
	}
	return offsets
}

// SlicePages cuts a tall PNG raster into A4-proportioned PNG pages. The
// raster width spans the page width; the last page is padded with white.
func SlicePages(raster []byte) ([][]byte, error) {
	src, err := png.Decode(bytes.NewReader(raster))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty raster %dx%d", b.Dx(), b.Dy())
	}

	pxPerMM := float64(b.Dx()) / PageWidthMM
	pageH := int(math.Round(PageHeightMM * pxPerMM))
	totalMM := float64(b.Dy()) / pxPerMM

	pages := make([][]byte, 0, 2)
	for _, off := range Paginate(totalMM, PageHeightMM, PageEpsilonMM) {
		top := b.Min.Y + int(math.Round(-off*pxPerMM))
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), pageH))
		draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		draw.Draw(dst, dst.Bounds(), src, image.Pt(b.Min.X, top), draw.Over)

		var buf bytes.Buffer
		if err := png.Encode(&buf, dst); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", len(pages)+1, err)
		}
		pages = append(pages, buf.Bytes())
	}
	return pages, nil
}
