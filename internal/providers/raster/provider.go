// Package raster renders invoice layouts to pixel images.
package raster

import (
	"bytes"
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/inkvoice/inkvoice/internal/invoice/render"
)

// Provider rasterizes a rendered layout into a fixed-resolution image.
// Rasterization time depends on layout size; callers treat it as a slow,
// context-aware call.
type Provider interface {
	Rasterize(ctx context.Context, layout render.Layout) (image.Image, error)
}

type NoOpProvider struct{}

func (p *NoOpProvider) Rasterize(ctx context.Context, layout render.Layout) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

// EncodePNG encodes a rasterized layout for embedding into a document.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
