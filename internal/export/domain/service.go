// Package domain defines the export pipeline contract.
package domain

import (
	"context"
	"errors"

	"github.com/inkvoice/inkvoice/internal/invoice/render"
)

// Artifact is one finished export: the PDF bytes plus where they were saved.
type Artifact struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	PDF      []byte `json:"-"`
}

// Service runs the rasterize-and-assemble pipeline for one variant. Exports
// are independent: each works on the layout registered for its variant and
// nothing stops two from running at once.
type Service interface {
	Export(ctx context.Context, variant render.Variant) (Artifact, error)
}

var (
	// ErrRenderTargetMissing means the variant was never rendered, so there
	// is nothing to rasterize.
	ErrRenderTargetMissing = errors.New("render_target_missing")

	// ErrExportFailed is the single generic failure surfaced when the
	// rasterize or assemble step breaks.
	ErrExportFailed = errors.New("export_failed")
)
