package pdf

import (
	"bytes"
	"context"
	"errors"
	"image"

	"github.com/inkvoice/inkvoice/internal/providers/raster"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/fx"
)

type A4Assembler struct{}

func New() Assembler {
	return &A4Assembler{}
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)

// Assemble embeds the raster once and places it on ceil(imageHeight/pageHeight)
// pages at the offsets computed by PageOffsets.
func (a *A4Assembler) Assemble(ctx context.Context, img image.Image) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, errors.New("nil raster image")
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, errors.New("empty raster image")
	}

	png, err := raster.EncodePNG(img)
	if err != nil {
		return nil, err
	}

	imageHeight := ImageHeight(bounds.Dx(), bounds.Dy(), PageWidth)

	doc := gofpdf.New("P", "mm", "A4", "")
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("invoice", opts, bytes.NewReader(png))
	if doc.Err() {
		return nil, doc.Error()
	}

	for _, offset := range PageOffsets(imageHeight, PageHeight) {
		doc.AddPage()
		doc.ImageOptions("invoice", 0, offset, PageWidth, imageHeight, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
