package raster

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/inkvoice/inkvoice/internal/invoice/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Base canvas geometry in unscaled pixels. The drawn area mirrors the HTML
// preview card: a white page with generous margins and a four-column table.
const (
	baseWidth  = 744
	baseMargin = 48
)

// CanvasRasterizer draws a layout onto an in-memory canvas at an integer
// scale factor. Scale 2 matches the export resolution of the stock pipeline.
type CanvasRasterizer struct {
	scale int

	regular *truetype.Font
	bold    *truetype.Font
}

func NewCanvas(scale int) (*CanvasRasterizer, error) {
	if scale <= 0 {
		scale = 1
	}

	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	return &CanvasRasterizer{scale: scale, regular: regular, bold: bold}, nil
}

func (r *CanvasRasterizer) Rasterize(ctx context.Context, layout render.Layout) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := float64(r.scale)
	width := baseWidth * r.scale

	faces := r.newFaces(s)

	// Measuring pass on a throwaway context, then the real draw. The canvas
	// height is whatever the content needs; pagination happens downstream.
	measure := gg.NewContext(width, 1)
	height := r.draw(measure, layout, faces, s, true)

	dc := gg.NewContext(width, int(height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	r.draw(dc, layout, faces, s, false)

	return dc.Image(), nil
}

type faceSet struct {
	h1    font.Face
	h3    font.Face
	body  font.Face
	small font.Face
	tiny  font.Face
	total font.Face
	bold  font.Face
}

func (r *CanvasRasterizer) newFaces(s float64) faceSet {
	face := func(f *truetype.Font, size float64) font.Face {
		return truetype.NewFace(f, &truetype.Options{Size: size * s})
	}
	return faceSet{
		h1:    face(r.bold, 26),
		h3:    face(r.bold, 16),
		body:  face(r.regular, 14),
		small: face(r.regular, 13),
		tiny:  face(r.regular, 11),
		total: face(r.bold, 30),
		bold:  face(r.bold, 14),
	}
}

// draw walks the layout top to bottom and returns the consumed height. With
// measureOnly set it skips the actual drawing calls but advances the cursor
// identically.
func (r *CanvasRasterizer) draw(dc *gg.Context, layout render.Layout, faces faceSet, s float64, measureOnly bool) float64 {
	margin := baseMargin * s
	width := float64(dc.Width())
	contentRight := width - margin

	dc.SetRGB(0, 0, 0)

	text := func(face font.Face, value string, x, y float64) {
		if measureOnly || value == "" {
			return
		}
		dc.SetFontFace(face)
		dc.DrawString(value, x, y)
	}
	textRight := func(face font.Face, value string, y float64) {
		if measureOnly || value == "" {
			return
		}
		dc.SetFontFace(face)
		w, _ := dc.MeasureString(value)
		dc.DrawString(value, contentRight-w, y)
	}
	line := func(y, lw float64) {
		if measureOnly {
			return
		}
		dc.SetLineWidth(lw)
		dc.DrawLine(margin, y, contentRight, y)
		dc.Stroke()
	}

	y := margin

	// Header: business block left, services list right.
	headerTop := y + 26*s
	text(faces.h1, layout.BusinessName, margin, headerTop)
	text(faces.small, layout.Date, margin, headerTop+22*s)
	text(faces.small, "Invoice No. "+layout.InvoiceNumber, margin, headerTop+40*s)
	leftBottom := headerTop + 40*s

	serviceY := y + 14*s
	for _, service := range layout.Services {
		textRight(faces.bold, "• "+service, serviceY)
		serviceY += 20 * s
	}
	rightBottom := serviceY - 20*s

	y = maxf(leftBottom, rightBottom) + 40*s

	// Parties: bill-to left, proprietor right.
	partiesTop := y
	text(faces.h3, "BILL TO:", margin, y+16*s)
	y += 40 * s
	billLines := wrapLines(dc, faces.body, layout.BillToName, width/2-margin)
	for _, ln := range billLines {
		text(faces.body, ln, margin, y)
		y += 20 * s
	}
	addrLines := wrapLines(dc, faces.small, layout.BillToAddress, width/2-margin)
	y += 4 * s
	for _, ln := range addrLines {
		text(faces.small, ln, margin, y)
		y += 18 * s
	}
	line(y, 1*s)
	leftBottom = y

	py := partiesTop
	textRight(faces.h3, "PROPRIETAR:", py+16*s)
	py += 40 * s
	textRight(faces.bold, layout.ProprietorName, py)
	py += 20 * s
	textRight(faces.bold, layout.OwnerPhone, py)
	py += 24 * s
	for _, ln := range splitLines(layout.OwnerAddress) {
		textRight(faces.small, ln, py)
		py += 18 * s
	}
	rightBottom = py - 18*s

	y = maxf(leftBottom, rightBottom) + 40*s

	// Line-item table.
	col2 := margin + (contentRight-margin)*0.55
	col3 := margin + (contentRight-margin)*0.75
	text(faces.bold, "DESCRIPTION", margin, y)
	text(faces.bold, "PRICE", col2, y)
	text(faces.bold, "QTY", col3, y)
	textRight(faces.bold, "SUBTOTAL", y)
	y += 10 * s
	line(y, 2*s)
	y += 24 * s

	for _, row := range layout.Rows {
		text(faces.body, row.Description, margin, y)
		text(faces.body, row.UnitPrice, col2, y)
		text(faces.body, row.Quantity, col3, y)
		textRight(faces.body, row.Subtotal, y)
		y += 18 * s
		text(faces.tiny, row.Pieces, margin, y)
		y += 10 * s
		line(y, 1*s)
		y += 24 * s
	}

	// Totals footer.
	y += 16 * s
	text(faces.h3, "SUBTOTAL", margin, y)
	textRight(faces.h3, "TOTALS", y)
	y += 36 * s
	textRight(faces.total, layout.Total, y)

	// Owner-only annotation block.
	if layout.AnnotationTitle != "" {
		y += 32 * s
		boxTop := y
		boxHeight := 56 * s
		if !measureOnly {
			dc.SetRGB(0.976, 0.980, 0.984)
			dc.DrawRectangle(margin, boxTop, contentRight-margin, boxHeight)
			dc.Fill()
			dc.SetRGB(0.86, 0.15, 0.15)
			dc.SetFontFace(faces.bold)
			dc.DrawString(layout.AnnotationTitle, margin+16*s, boxTop+22*s)
			dc.SetRGB(0.29, 0.33, 0.39)
			dc.SetFontFace(faces.tiny)
			dc.DrawString(layout.AnnotationBody, margin+16*s, boxTop+42*s)
			dc.SetRGB(0, 0, 0)
		}
		y = boxTop + boxHeight
	}

	return y + margin
}

func wrapLines(dc *gg.Context, face font.Face, value string, width float64) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	dc.SetFontFace(face)
	var out []string
	for _, part := range splitLines(value) {
		out = append(out, dc.WordWrap(part, width)...)
	}
	return out
}

func splitLines(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(value, "\r\n", "\n"), "\n")
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
