package raster

import (
	"context"
	"image"
	"testing"

	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout(items int) render.Layout {
	inv := domain.Invoice{
		InvoiceNumber:   "12345",
		Date:            "01/02/2026",
		BusinessName:    "Jai shree ram glass house",
		CustomerName:    "Acme Traders",
		CustomerAddress: "12 Market Road\nIndore",
		OwnerAddress:    "I-268 LIG COLONY HANUMAN CHOCK\nnear MIG Thana, INDORE",
		OwnerPhone:      "9303229587",
		Services:        []string{"ALUMINIUM WINDOW", "DOMEL WINDOW"},
	}
	for i := 0; i < items; i++ {
		inv.Items = append(inv.Items, domain.LineItem{
			ID: "1", Description: "ALUMINIUM SECTION WINDOW",
			Quantity: 1, UnitPrice: 1800, Subtotal: 1800,
		})
	}
	inv.Total = 1800 * float64(items)
	return render.BuildLayout(inv, render.VariantCustomer, "HEMANT DUBEY")
}

func TestRasterizeDimensions(t *testing.T) {
	r, err := NewCanvas(2)
	require.NoError(t, err)

	img, err := r.Rasterize(context.Background(), testLayout(1))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, baseWidth*2, bounds.Dx())
	assert.Greater(t, bounds.Dy(), 0)
}

func TestRasterizeScaleMultipliesWidth(t *testing.T) {
	one, err := NewCanvas(1)
	require.NoError(t, err)
	two, err := NewCanvas(2)
	require.NoError(t, err)

	layout := testLayout(1)
	imgOne, err := one.Rasterize(context.Background(), layout)
	require.NoError(t, err)
	imgTwo, err := two.Rasterize(context.Background(), layout)
	require.NoError(t, err)

	assert.Equal(t, imgOne.Bounds().Dx()*2, imgTwo.Bounds().Dx())
	assert.Equal(t, imgOne.Bounds().Dy()*2, imgTwo.Bounds().Dy())
}

func TestRasterizeHeightGrowsWithContent(t *testing.T) {
	r, err := NewCanvas(1)
	require.NoError(t, err)

	short, err := r.Rasterize(context.Background(), testLayout(1))
	require.NoError(t, err)
	long, err := r.Rasterize(context.Background(), testLayout(20))
	require.NoError(t, err)

	assert.Greater(t, long.Bounds().Dy(), short.Bounds().Dy())
}

func TestRasterizeIsDeterministic(t *testing.T) {
	r, err := NewCanvas(1)
	require.NoError(t, err)

	layout := testLayout(2)
	first, err := r.Rasterize(context.Background(), layout)
	require.NoError(t, err)
	second, err := r.Rasterize(context.Background(), layout)
	require.NoError(t, err)

	assert.Equal(t, first.(*image.RGBA).Pix, second.(*image.RGBA).Pix)
}

func TestRasterizeRespectsContextCancellation(t *testing.T) {
	r, err := NewCanvas(1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Rasterize(ctx, testLayout(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncodePNG(t *testing.T) {
	r, err := NewCanvas(1)
	require.NoError(t, err)

	img, err := r.Rasterize(context.Background(), testLayout(1))
	require.NoError(t, err)

	buf, err := EncodePNG(img)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(buf[:4]))
}
