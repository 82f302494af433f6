package render

import (
	"testing"

	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() domain.Invoice {
	return domain.Invoice{
		InvoiceNumber:   "12345",
		Date:            "01/02/2026",
		BusinessName:    "Jai shree ram glass house",
		CustomerName:    "Acme Traders",
		CustomerAddress: "12 Market Road\nIndore",
		OwnerAddress:    "I-268 LIG COLONY",
		OwnerPhone:      "9303229587",
		Services:        []string{"ALUMINIUM WINDOW", "GLASS RAILING"},
		Items: []domain.LineItem{
			{ID: "1", Description: "ALUMINIUM SECTION WINDOW", Quantity: 3, UnitPrice: 600, Subtotal: 1800},
			{ID: "2", Description: "GLASS PANEL", Quantity: 2, UnitPrice: 250, Subtotal: 500},
		},
		Total: 2300,
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("customer")
	require.NoError(t, err)
	assert.Equal(t, VariantCustomer, v)

	v, err = ParseVariant("owner")
	require.NoError(t, err)
	assert.Equal(t, VariantOwner, v)

	_, err = ParseVariant("internal")
	assert.ErrorIs(t, err, ErrInvalidVariant)
}

func TestBuildLayoutProjectsAllFields(t *testing.T) {
	layout := BuildLayout(sampleInvoice(), VariantCustomer, "HEMANT DUBEY")

	assert.Equal(t, "Jai shree ram glass house", layout.BusinessName)
	assert.Equal(t, "12345", layout.InvoiceNumber)
	assert.Equal(t, "01/02/2026", layout.Date)
	assert.Equal(t, []string{"ALUMINIUM WINDOW", "GLASS RAILING"}, layout.Services)
	assert.Equal(t, "Acme Traders", layout.BillToName)
	assert.Equal(t, "HEMANT DUBEY", layout.ProprietorName)
	assert.Equal(t, "9303229587", layout.OwnerPhone)
	assert.Equal(t, "2300", layout.Total)

	require.Len(t, layout.Rows, 2)
	assert.Equal(t, "ALUMINIUM SECTION WINDOW", layout.Rows[0].Description)
	assert.Equal(t, "3 PCS.", layout.Rows[0].Pieces)
	assert.Equal(t, "600", layout.Rows[0].UnitPrice)
	assert.Equal(t, "1800", layout.Rows[0].Subtotal)
	assert.Equal(t, "500", layout.Rows[1].Subtotal)
}

func TestBuildLayoutVariants(t *testing.T) {
	customer := BuildLayout(sampleInvoice(), VariantCustomer, "HEMANT DUBEY")
	assert.Empty(t, customer.AnnotationTitle)
	assert.Empty(t, customer.AnnotationBody)

	owner := BuildLayout(sampleInvoice(), VariantOwner, "HEMANT DUBEY")
	assert.Equal(t, "OWNER COPY - INTERNAL USE ONLY", owner.AnnotationTitle)
	assert.NotEmpty(t, owner.AnnotationBody)
}

func TestBuildLayoutDoesNotMutateInvoice(t *testing.T) {
	inv := sampleInvoice()
	layout := BuildLayout(inv, VariantOwner, "HEMANT DUBEY")

	layout.Services[0] = "mutated"
	layout.Rows[0].Description = "mutated"

	assert.Equal(t, "ALUMINIUM WINDOW", inv.Services[0])
	assert.Equal(t, "ALUMINIUM SECTION WINDOW", inv.Items[0].Description)
	assert.Equal(t, sampleInvoice(), inv)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1800", formatAmount(1800))
	assert.Equal(t, "2.5", formatAmount(2.5))
	assert.Equal(t, "0", formatAmount(0))
}

func TestRenderHTML(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderHTML(BuildLayout(sampleInvoice(), VariantCustomer, "HEMANT DUBEY"))
	require.NoError(t, err)
	assert.Contains(t, html, "Jai shree ram glass house")
	assert.Contains(t, html, "Invoice No. 12345")
	assert.Contains(t, html, "ALUMINIUM SECTION WINDOW")
	assert.Contains(t, html, "3 PCS.")
	assert.Contains(t, html, "2300")
	assert.NotContains(t, html, "OWNER COPY")

	html, err = r.RenderHTML(BuildLayout(sampleInvoice(), VariantOwner, "HEMANT DUBEY"))
	require.NoError(t, err)
	assert.Contains(t, html, "OWNER COPY - INTERNAL USE ONLY")
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Get(VariantCustomer)
	assert.False(t, ok)

	layout := BuildLayout(sampleInvoice(), VariantCustomer, "HEMANT DUBEY")
	reg.Put(layout)

	got, ok := reg.Get(VariantCustomer)
	require.True(t, ok)
	assert.Equal(t, layout, got)

	_, ok = reg.Get(VariantOwner)
	assert.False(t, ok)
}
