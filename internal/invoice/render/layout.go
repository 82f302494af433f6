// Package render projects the invoice model into displayable layouts.
package render

import (
	"errors"
	"strconv"

	"github.com/inkvoice/inkvoice/internal/invoice/domain"
)

// Variant selects which copy of the invoice a layout represents. The owner
// variant carries an extra internal-use annotation block.
type Variant string

const (
	VariantCustomer Variant = "customer"
	VariantOwner    Variant = "owner"
)

var ErrInvalidVariant = errors.New("invalid_variant")

// ParseVariant validates a raw variant string.
func ParseVariant(raw string) (Variant, error) {
	switch Variant(raw) {
	case VariantCustomer:
		return VariantCustomer, nil
	case VariantOwner:
		return VariantOwner, nil
	default:
		return "", ErrInvalidVariant
	}
}

const (
	annotationTitle = "OWNER COPY - INTERNAL USE ONLY"
	annotationBody  = "This copy is for business records and accounting purposes."
)

// Layout is a fully resolved, render-ready view of one invoice variant.
// It carries only display strings so renderers never reach back into the model.
type Layout struct {
	Variant       Variant
	BusinessName  string
	Date          string
	InvoiceNumber string
	Services      []string

	BillToName    string
	BillToAddress string

	ProprietorName string
	OwnerPhone     string
	OwnerAddress   string

	Rows  []Row
	Total string

	// Annotation is empty for the customer variant.
	AnnotationTitle string
	AnnotationBody  string
}

// Row is one line-item table row in display order.
type Row struct {
	Description string
	Pieces      string
	Quantity    string
	UnitPrice   string
	Subtotal    string
}

// BuildLayout projects an invoice snapshot into a layout for the given
// variant. It is pure: the snapshot is read, never written.
func BuildLayout(inv domain.Invoice, variant Variant, proprietorName string) Layout {
	layout := Layout{
		Variant:        variant,
		BusinessName:   inv.BusinessName,
		Date:           inv.Date,
		InvoiceNumber:  inv.InvoiceNumber,
		Services:       append([]string(nil), inv.Services...),
		BillToName:     inv.CustomerName,
		BillToAddress:  inv.CustomerAddress,
		ProprietorName: proprietorName,
		OwnerPhone:     inv.OwnerPhone,
		OwnerAddress:   inv.OwnerAddress,
		Total:          formatAmount(inv.Total),
	}

	layout.Rows = make([]Row, 0, len(inv.Items))
	for _, item := range inv.Items {
		layout.Rows = append(layout.Rows, Row{
			Description: item.Description,
			Pieces:      formatAmount(item.Quantity) + " PCS.",
			Quantity:    formatAmount(item.Quantity),
			UnitPrice:   formatAmount(item.UnitPrice),
			Subtotal:    formatAmount(item.Subtotal),
		})
	}

	if variant == VariantOwner {
		layout.AnnotationTitle = annotationTitle
		layout.AnnotationBody = annotationBody
	}

	return layout
}

// formatAmount renders numbers the way the form shows them: no trailing
// zeros, no fixed decimal places.
func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
