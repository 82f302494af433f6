// Package domain contains the in-memory invoice model.
package domain

// LineItem is one billable row on the invoice. Subtotal is derived and is
// never accepted from a caller directly.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// Invoice is the editable invoice record. Items keep insertion order, which
// is also display order. Total is derived from the item subtotals.
type Invoice struct {
	InvoiceNumber   string     `json:"invoice_number"`
	Date            string     `json:"date"`
	BusinessName    string     `json:"business_name"`
	CustomerName    string     `json:"customer_name"`
	CustomerAddress string     `json:"customer_address"`
	OwnerAddress    string     `json:"owner_address"`
	OwnerPhone      string     `json:"owner_phone"`
	Services        []string   `json:"services"`
	Items           []LineItem `json:"items"`
	Total           float64    `json:"total"`
}

// Clone returns a deep copy of the invoice. Callers holding a clone can never
// reach the shared record through it.
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Services = append([]string(nil), inv.Services...)
	out.Items = append([]LineItem(nil), inv.Items...)
	return out
}

// Scalar field names accepted by SetField.
const (
	FieldInvoiceNumber   = "invoiceNumber"
	FieldDate            = "date"
	FieldBusinessName    = "businessName"
	FieldCustomerName    = "customerName"
	FieldCustomerAddress = "customerAddress"
	FieldOwnerAddress    = "ownerAddress"
	FieldOwnerPhone      = "ownerPhone"
)

// Item field names accepted by UpdateItem.
const (
	ItemFieldDescription = "description"
	ItemFieldQuantity    = "quantity"
	ItemFieldUnitPrice   = "unitPrice"
)
