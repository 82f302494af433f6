// Package seed builds the invoice the application starts with.
package seed

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/inkvoice/inkvoice/internal/config"
	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"go.uber.org/fx"
)

// NewInvoice assembles the startup invoice from configuration: today's date
// in dd/mm/yyyy form and one pre-filled line item. Derived values are left to
// the invoice service's recompute.
func NewInvoice(cfg config.Config, node *snowflake.Node) domain.Invoice {
	return domain.Invoice{
		InvoiceNumber: cfg.Seed.InvoiceNumber,
		Date:          time.Now().Format("02/01/2006"),
		BusinessName:  cfg.Seed.BusinessName,
		OwnerAddress:  cfg.Seed.OwnerAddress,
		OwnerPhone:    cfg.Seed.OwnerPhone,
		Services:      append([]string(nil), cfg.Seed.Services...),
		Items: []domain.LineItem{
			{
				ID:          node.Generate().String(),
				Description: cfg.Seed.ItemDescription,
				Quantity:    cfg.Seed.ItemQuantity,
				UnitPrice:   cfg.Seed.ItemUnitPrice,
			},
		},
	}
}

var Module = fx.Module("seed",
	fx.Provide(NewInvoice),
)
