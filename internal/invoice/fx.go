package invoice

import (
	"github.com/inkvoice/inkvoice/internal/invoice/render"
	"github.com/inkvoice/inkvoice/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(render.NewRegistry),
	fx.Provide(service.New),
)
