package export

import (
	"github.com/inkvoice/inkvoice/internal/export/service"
	"github.com/inkvoice/inkvoice/internal/providers/notify"
	"github.com/inkvoice/inkvoice/internal/providers/pdf"
	"github.com/inkvoice/inkvoice/internal/providers/raster"
	"go.uber.org/fx"
)

var Module = fx.Module("export.service",
	raster.Module,
	pdf.Module,
	notify.Module,
	fx.Provide(service.New),
)
