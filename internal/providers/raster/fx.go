package raster

import (
	"github.com/inkvoice/inkvoice/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("providers.raster",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config) (Provider, error) {
	return NewCanvas(cfg.RasterScale)
}
