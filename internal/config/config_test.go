package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "inkvoice", cfg.AppName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Equal(t, 2, cfg.RasterScale)
	assert.Equal(t, 20, cfg.NotifyFeedSize)

	assert.Equal(t, "12345", cfg.Seed.InvoiceNumber)
	assert.Equal(t, "Jai shree ram glass house", cfg.Seed.BusinessName)
	assert.Equal(t, "HEMANT DUBEY", cfg.Seed.ProprietorName)
	assert.Equal(t, []string{"ALUMINIUM WINDOW", "DOMEL WINDOW", "UPVC WINDOW", "GLASS RAILING"}, cfg.Seed.Services)
	assert.Equal(t, 1.0, cfg.Seed.ItemQuantity)
	assert.Equal(t, 1800.0, cfg.Seed.ItemUnitPrice)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("RASTER_SCALE", "3")
	t.Setenv("SEED_SERVICES", "GLASS DOOR, SHOWER CABIN")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 3, cfg.RasterScale)
	assert.Equal(t, []string{"GLASS DOOR", "SHOWER CABIN"}, cfg.Seed.Services)
}

func TestGetenvIntRejectsInvalid(t *testing.T) {
	t.Setenv("RASTER_SCALE", "zero")
	assert.Equal(t, 2, Load().RasterScale)

	t.Setenv("RASTER_SCALE", "-1")
	assert.Equal(t, 2, Load().RasterScale)
}
