package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	LogLevel    string

	// ExportDir is where generated PDF artifacts are written.
	ExportDir string

	// RasterScale multiplies the base canvas resolution when the invoice
	// layout is rasterized. The stock export uses 2.
	RasterScale int

	// NotifyFeedSize bounds the in-memory notification feed.
	NotifyFeedSize int

	Seed SeedConfig
}

// SeedConfig carries the values the startup invoice is seeded with.
type SeedConfig struct {
	InvoiceNumber  string
	BusinessName   string
	ProprietorName string
	OwnerPhone     string
	OwnerAddress   string
	Services       []string

	ItemDescription string
	ItemQuantity    float64
	ItemUnitPrice   float64
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:        getenv("APP_SERVICE", "inkvoice"),
		AppVersion:     getenv("APP_VERSION", "0.1.0"),
		Environment:    getenv("ENVIRONMENT", "development"),
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		ExportDir:      getenv("EXPORT_DIR", "exports"),
		RasterScale:    getenvInt("RASTER_SCALE", 2),
		NotifyFeedSize: getenvInt("NOTIFY_FEED_SIZE", 20),
		Seed: SeedConfig{
			InvoiceNumber:   getenv("SEED_INVOICE_NUMBER", "12345"),
			BusinessName:    getenv("SEED_BUSINESS_NAME", "Jai shree ram glass house"),
			ProprietorName:  getenv("SEED_PROPRIETOR_NAME", "HEMANT DUBEY"),
			OwnerPhone:      getenv("SEED_OWNER_PHONE", "9303229587"),
			OwnerAddress:    getenv("SEED_OWNER_ADDRESS", "I-268 LIG COLONY HANUMAN CHOCK\nnear MIG Thana, INDORE"),
			Services:        parseList(getenv("SEED_SERVICES", "ALUMINIUM WINDOW,DOMEL WINDOW,UPVC WINDOW,GLASS RAILING")),
			ItemDescription: getenv("SEED_ITEM_DESCRIPTION", "ALUMINIUM SECTION WINDOW"),
			ItemQuantity:    getenvFloat("SEED_ITEM_QUANTITY", 1),
			ItemUnitPrice:   getenvFloat("SEED_ITEM_UNIT_PRICE", 1800),
		},
	}
}

// Module wires configuration loading into the application graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}

func parseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
