package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/inkvoice/inkvoice/internal/config"
	"github.com/inkvoice/inkvoice/internal/logger"
	"github.com/inkvoice/inkvoice/internal/seed"
	"github.com/inkvoice/inkvoice/internal/server"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		seed.Module,

		// HTTP surface and functional domains (invoice, export, providers)
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
