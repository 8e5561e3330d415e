package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/sica/internal/auth"
	"github.com/smallbiznis/sica/internal/auth/session"
	"github.com/smallbiznis/sica/internal/clock"
	"github.com/smallbiznis/sica/internal/config"
	"github.com/smallbiznis/sica/internal/logger"
	"github.com/smallbiznis/sica/internal/migration"
	"github.com/smallbiznis/sica/internal/observability"
	"github.com/smallbiznis/sica/internal/product"
	"github.com/smallbiznis/sica/internal/provider"
	"github.com/smallbiznis/sica/internal/sale"
	"github.com/smallbiznis/sica/internal/seed"
	"github.com/smallbiznis/sica/internal/server"
	"github.com/smallbiznis/sica/internal/stats"
	"github.com/smallbiznis/sica/internal/user"
	"github.com/smallbiznis/sica/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		session.Module,
		auth.Module,
		user.Module,
		product.Module,
		provider.Module,
		sale.Module,
		stats.Module,

		seed.Module,
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
