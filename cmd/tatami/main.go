package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/tatamihq/tatami/internal/auth"
	"github.com/tatamihq/tatami/internal/clock"
	"github.com/tatamihq/tatami/internal/config"
	"github.com/tatamihq/tatami/internal/logger"
	"github.com/tatamihq/tatami/internal/migration"
	obsmetrics "github.com/tatamihq/tatami/internal/observability/metrics"
	"github.com/tatamihq/tatami/internal/provisioning"
	"github.com/tatamihq/tatami/internal/quota"
	"github.com/tatamihq/tatami/internal/ratelimit"
	"github.com/tatamihq/tatami/internal/seed"
	"github.com/tatamihq/tatami/internal/server"
	"github.com/tatamihq/tatami/internal/tenant"
	"github.com/tatamihq/tatami/internal/user"
	"github.com/tatamihq/tatami/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		obsmetrics.Module,

		tenant.Module,
		user.Module,
		auth.Module,
		provisioning.Module,
		quota.Module,
		ratelimit.Module,

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
