package tenant

import (
	"github.com/tatamihq/tatami/internal/tenant/repository"
	"github.com/tatamihq/tatami/internal/tenant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tenant.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
