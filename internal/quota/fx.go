package quota

import (
	"github.com/tatamihq/tatami/internal/quota/repository"
	"github.com/tatamihq/tatami/internal/quota/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quota.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
