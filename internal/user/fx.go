package user

import (
	"github.com/tatamihq/tatami/internal/user/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.NewRepository),
)
