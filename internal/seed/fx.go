package seed

import (
	"context"

	"github.com/tatamihq/tatami/internal/config"
	provisioningdomain "github.com/tatamihq/tatami/internal/provisioning/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("seed",
	fx.Invoke(func(cfg config.Config, log *zap.Logger, svc provisioningdomain.Service) error {
		if cfg.IsProduction() {
			return nil
		}
		return EnsureDemoTenant(context.Background(), log, svc)
	}),
)
