package auth

import (
	"errors"

	"github.com/tatamihq/tatami/internal/auth/service"
	"github.com/tatamihq/tatami/internal/auth/token"
	"github.com/tatamihq/tatami/internal/config"
	"go.uber.org/fx"
)

func newSigner(cfg config.Config) (*token.Signer, error) {
	// An empty secret would key the HMAC on "" and make every token
	// forgeable; refuse to start in production without one.
	if cfg.IsProduction() && cfg.TokenSecret == "" {
		return nil, errors.New("AUTH_TOKEN_SECRET is required in production")
	}
	return token.NewSigner(cfg.TokenSecret, token.DefaultTTL), nil
}

var Module = fx.Module("auth.service",
	fx.Provide(newSigner),
	fx.Provide(service.New),
)
