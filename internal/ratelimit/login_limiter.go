package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/tatamihq/tatami/internal/config"
)

const keyLogin = "login:%s:%s"

// LoginLimiter throttles authentication attempts per (tenant domain, email)
// pair to slow down credential stuffing. A nil limiter allows everything,
// so deployments without redis keep working.
type LoginLimiter struct {
	enabled bool

	bucket *TokenBucket
	rate   float64
	burst  int
}

func NewLoginLimiter(cfg config.Config) (*LoginLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.LoginRate <= 0 || limitCfg.LoginBurst <= 0 {
		return nil, errors.New("login rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})

	return &LoginLimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		rate:    limitCfg.LoginRate,
		burst:   limitCfg.LoginBurst,
	}, nil
}

func (l *LoginLimiter) Enabled() bool {
	return l != nil && l.enabled
}

func (l *LoginLimiter) Allow(ctx context.Context, orgDomain, email string) (bool, error) {
	if !l.Enabled() {
		return true, nil
	}
	key := fmt.Sprintf(keyLogin,
		strings.ToLower(strings.TrimSpace(orgDomain)),
		strings.ToLower(strings.TrimSpace(email)),
	)
	return l.bucket.Allow(ctx, key, l.rate, l.burst)
}
