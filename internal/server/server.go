// Package server wires the HTTP surface: login and session introspection
// for tenant users, plus the operator-only provisioning and usage routes.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	authdomain "github.com/tatamihq/tatami/internal/auth/domain"
	"github.com/tatamihq/tatami/internal/config"
	obsmetrics "github.com/tatamihq/tatami/internal/observability/metrics"
	provisioningdomain "github.com/tatamihq/tatami/internal/provisioning/domain"
	quotadomain "github.com/tatamihq/tatami/internal/quota/domain"
	"github.com/tatamihq/tatami/internal/ratelimit"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(newEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func newEngine(cfg config.Config, httpMetrics *obsmetrics.HTTPMetrics, registry *prometheus.Registry) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	log             *zap.Logger
	authSvc         authdomain.Service
	tenantSvc       tenantdomain.Service
	provisioningSvc provisioningdomain.Service
	quotaSvc        quotadomain.Service
	loginLimiter    *ratelimit.LoginLimiter
	metrics         *obsmetrics.HTTPMetrics
}

type ServerParams struct {
	fx.In

	Engine          *gin.Engine
	Config          config.Config
	Logger          *zap.Logger
	AuthSvc         authdomain.Service
	TenantSvc       tenantdomain.Service
	ProvisioningSvc provisioningdomain.Service
	QuotaSvc        quotadomain.Service
	LoginLimiter    *ratelimit.LoginLimiter `optional:"true"`
	Metrics         *obsmetrics.HTTPMetrics
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:          p.Engine,
		cfg:             p.Config,
		log:             p.Logger.Named("http.server"),
		authSvc:         p.AuthSvc,
		tenantSvc:       p.TenantSvc,
		provisioningSvc: p.ProvisioningSvc,
		quotaSvc:        p.QuotaSvc,
		loginLimiter:    p.LoginLimiter,
		metrics:         p.Metrics,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	auth := s.engine.Group("/v1/auth")
	{
		auth.POST("/login", s.Login)
		auth.GET("/me", s.Me)
	}

	// Operator surface: tenant provisioning and usage inspection. Guarded
	// by a platform-level bearer token, not tenant sessions.
	admin := s.engine.Group("/v1/admin", s.OperatorRequired())
	{
		admin.POST("/tenants", s.CreateTenant)
		admin.GET("/tenants/:id", s.GetTenant)
		admin.PATCH("/tenants/:id", s.UpdateTenant)
		admin.GET("/tenants/:id/usage", s.TenantUsage)
		admin.GET("/tenants/:id/usage/:category", s.TenantUsageCategory)
	}
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
