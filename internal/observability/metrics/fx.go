package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

func newRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func newHTTPMetricsFromRegistry(reg *prometheus.Registry) (*HTTPMetrics, error) {
	return NewHTTPMetrics(reg)
}

var Module = fx.Module("observability.metrics",
	fx.Provide(newRegistry),
	fx.Provide(newHTTPMetricsFromRegistry),
)
