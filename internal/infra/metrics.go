package infra

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/atom/exception-reporting/internal/app/appconfig"
	"github.com/atom/exception-reporting/internal/pkg/observability"
)

// MetricsPush pushes the default registry to the configured Pushgateway when the application
// stops. A CLI run is too short-lived to be scraped.
func MetricsPush(lc fx.Lifecycle, conf *appconfig.Config) {
	if conf.PushgatewayURL == "" {
		return
	}

	pusher := push.New(conf.PushgatewayURL, observability.ServiceName).
		Gatherer(prometheus.DefaultGatherer).
		Grouping("env", conf.AppContext.Env.String())

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := pusher.PushContext(ctx); err != nil {
				log.Warn().Err(err).Str("url", conf.PushgatewayURL).Msg("infra: metrics: failed to push metrics")
			}
			return nil
		},
	})
}
