package infra

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/atom/exception-reporting/internal/app/appconfig"
	"github.com/atom/exception-reporting/internal/pkg/bininfo"
)

// SentryInit initializes sentry with side-effect. Sentry only receives panics recovered inside
// the reporter itself.
func SentryInit(lc fx.Lifecycle, conf *appconfig.Config) error {
	if conf.SentryDSN == "" {
		log.Debug().Msg("Sentry is disabled due to missing DSN.")
		return nil
	}

	log.Info().Msg("Initializing Sentry...")
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              conf.SentryDSN,
		Release:          "exception-reporting@" + bininfo.Version,
		Environment:      conf.AppContext.Env.String(),
		Debug:            conf.DevMode,
		AttachStacktrace: true,
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sentry.Flush(2 * time.Second)
			return nil
		},
	})
	return nil
}
