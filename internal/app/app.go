package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/atom/exception-reporting/internal/app/appconfig"
	"github.com/atom/exception-reporting/internal/app/appcontext"
	"github.com/atom/exception-reporting/internal/infra"
	"github.com/atom/exception-reporting/internal/pkg/logger"
	"github.com/atom/exception-reporting/internal/reporter"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		return []fx.Option{fx.Error(err)}
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Global Singleton Inits
		fx.Invoke(infra.SentryInit),
		fx.Invoke(infra.MetricsPush),

		// Reporter
		reporter.Module(),

		// fx Extra Options
		fx.StartTimeout(5 * time.Second),
		fx.StopTimeout(5 * time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
