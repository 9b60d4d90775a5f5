// Package appentry wires the reporter into the fx graph of a Go host built within this module.
// Configuration is parsed inside the graph.
package appentry

import (
	"go.uber.org/fx"

	"github.com/atom/exception-reporting/internal/app/appconfig"
	"github.com/atom/exception-reporting/internal/app/appcontext"
	"github.com/atom/exception-reporting/internal/infra"
	"github.com/atom/exception-reporting/internal/pkg/logger"
	"github.com/atom/exception-reporting/internal/reporter"
)

func ProvideOptions() []fx.Option {
	opts := []fx.Option{
		// Misc
		fx.Supply(appcontext.Declare(appcontext.EnvEmbedded)),
		fx.Provide(appconfig.Parse),

		// Infrastructures
		infra.Module(),

		// Global Singleton Inits
		fx.Invoke(logger.Configure),
		fx.Invoke(infra.SentryInit),
		fx.WithLogger(logger.Fx),

		// Reporter
		reporter.Module(),
	}

	return opts
}
