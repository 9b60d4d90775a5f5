package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/atom/exception-reporting/internal/app"
	"github.com/atom/exception-reporting/internal/app/appcontext"
)

// Start starts the application graph for a single command. The returned function stops it.
func Start(module fx.Option) (func(), error) {
	fxApp := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := fxApp.Start(context.Background()); err != nil {
		return nil, err
	}
	return func() {
		_ = fxApp.Stop(context.Background())
	}, nil
}

// DepsFn resolves T, an fx.In struct, from a freshly started graph. Resolution is deferred to
// the call so that --help never touches configuration.
func DepsFn[T any]() func() (T, func(), error) {
	return func() (T, func(), error) {
		var deps T
		stop, err := Start(fx.Populate(&deps))
		return deps, stop, err
	}
}
