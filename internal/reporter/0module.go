package reporter

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("reporter",
		fx.Provide(
			OptionsFromConfig,
			New,
		),
	)
}
