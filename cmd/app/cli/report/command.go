package report

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/atom/exception-reporting/internal/notification"
	"github.com/atom/exception-reporting/internal/reporter"
)

type CommandDeps struct {
	fx.In

	Reporter *reporter.Client
	Center   *notification.Center
}

func Command(depsFn func() (CommandDeps, func(), error)) *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "report an error read as JSON from a file or stdin",
		ArgsUsage: "[file]",
		Description: "The input has the shape " +
			`{"errorClass": "...", "message": "...", "stack": "...", "metadata": {}, ` +
			`"privateMetadata": {}, "privateMetadataDescription": "...", "privateMetadataRequestName": "..."}. ` +
			"When private metadata needs consent the prompt is answered on stdin, so pass the report as a file to answer it.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "assertion",
				Usage: "report a failed assertion (severity warning) instead of an uncaught exception",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "print the request instead of sending it",
			},
		},
		Action: func(c *cli.Context) error {
			deps, stop, err := depsFn()
			if err != nil {
				return err
			}
			defer stop()
			return run(c, deps)
		},
	}
}
