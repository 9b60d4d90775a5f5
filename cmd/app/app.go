package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	cliapp "github.com/atom/exception-reporting/cmd/app/cli"
	"github.com/atom/exception-reporting/cmd/app/cli/consentcmd"
	"github.com/atom/exception-reporting/cmd/app/cli/report"
	"github.com/atom/exception-reporting/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "exception-reporting",
		Usage:       "report errors of an Atom host to Bugsnag",
		Description: "Reports uncaught exceptions and failed assertions to the Bugsnag notify API, asking for consent before private metadata is sent. Built with Go, fasthttp and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			report.Command(cliapp.DepsFn[report.CommandDeps]()),
			consentcmd.Command(cliapp.DepsFn[consentcmd.CommandDeps]()),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
