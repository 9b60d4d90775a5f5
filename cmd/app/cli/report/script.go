package report

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/atom/exception-reporting/internal/model"
	"github.com/atom/exception-reporting/internal/notification"
	"github.com/atom/exception-reporting/internal/reporter"
	"github.com/atom/exception-reporting/internal/transport"
)

// errorReport is the command line form of model.ErrorReport.
type errorReport struct {
	ErrorClass                 string         `json:"errorClass"`
	Message                    string         `json:"message"`
	Stack                      string         `json:"stack"`
	Metadata                   model.Metadata `json:"metadata"`
	PrivateMetadata            model.Metadata `json:"privateMetadata"`
	PrivateMetadataDescription string         `json:"privateMetadataDescription"`
	PrivateMetadataRequestName string         `json:"privateMetadataRequestName"`
}

func run(c *cli.Context, deps CommandDeps) error {
	in := c.App.Reader
	if path := c.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "failed to open error report")
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "failed to read error report")
	}
	var input errorReport
	if err := json.Unmarshal(data, &input); err != nil {
		return errors.Wrap(err, "failed to decode error report")
	}

	var r model.ErrorReport
	if err := copier.Copy(&r, &input); err != nil {
		return errors.Wrap(err, "failed to convert error report")
	}

	if c.Bool("dry-run") {
		deps.Reporter.SetRequestFunction(transport.NewWriter(c.App.Writer))
	}

	var result reporter.Result
	if c.Bool("assertion") {
		result = deps.Reporter.ReportFailedAssertion(c.Context, &r)
	} else {
		result = deps.Reporter.ReportUncaughtException(c.Context, &r)
	}
	log.Info().
		Str("evt.name", "cli.report").
		Str("action", string(result.Action)).
		Str("report.id", result.ReportID).
		Msg("report handled")

	if result.Action == reporter.ActionAwaitingConsent {
		return notification.NewPrompter(c.App.Reader, c.App.ErrWriter).Prompt(c.Context, deps.Center)
	}
	return nil
}
