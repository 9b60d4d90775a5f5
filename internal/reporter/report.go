package reporter

import (
	"context"

	"github.com/atom/exception-reporting/internal/consent"
	"github.com/atom/exception-reporting/internal/model"
	"github.com/atom/exception-reporting/internal/pkg/observability"
)

func (c *Client) report(ctx context.Context, r *model.ErrorReport, severity model.Severity) (result Result) {
	result = Result{Action: ActionSuppressed}
	if r == nil {
		return result
	}

	// the private fields never outlive the call on the caller's report
	hasPrivate := r.HasPrivateMetadata()
	private := r.DetachPrivateData()

	defer func() {
		if v := recover(); v != nil {
			c.handlePanic(ctx, "report", v)
			result = Result{Action: ActionSuppressed}
		}
		observability.ReportsTotal.WithLabelValues(string(severity), string(result.Action)).Inc()
	}()

	if !c.shouldReport() {
		logger(ctx).Debug().
			Str("evt.name", "reporter.suppressed").
			Str("app.version", c.env.AppVersion()).
			Msg("reporter: not reporting errors of a dev build")
		return result
	}

	c.addPackageMetadata(r)
	pending := c.BuildReport(r, severity)

	if hasPrivate {
		key := consent.Key(private.RequestName)
		asked, err := consent.Asked(ctx, c.store, key)
		if err != nil {
			logger(ctx).Warn().
				Err(err).
				Str("consent.key", key).
				Msg("reporter: failed to read consent store, asking again")
		}
		if !asked {
			c.requestPrivateMetadataConsent(ctx, r, pending, private, key)
			return Result{Action: ActionAwaitingConsent, ReportID: pending.ID}
		}
		logger(ctx).Debug().
			Str("evt.name", "reporter.consent.skipped").
			Str("report.id", pending.ID).
			Str("consent.key", key).
			Msg("reporter: consent already requested, reporting without private metadata")
	}

	c.Submit(ctx, pending)
	return Result{Action: ActionReported, ReportID: pending.ID}
}
