package reporter

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/samber/lo"

	"github.com/atom/exception-reporting/internal/consent"
	"github.com/atom/exception-reporting/internal/model"
	"github.com/atom/exception-reporting/internal/notification"
	"github.com/atom/exception-reporting/internal/pkg/observability"
)

const (
	consentMessage = "The Atom team would like to collect additional information to resolve this error"

	declineButtonText = "No, don't report additional data"
	acceptButtonText  = "Yes, include additional data: %s"
)

const (
	decisionAccepted  = "accepted"
	decisionDeclined  = "declined"
	decisionDismissed = "dismissed"
)

// requestPrivateMetadataConsent records that key was asked and shows the prompt. pending is
// submitted exactly once, when the prompt is first resolved.
func (c *Client) requestPrivateMetadataConsent(ctx context.Context, r *model.ErrorReport, pending *PendingReport, private model.PrivateData, key string) {
	err := c.store.Set(ctx, key, consent.Record{
		RequestName: private.RequestName,
		AskedAt:     time.Now(),
	})
	if err != nil {
		logger(ctx).Warn().
			Err(err).
			Str("consent.key", key).
			Msg("reporter: failed to record consent prompt")
	}

	var (
		resolved atomic.Bool
		n        notification.Notification
	)
	// Dismiss below re-enters resolve through OnDidDismiss, the flag turns that into a no-op.
	resolve := func(decision string) {
		if !resolved.CompareAndSwap(false, true) {
			return
		}
		defer func() {
			if v := recover(); v != nil {
				c.handlePanic(ctx, "consent", v)
			}
		}()

		if decision == decisionAccepted {
			r.Metadata = lo.Assign(r.Metadata, private.Metadata)
			pending.mergeMetadata(private.Metadata)
		}
		observability.ConsentDecisions.WithLabelValues(decision).Inc()
		logger(ctx).Info().
			Str("evt.name", "reporter.consent.resolved").
			Str("report.id", pending.ID).
			Str("consent.key", key).
			Str("decision", decision).
			Msg("reporter: consent prompt resolved")

		if n != nil {
			n.Dismiss()
		}
		c.Submit(ctx, pending)
	}

	observability.ConsentPrompts.Inc()
	logger(ctx).Info().
		Str("evt.name", "reporter.consent.prompt").
		Str("report.id", pending.ID).
		Str("consent.key", key).
		Msg("reporter: asking for consent to send private metadata")

	n = c.notifications.AddInfo(consentMessage, notification.Options{
		Detail:      private.Description,
		Dismissable: true,
		Buttons: []notification.Button{
			{
				Text:       declineButtonText,
				OnDidClick: func() { resolve(decisionDeclined) },
			},
			{
				Text:       fmt.Sprintf(acceptButtonText, private.Description),
				OnDidClick: func() { resolve(decisionAccepted) },
			},
		},
	})
	if n == nil {
		logger(ctx).Warn().
			Str("report.id", pending.ID).
			Msg("reporter: notification could not be shown, reporting without private metadata")
		resolve(decisionDismissed)
		return
	}
	n.OnDidDismiss(func() { resolve(decisionDismissed) })
}
