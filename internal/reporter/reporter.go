// Package reporter decides whether and how an error is reported to the collector, asking the user
// for consent before private metadata leaves the machine.
package reporter

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/atom/exception-reporting/internal/app/appconfig"
	"github.com/atom/exception-reporting/internal/consent"
	"github.com/atom/exception-reporting/internal/host"
	"github.com/atom/exception-reporting/internal/model"
	"github.com/atom/exception-reporting/internal/notification"
	"github.com/atom/exception-reporting/internal/pkg/observability"
	"github.com/atom/exception-reporting/internal/transport"
)

const (
	DefaultEndpoint        = "https://notify.bugsnag.com"
	DefaultStackTraceLimit = 10
)

type Options struct {
	APIKey   string
	Endpoint string

	// AlwaysReport reports dev builds too. Otherwise only stable and beta builds are reported.
	AlwaysReport bool

	StackTraceLimit int

	// ProjectRoot is the host project tree: frames under it are in-project and reported with a
	// relative path.
	ProjectRoot string
}

func OptionsFromConfig(conf *appconfig.Config) Options {
	return Options{
		APIKey:          conf.APIKey,
		Endpoint:        conf.Endpoint,
		AlwaysReport:    conf.AlwaysReport,
		StackTraceLimit: conf.StackTraceLimit,
		ProjectRoot:     conf.ProjectRoot,
	}
}

type Client struct {
	opts          Options
	env           host.Environment
	notifications notification.Service
	store         consent.Store

	mu      sync.RWMutex
	request transport.RequestFunc
}

// New creates a Client. Missing collaborators fall back to inert ones: an empty host, an
// in-memory notification center and consent store, and a transport that drops everything.
func New(opts Options, env host.Environment, notifications notification.Service, store consent.Store, request transport.RequestFunc) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.StackTraceLimit <= 0 {
		opts.StackTraceLimit = DefaultStackTraceLimit
	}
	if env == nil {
		env = &host.Static{}
	}
	if notifications == nil {
		notifications = notification.NewCenter()
	}
	if store == nil {
		store = consent.NewMemoryStore()
	}
	if request == nil {
		request = transport.Discard
	}

	return &Client{
		opts:          opts,
		env:           env,
		notifications: notifications,
		store:         store,
		request:       request,
	}
}

// SetRequestFunction replaces the transport used by subsequent submissions.
func (c *Client) SetRequestFunction(fn transport.RequestFunc) {
	if fn == nil {
		fn = transport.Discard
	}
	c.mu.Lock()
	c.request = fn
	c.mu.Unlock()
}

func (c *Client) requestFunc() transport.RequestFunc {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.request
}

// ReportUncaughtException reports r with severity error.
func (c *Client) ReportUncaughtException(ctx context.Context, r *model.ErrorReport) Result {
	return c.report(ctx, r, model.SeverityError)
}

// ReportFailedAssertion reports r with severity warning.
func (c *Client) ReportFailedAssertion(ctx context.Context, r *model.ErrorReport) Result {
	return c.report(ctx, r, model.SeverityWarning)
}

func (c *Client) shouldReport() bool {
	return c.opts.AlwaysReport || model.ReleaseStage(c.env.AppVersion()) != model.ReleaseStageDev
}

// handlePanic records a panic recovered in the reporting path. It must never panic itself.
func (c *Client) handlePanic(ctx context.Context, op string, v any) {
	defer func() { _ = recover() }()

	observability.RecoveredPanics.Inc()
	logger(ctx).Error().
		Str("evt.name", "reporter.panic").
		Str("op", op).
		Interface("panic", v).
		Bytes("stack", debug.Stack()).
		Msg("reporter: recovered from panic while reporting")
	sentry.CurrentHub().Recover(v)
}

// logger returns the logger carried by ctx, or the global one.
func logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}
