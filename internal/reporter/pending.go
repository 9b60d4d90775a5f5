package reporter

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/xid"
	"github.com/samber/lo"

	"github.com/atom/exception-reporting/internal/model"
	"github.com/atom/exception-reporting/internal/pkg/bininfo"
	"github.com/atom/exception-reporting/internal/pkg/observability"
	"github.com/atom/exception-reporting/internal/pkg/osinfo"
	"github.com/atom/exception-reporting/internal/pkg/stacktrace"
	"github.com/atom/exception-reporting/internal/transport"
)

// PendingReport is a payload built from an ErrorReport but not yet submitted. Its metadata is a
// snapshot: later changes to the report do not affect it.
type PendingReport struct {
	ID       string
	Severity model.Severity
	Payload  *model.Payload
}

func (p *PendingReport) event() *model.Event {
	return &p.Payload.Events[0]
}

// Metadata returns the metadata that will be sent.
func (p *PendingReport) Metadata() model.Metadata {
	return p.event().MetaData
}

func (p *PendingReport) mergeMetadata(m model.Metadata) {
	p.event().MetaData = lo.Assign(p.event().MetaData, m)
}

// BuildReport assembles the payload for r. Private fields of r are never read.
func (c *Client) BuildReport(r *model.ErrorReport, severity model.Severity) *PendingReport {
	version := c.env.AppVersion()
	class := r.ErrorClass
	if class == "" {
		class = model.DefaultErrorClass
	}

	return &PendingReport{
		ID:       xid.New().String(),
		Severity: severity,
		Payload: &model.Payload{
			APIKey: c.opts.APIKey,
			Notifier: model.Notifier{
				Name:    bininfo.NotifierName,
				Version: bininfo.Version,
				URL:     bininfo.NotifierURL,
			},
			Events: []model.Event{{
				PayloadVersion: model.PayloadVersion,
				Exceptions: []model.Exception{{
					ErrorClass: class,
					Message:    r.Message,
					Stacktrace: c.stackFrames(r.Frames()),
				}},
				Severity: severity,
				App: model.App{
					Version:      version,
					ReleaseStage: model.ReleaseStage(version),
				},
				Device: model.Device{
					OSVersion: osinfo.Version(),
				},
				MetaData: lo.Assign(r.Metadata),
			}},
		},
	}
}

// Submit sends p through the current transport. Failures are logged, never returned.
func (c *Client) Submit(ctx context.Context, p *PendingReport) {
	defer func() {
		if v := recover(); v != nil {
			c.handlePanic(ctx, "submit", v)
		}
	}()

	body, err := json.Marshal(p.Payload)
	if err != nil {
		observability.TransportFailures.WithLabelValues("encode").Inc()
		logger(ctx).Error().
			Err(err).
			Str("report.id", p.ID).
			Msg("reporter: failed to encode payload")
		return
	}

	c.requestFunc()(c.opts.Endpoint, transport.Options{
		Method: http.MethodPost,
		Headers: http.Header{
			"Content-Type": []string{"application/json"},
		},
		Body: string(body),
	})

	logger(ctx).Info().
		Str("evt.name", "reporter.submitted").
		Str("report.id", p.ID).
		Str("severity", string(p.Severity)).
		Int("body.size", len(body)).
		Msg("reporter: report submitted")
}

func (c *Client) stackFrames(frames []stacktrace.Frame) []model.StackFrame {
	if len(frames) > c.opts.StackTraceLimit {
		frames = frames[:c.opts.StackTraceLimit]
	}
	return lo.Map(frames, func(f stacktrace.Frame, _ int) model.StackFrame {
		file, inProject := c.projectPath(f.File)
		return model.StackFrame{
			Method:       stacktrace.Method(f.Function),
			LineNumber:   f.Line,
			ColumnNumber: f.Column,
			File:         file,
			InProject:    inProject,
		}
	})
}

// projectPath returns file relative to the project root with forward slashes when it lies
// below the root, and file unchanged otherwise.
func (c *Client) projectPath(file string) (string, bool) {
	rel, ok := within(c.opts.ProjectRoot, file)
	if !ok {
		return file, false
	}
	return filepath.ToSlash(rel), true
}

// within reports whether target lies below dir, and the relative path if so.
func within(dir, target string) (string, bool) {
	if dir == "" || target == "" || !filepath.IsAbs(target) {
		return "", false
	}
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// addPackageMetadata splits the active packages into those shipped with the host and those
// installed by the user, and records both as name to version maps.
func (c *Client) addPackageMetadata(r *model.ErrorReport) {
	resourcePath := c.env.ResourcePath()
	bundled := func(p model.Package, _ int) bool {
		_, ok := within(resourcePath, p.Path)
		return ok
	}
	versions := func(packages []model.Package) map[string]string {
		return lo.Associate(packages, func(p model.Package) (string, string) {
			return p.Name, p.Version
		})
	}

	packages := c.env.ActivePackages()
	if r.Metadata == nil {
		r.Metadata = model.Metadata{}
	}
	r.Metadata["bundledPackages"] = versions(lo.Filter(packages, bundled))
	r.Metadata["userPackages"] = versions(lo.Reject(packages, bundled))
}
