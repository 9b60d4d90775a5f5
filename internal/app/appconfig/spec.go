package appconfig

import (
	"time"

	"github.com/atom/exception-reporting/internal/app/appcontext"
)

type ConfigSpec struct {
	// APIKey is the collector project key sent as `apiKey` in every payload.
	APIKey string `envconfig:"API_KEY" required:"true"`

	// Endpoint is the collector URL payloads are POSTed to.
	Endpoint string `required:"true" split_words:"true" default:"https://notify.bugsnag.com"`

	// AlwaysReport forces reporting regardless of the host's release channel. When false, only
	// released builds (stable and beta) are reported and dev builds are silently suppressed.
	AlwaysReport bool `split_words:"true" default:"false"`

	// StackTraceLimit is the maximum number of stack frames included in a report.
	StackTraceLimit int `split_words:"true" default:"10"`

	// ProjectRoot is the root of the host project tree. Frames under it are reported with a relative
	// path and flagged as in-project. Defaults to the working directory when empty.
	ProjectRoot string `split_words:"true"`

	// ResourcePath is the host application's own install directory. Active packages installed under
	// it are reported as bundled packages.
	ResourcePath string `split_words:"true"`

	// AppVersion is the host application version, used for `app.version` and the release stage.
	AppVersion string `split_words:"true" default:"0.0.0-dev"`

	// PackageManifest is an optional path to a JSON list of the host's active packages, in the form
	// [{"name": "...", "path": "...", "metadata": {"version": "..."}}].
	PackageManifest string `split_words:"true"`

	// ConsentStoreDriver selects where consent prompts are remembered.
	// Valid values are: disk, memory, redis.
	ConsentStoreDriver string `required:"true" split_words:"true" default:"disk"`

	// ConsentStorePath is the base directory of the disk consent store.
	ConsentStorePath string `split_words:"true" default:".exception-reporting/consent"`

	// RedisURL is the URL of the Redis server used by the redis consent store. See
	// https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL for the format.
	RedisURL string `split_words:"true" default:"redis://127.0.0.1:6379/1"`

	// RequestTimeout bounds a single POST to the collector.
	RequestTimeout time.Duration `split_words:"true" default:"10s"`

	// DevMode switches logging to trace level.
	DevMode bool `split_words:"true"`

	// LogJSONStdout is whether to log JSON logs (instead of pretty-print logs) to stdout.
	LogJSONStdout bool `envconfig:"LOG_JSON_STDOUT" default:"false"`

	// LogFile is an optional path of a rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true"`

	// PushgatewayURL is an optional Prometheus Pushgateway the CLI pushes its metrics to when a
	// command finishes. Embedding hosts scrape the default registry instead.
	PushgatewayURL string `split_words:"true"`

	// SentryDSN is the DSN used to report failures of the reporter itself. See
	// https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
