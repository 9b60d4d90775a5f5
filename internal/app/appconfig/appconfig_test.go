package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atom/exception-reporting/internal/app/appcontext"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("EXCEPTION_REPORTING_API_KEY", "test-key")

	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)

	assert.Equal(t, "test-key", conf.APIKey)
	assert.Equal(t, "https://notify.bugsnag.com", conf.Endpoint)
	assert.False(t, conf.AlwaysReport)
	assert.Equal(t, 10, conf.StackTraceLimit)
	assert.Equal(t, DriverDisk, conf.ConsentStoreDriver)
	assert.Equal(t, 10*time.Second, conf.RequestTimeout)
	assert.NotEmpty(t, conf.ProjectRoot)
	assert.Equal(t, appcontext.EnvCLI, conf.AppContext.Env)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("EXCEPTION_REPORTING_API_KEY", "test-key")
	t.Setenv("EXCEPTION_REPORTING_ALWAYS_REPORT", "true")
	t.Setenv("EXCEPTION_REPORTING_STACK_TRACE_LIMIT", "3")
	t.Setenv("EXCEPTION_REPORTING_PROJECT_ROOT", "/srv/atom")
	t.Setenv("EXCEPTION_REPORTING_CONSENT_STORE_DRIVER", "redis")

	conf, err := Parse(appcontext.Declare(appcontext.EnvEmbedded))
	require.NoError(t, err)

	assert.True(t, conf.AlwaysReport)
	assert.Equal(t, 3, conf.StackTraceLimit)
	assert.Equal(t, "/srv/atom", conf.ProjectRoot)
	assert.Equal(t, DriverRedis, conf.ConsentStoreDriver)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"missing api key": {"EXCEPTION_REPORTING_API_KEY": ""},
		"unknown driver": {
			"EXCEPTION_REPORTING_API_KEY":              "test-key",
			"EXCEPTION_REPORTING_CONSENT_STORE_DRIVER": "sqlite",
		},
		"non-positive stack trace limit": {
			"EXCEPTION_REPORTING_API_KEY":           "test-key",
			"EXCEPTION_REPORTING_STACK_TRACE_LIMIT": "0",
		},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Parse(appcontext.Declare(appcontext.EnvCLI))
			assert.Error(t, err)
		})
	}
}
