package report

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/atom/exception-reporting/internal/consent"
	"github.com/atom/exception-reporting/internal/host"
	"github.com/atom/exception-reporting/internal/notification"
	"github.com/atom/exception-reporting/internal/reporter"
)

const plainReport = `{"errorClass": "TypeError", "message": "boom", "metadata": {"grammar": "source.js"}}`

const privateReport = `{
	"message": "boom",
	"metadata": {"foo": "bar"},
	"privateMetadata": {"baz": "quux"},
	"privateMetadataDescription": "The contents of your document"
}`

type testApp struct {
	app    *cli.App
	out    *bytes.Buffer
	errOut *bytes.Buffer
	store  *consent.MemoryStore
}

func newTestApp(in io.Reader) *testApp {
	center := notification.NewCenter()
	store := consent.NewMemoryStore()
	deps := CommandDeps{
		Reporter: reporter.New(reporter.Options{APIKey: "test-key", AlwaysReport: true}, &host.Static{Version: "1.0.0"}, center, store, nil),
		Center:   center,
	}

	ta := &testApp{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, store: store}
	ta.app = &cli.App{
		Name:      "exception-reporting",
		Reader:    in,
		Writer:    ta.out,
		ErrWriter: ta.errOut,
		Commands: []*cli.Command{
			Command(func() (CommandDeps, func(), error) {
				return deps, func() {}, nil
			}),
		},
	}
	return ta
}

func writeReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReportFromStdin(t *testing.T) {
	ta := newTestApp(strings.NewReader(plainReport))

	require.NoError(t, ta.app.Run([]string{"exception-reporting", "report", "--dry-run"}))

	out := ta.out.String()
	assert.True(t, strings.HasPrefix(out, "POST https://notify.bugsnag.com\n"), out)
	assert.Contains(t, out, "Content-Type: application/json")
	assert.Contains(t, out, `"errorClass": "TypeError"`)
	assert.Contains(t, out, `"message": "boom"`)
	assert.Contains(t, out, `"grammar": "source.js"`)
	assert.Contains(t, out, `"severity": "error"`)
}

func TestReportAssertion(t *testing.T) {
	ta := newTestApp(strings.NewReader(""))

	require.NoError(t, ta.app.Run([]string{"exception-reporting", "report", "--dry-run", "--assertion", writeReport(t, plainReport)}))

	assert.Contains(t, ta.out.String(), `"severity": "warning"`)
}

func TestReportPrivateMetadataAccepted(t *testing.T) {
	ta := newTestApp(strings.NewReader("2\n"))

	require.NoError(t, ta.app.Run([]string{"exception-reporting", "report", "--dry-run", writeReport(t, privateReport)}))

	assert.Contains(t, ta.errOut.String(), "[2] Yes, include additional data: The contents of your document")
	assert.Contains(t, ta.out.String(), `"baz": "quux"`)
	assert.Contains(t, ta.out.String(), `"foo": "bar"`)
}

func TestReportPrivateMetadataDismissed(t *testing.T) {
	ta := newTestApp(strings.NewReader("\n"))

	require.NoError(t, ta.app.Run([]string{"exception-reporting", "report", "--dry-run", writeReport(t, privateReport)}))

	assert.Contains(t, ta.out.String(), `"foo": "bar"`)
	assert.NotContains(t, ta.out.String(), "quux")
}

func TestReportInvalidInput(t *testing.T) {
	ta := newTestApp(strings.NewReader("not json"))

	err := ta.app.Run([]string{"exception-reporting", "report", "--dry-run"})
	assert.ErrorContains(t, err, "failed to decode error report")
	assert.Empty(t, ta.out.String())

	err = ta.app.Run([]string{"exception-reporting", "report", filepath.Join(t.TempDir(), "missing.json")})
	assert.ErrorContains(t, err, "failed to open error report")
}
