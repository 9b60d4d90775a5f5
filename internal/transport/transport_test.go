package transport

import (
	"bytes"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

type received struct {
	method      string
	contentType string
	body        string
}

func startCollector(t *testing.T, status int) (*fasthttp.Client, <-chan received) {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	ch := make(chan received, 1)
	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			ch <- received{
				method:      string(ctx.Method()),
				contentType: string(ctx.Request.Header.ContentType()),
				body:        string(ctx.PostBody()),
			}
			ctx.SetStatusCode(status)
		},
	}
	go func() { _ = server.Serve(ln) }()
	t.Cleanup(func() { _ = ln.Close() })

	client := NewClient()
	client.Dial = func(addr string) (net.Conn, error) {
		return ln.Dial()
	}
	return client, ch
}

func TestHTTPPosts(t *testing.T) {
	client, ch := startCollector(t, fasthttp.StatusOK)
	request := NewHTTP(client, time.Second)

	request("http://collector.test/", Options{
		Method:  http.MethodPost,
		Headers: http.Header{"Content-Type": []string{"application/json"}},
		Body:    `{"apiKey":"k"}`,
	})

	select {
	case got := <-ch:
		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "application/json", got.contentType)
		assert.Equal(t, `{"apiKey":"k"}`, got.body)
	case <-time.After(time.Second):
		t.Fatal("collector did not receive the request")
	}
}

func TestHTTPFailuresDoNotPanic(t *testing.T) {
	client, ch := startCollector(t, fasthttp.StatusBadRequest)
	NewHTTP(client, time.Second)("http://collector.test/", Options{Method: http.MethodPost, Body: "{}"})
	<-ch

	unreachable := NewClient()
	unreachable.Dial = func(addr string) (net.Conn, error) {
		return nil, &net.OpError{Op: "dial", Net: "tcp", Err: assert.AnError}
	}
	assert.NotPanics(t, func() {
		NewHTTP(unreachable, 100*time.Millisecond)("http://collector.test/", Options{Method: http.MethodPost, Body: "{}"})
	})
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf)("https://notify.bugsnag.com", Options{
		Method:  http.MethodPost,
		Headers: http.Header{"Content-Type": []string{"application/json"}},
		Body:    `{"apiKey":"k"}`,
	})

	assert.Equal(t, "POST https://notify.bugsnag.com\nContent-Type: application/json\n\n{\n  \"apiKey\": \"k\"\n}\n", buf.String())
}

func TestWriterKeepsInvalidBody(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf)("u", Options{Method: http.MethodPost, Body: "not json"})
	require.Contains(t, buf.String(), "not json")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard("u", Options{}) })
}

func TestNewClientSendsOnce(t *testing.T) {
	client := NewClient()
	assert.Equal(t, 1, client.MaxIdemponentCallAttempts)
	assert.Equal(t, 4, client.MaxConnsPerHost)
	assert.Contains(t, client.Name, "exception-reporting/")
}
