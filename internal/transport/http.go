package transport

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/atom/exception-reporting/internal/app/appconfig"
	"github.com/atom/exception-reporting/internal/pkg/bininfo"
	"github.com/atom/exception-reporting/internal/pkg/observability"
)

func NewClient() *fasthttp.Client {
	return &fasthttp.Client{
		Name: "exception-reporting/" + bininfo.Version,
		// a report is sent once or lost
		MaxIdemponentCallAttempts: 1,
		MaxConnsPerHost:           4,
	}
}

// NewHTTP sends requests with client, giving up after timeout.
func NewHTTP(client *fasthttp.Client, timeout time.Duration) RequestFunc {
	return func(url string, opts Options) {
		req := fasthttp.AcquireRequest()
		defer fasthttp.ReleaseRequest(req)
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(url)
		req.Header.SetMethod(opts.Method)
		for key, values := range opts.Headers {
			for _, value := range values {
				req.Header.Add(key, value)
			}
		}
		req.SetBodyString(opts.Body)

		start := time.Now()
		err := client.DoTimeout(req, resp, timeout)
		observability.TransportDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			observability.TransportFailures.WithLabelValues("network").Inc()
			log.Warn().
				Str("evt.name", "transport.failed").
				Err(err).
				Str("url", url).
				Msg("transport: dropping report, request failed")
			return
		}

		if code := resp.StatusCode(); code < 200 || code >= 300 {
			observability.TransportFailures.WithLabelValues("status").Inc()
			log.Warn().
				Str("evt.name", "transport.rejected").
				Int("status", code).
				Str("url", url).
				Bytes("body", resp.Body()).
				Msg("transport: collector rejected report")
			return
		}

		log.Debug().
			Str("evt.name", "transport.sent").
			Int("status", resp.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("transport: report sent")
	}
}

// FromConfig returns the RequestFunc of a standalone host.
func FromConfig(conf *appconfig.Config) RequestFunc {
	return NewHTTP(NewClient(), conf.RequestTimeout)
}
