package transport

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// NewWriter prints requests to w instead of sending them.
func NewWriter(w io.Writer) RequestFunc {
	return func(url string, opts Options) {
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "%s %s\n", opts.Method, url)

		keys := make([]string, 0, len(opts.Headers))
		for key := range opts.Headers {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, value := range opts.Headers[key] {
				fmt.Fprintf(&buf, "%s: %s\n", key, value)
			}
		}
		buf.WriteByte('\n')

		if err := json.Indent(&buf, []byte(opts.Body), "", "  "); err != nil {
			buf.WriteString(opts.Body)
		}
		buf.WriteByte('\n')

		if _, err := w.Write(buf.Bytes()); err != nil {
			log.Warn().Err(err).Msg("transport: failed to write request")
		}
	}
}
