package niucloud

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// loggingTransport logs every round trip at debug level.
type loggingTransport struct {
	next http.RoundTripper
}

// RoundTrip performs the request and logs method, path, status and duration.
func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(r)
	if err != nil {
		log.Debug().
			Err(err).
			Str("method", r.Method).
			Str("host", r.URL.Host).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Request failed")
		return nil, err
	}

	log.Debug().
		Str("method", r.Method).
		Str("host", r.URL.Host).
		Str("path", r.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Request processed")

	return resp, nil
}
