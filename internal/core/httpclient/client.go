package httpclient

import (
	"net/http"
	"time"

	"memorial-banner/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper traces every outgoing request.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs its outcome.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Named("httpclient")

	log.Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// HeaderRoundTripper stamps fixed headers (e.g. an anti-forgery token) on every request.
type HeaderRoundTripper struct {
	Headers http.Header
	Proxied http.RoundTripper
}

// RoundTrip clones the request, sets the headers that are not already present and forwards it.
func (hrt *HeaderRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	for key, values := range hrt.Headers {
		if out.Header.Get(key) != "" {
			continue
		}
		for _, v := range values {
			out.Header.Add(key, v)
		}
	}
	return hrt.Proxied.RoundTrip(out)
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return NewClientWithHeaders(timeout, nil)
}

// NewClientWithHeaders returns a logging http.Client that also sets headers on each request.
func NewClientWithHeaders(timeout time.Duration, headers http.Header) *http.Client {
	var transport http.RoundTripper = &LoggingRoundTripper{
		Proxied: http.DefaultTransport,
	}
	if len(headers) > 0 {
		transport = &HeaderRoundTripper{Headers: headers, Proxied: transport}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
