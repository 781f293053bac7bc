package http

import (
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"weather-app/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) LogRequest(string, string, map[string]string)                            {}
func (NopLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {}
func (NopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {
}

// ZapLogger writes HTTP traffic to pkg/log. Query parameters listed in
// SecretParams have their values masked before anything is logged.
type ZapLogger struct {
	Name         string
	SecretParams []string
}

// NewZapLogger creates a logger tagged with the given client name.
func NewZapLogger(name string, secretParams ...string) *ZapLogger {
	return &ZapLogger{Name: name, SecretParams: secretParams}
}

func (l *ZapLogger) LogRequest(method, rawURL string, _ map[string]string) {
	log.Debug("http request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", l.Redact(rawURL)))
}

func (l *ZapLogger) LogResponseSuccess(method, rawURL string, _ map[string]string, httpStatus int, _ string, latency int64) {
	log.Debug("http response",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", l.Redact(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(method, rawURL string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("http response error",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", l.Redact(rawURL)),
		zap.Int("status", httpStatus),
		zap.String("response", truncate(responseBody, 512)),
		zap.Int64("latency_ms", latency),
		zap.Error(RedactError(err, l.SecretParams...)))
}

// Redact masks the secret query parameters of rawURL.
func (l *ZapLogger) Redact(rawURL string) string {
	return redactURL(rawURL, l.SecretParams)
}

// RedactError masks secretParams in transport errors, which quote the full request URL.
// Errors of any other type are returned unchanged.
func RedactError(err error, secretParams ...string) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: redactURL(urlErr.URL, secretParams), Err: urlErr.Err}
}

func redactURL(rawURL string, secretParams []string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	changed := false
	for _, name := range secretParams {
		if query.Has(name) {
			query.Set(name, "***")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func truncate(value string, max int) string {
	value = strings.TrimSpace(value)
	if len(value) <= max {
		return value
	}
	return value[:max] + "..."
}
