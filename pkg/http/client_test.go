package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"weather-app/pkg/log"
)

type cityResponse struct {
	Name string  `json:"name"`
	Temp float64 `json:"temp"`
}

type errorResponse struct {
	Cod     string `json:"cod"`
	Message string `json:"message"`
}

func TestExecuteDecodesSuccess(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = io.WriteString(w, `{"name":"São Paulo","temp":24.5}`)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL+"/", ClientOptions{DefaultQueryParams: map[string]string{"appid": "k"}})
	successResp, errResp, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("data/2.5/weather").
		WithQueryParams(map[string]string{"q": "São Paulo", "units": "metric"}).
		WithSuccessResp(&cityResponse{}).
		Execute()

	if err != nil || errResp != nil {
		t.Fatalf("unexpected error: %v %v", err, errResp)
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	city := successResp.(*cityResponse)
	if city.Name != "São Paulo" || city.Temp != 24.5 {
		t.Fatalf("unexpected body %+v", city)
	}
	if gotQuery != "appid=k&q=S%C3%A3o+Paulo&units=metric" {
		t.Fatalf("query = %q", gotQuery)
	}
}

func TestExecuteReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"cod":"404","message":"city not found"}`)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, errResp, status, err := client.Request().
		WithPath("/data/2.5/weather").
		WithSuccessResp(&cityResponse{}).
		WithErrorResp(&errorResponse{}).
		Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected StatusError 404, got %v", err)
	}
	if status != http.StatusNotFound {
		t.Fatalf("status = %d", status)
	}
	if msg := errResp.(*errorResponse).Message; msg != "city not found" {
		t.Fatalf("error message = %q", msg)
	}
}

func TestExecuteTransportFailureHasZeroStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, _, status, err := NewHttpClient(baseURL, ClientOptions{}).Request().WithPath("/").Execute()
	if err == nil {
		t.Fatal("expected transport error")
	}
	if status != 0 {
		t.Fatalf("status = %d, want 0", status)
	}
}

func TestExecuteDecodeFailureKeepsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"name":`)
	}))
	defer server.Close()

	_, _, status, err := NewHttpClient(server.URL, ClientOptions{}).Request().
		WithSuccessResp(&cityResponse{}).
		Execute()
	if err == nil || status != http.StatusOK {
		t.Fatalf("expected decode error with status 200, got %d %v", status, err)
	}
}

func TestExecuteRequiresPath(t *testing.T) {
	_, _, _, err := NewHttpClient("http://localhost", ClientOptions{}).Request().WithPath("").Execute()
	if err == nil || !strings.Contains(err.Error(), "path is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestZapLoggerRedactsSecrets(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log.Replace(zap.New(core))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		DefaultQueryParams: map[string]string{"appid": "top-secret"},
		Logger:             NewZapLogger("openweather", "appid"),
	})
	_, _, _, _ = client.Request().WithQueryParams(map[string]string{"q": "Paris"}).Execute()

	if logs.Len() == 0 {
		t.Fatal("expected log entries")
	}
	for _, entry := range logs.All() {
		for _, field := range entry.Context {
			if strings.Contains(field.String, "top-secret") {
				t.Fatalf("secret leaked in field %s: %s", field.Key, field.String)
			}
		}
	}
	if logs.FilterMessage("http response error").Len() != 1 {
		t.Fatalf("expected one error entry, got %d", logs.FilterMessage("http response error").Len())
	}
}

func TestRedact(t *testing.T) {
	logger := NewZapLogger("test", "appid")
	got := logger.Redact("https://api.openweathermap.org/geo/1.0/direct?appid=abc&limit=5&q=Lon")
	if strings.Contains(got, "abc") || !strings.Contains(got, "appid=%2A%2A%2A") {
		t.Fatalf("redacted url = %q", got)
	}
	if got := logger.Redact("https://example.com/x?q=1"); got != "https://example.com/x?q=1" {
		t.Fatalf("unchanged url rewritten: %q", got)
	}
}

func TestRedactErrorMasksTransportURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewHttpClient(baseURL, ClientOptions{DefaultQueryParams: map[string]string{"appid": "top-secret"}})
	_, _, _, err := client.Request().WithPath("/data/2.5/weather").Execute()
	if err == nil || !strings.Contains(err.Error(), "top-secret") {
		t.Fatalf("expected raw transport error quoting the url, got %v", err)
	}

	redacted := RedactError(err, "appid")
	if strings.Contains(redacted.Error(), "top-secret") {
		t.Fatalf("secret leaked: %v", redacted)
	}
	var urlErr *url.Error
	if !errors.As(redacted, &urlErr) || !strings.Contains(urlErr.URL, "appid=%2A%2A%2A") {
		t.Fatalf("redacted error = %#v", redacted)
	}

	plain := errors.New("boom")
	if RedactError(plain, "appid") != plain {
		t.Fatal("non url errors must pass through")
	}
}
