package nws

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testUserAgent = "WeatherNet-Test (ops@example.org)"

func testClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		userAgent:  testUserAgent,
		area:       "UT",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestFetchActiveAlerts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alerts/active", r.URL.Path)
		assert.Equal(t, "UT", r.URL.Query().Get("area"))
		assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(`{"features": [
			{"properties": {"headline": "Winter Storm Warning issued November 2", "event": "Winter Storm Warning"}},
			{"properties": {"event": "Red Flag Warning"}},
			{"properties": {}}
		]}`))
	}))
	defer srv.Close()

	got := testClient(srv.URL).FetchActiveAlerts(context.Background())
	assert.Equal(t, []string{
		"Winter Storm Warning issued November 2",
		"Red Flag Warning",
	}, got)
}

func TestFetchActiveAlerts_HeadlineFallsBackToEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features": [{"properties": {"headline": "", "event": "Wind Advisory"}}]}`))
	}))
	defer srv.Close()

	got := testClient(srv.URL).FetchActiveAlerts(context.Background())
	assert.Equal(t, []string{"Wind Advisory"}, got)
}

func TestFetchActiveAlerts_NoAlerts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	assert.Empty(t, testClient(srv.URL).FetchActiveAlerts(context.Background()))
}

func TestFetchActiveAlerts_ServerErrorDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	assert.Empty(t, testClient(srv.URL).FetchActiveAlerts(context.Background()))
}

func TestFetchActiveAlerts_MalformedBodyDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("nope"))
	}))
	defer srv.Close()

	assert.Empty(t, testClient(srv.URL).FetchActiveAlerts(context.Background()))
}

func TestFetchActiveAlerts_TransportErrorDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	assert.Empty(t, testClient(srv.URL).FetchActiveAlerts(context.Background()))
}
