package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(LoggingMiddleware(logger))
	r.Get("/programs/{id}", func(w http.ResponseWriter, r *http.Request) {
		GetLogger(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Program not found"}`))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/programs/42", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var inner, completed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &inner))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &completed))

	assert.Equal(t, "inside handler", inner["msg"])
	assert.NotEmpty(t, inner["req_id"], "handler logger carries the request id")
	assert.Equal(t, inner["req_id"], completed["req_id"])

	assert.Equal(t, "Request completed", completed["msg"])
	assert.Equal(t, "WARN", completed["level"])
	assert.Equal(t, float64(http.StatusNotFound), completed["status"])
	assert.Equal(t, "/programs/42", completed["path"])
	assert.Equal(t, float64(len(`{"error":"Program not found"}`)), completed["bytes_out"])
}

func TestLoggingMiddleware_DebugMasksHeaders(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodPost, "/programs", strings.NewReader(`{"name":"Push"}`))
	req.Header.Set("Authorization", "Bearer secret")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "[SENSITIVE]")
	assert.NotContains(t, out, "Bearer secret")
	assert.Contains(t, out, `{\"name\":\"Push\"}`)
}

func TestGetLogger_DefaultOutsideRequest(t *testing.T) {
	assert.Same(t, slog.Default(), GetLogger(context.Background()))

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, custom, GetLogger(WithLogger(context.Background(), custom)))
}
