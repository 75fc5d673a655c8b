package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_workout_tracker/internal/handlers"
	"go_workout_tracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRouter(ps service.ProgramService, es service.ExerciseService, ss service.SchemaService) *chi.Mux {
	ph := handlers.NewProgramHandler(ps, discardLogger)
	eh := handlers.NewExerciseHandler(es, discardLogger)
	mh := handlers.NewMaintenanceHandler(ss, discardLogger)

	r := chi.NewRouter()
	r.Get("/health", mh.Health)
	r.Route("/api", func(r chi.Router) {
		handlers.RegisterRoutes(r, ph, eh, mh)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), "body: %s", rr.Body.String())
}
