package webutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go_workout_tracker/internal/model"

	"github.com/go-chi/chi/v5"
)

// DecodeJSONBody decodes the request body into dst. An empty or malformed
// body yields model.ErrInvalidInput.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}

// ParseIDParam reads the named chi URL parameter as a positive integer id.
func ParseIDParam(r *http.Request, name string) (int64, *model.AppError) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, model.NewAppError("MISSING_ID", "Missing id", model.ErrInvalidInput)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, model.NewAppError("INVALID_ID", "Invalid id", model.ErrInvalidInput)
	}
	return id, nil
}
