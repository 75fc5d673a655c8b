// internal/handlers/exercise_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_workout_tracker/internal/model"
	"go_workout_tracker/internal/service"
	"go_workout_tracker/internal/webutil"
)

type ExerciseHandler struct {
	service service.ExerciseService
	logger  *slog.Logger
}

func NewExerciseHandler(s service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExerciseHandler{
		service: s,
		logger:  logger,
	}
}

// GetExercise handles GET /exercises/{id}.
func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetExercise")

	id, appErr := webutil.ParseIDParam(r, "id")
	if appErr != nil {
		logger.Warn("Invalid exercise ID in URL", slog.String("error", appErr.Message))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int64("exercise_id", id))

	exercise, err := h.service.GetExercise(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Exercise not found")
			webutil.HandleError(w, logger, model.NewAppError("EXERCISE_NOT_FOUND", "Exercise not found", err))
			return
		}
		logger.Error("Error getting exercise from service", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL", "Failed to fetch exercise", err))
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, exercise, logger)
}

// AddExercise handles POST /exercises.
func (h *ExerciseHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "AddExercise")

	var req model.CreateExerciseRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_JSON", "Invalid JSON body", err))
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int64("program_id", req.ProgramID))

	exercise, err := h.service.AddExercise(r.Context(), &req)
	if err != nil {
		logger.Error("Error adding exercise in service", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL", "Failed to add exercise", err))
		return
	}

	logger.Info("Exercise added successfully", slog.Int64("exercise_id", exercise.ID))
	webutil.RespondWithJSON(w, http.StatusOK, exercise, logger)
}

// UpdateExercise handles PUT /exercises/{id}.
func (h *ExerciseHandler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "UpdateExercise")

	id, appErr := webutil.ParseIDParam(r, "id")
	if appErr != nil {
		logger.Warn("Invalid exercise ID in URL", slog.String("error", appErr.Message))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int64("exercise_id", id))

	var req model.UpdateExerciseRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_JSON", "Invalid JSON body", err))
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	exercise, err := h.service.UpdateExercise(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Exercise not found for update")
			webutil.HandleError(w, logger, model.NewAppError("EXERCISE_NOT_FOUND", "Exercise not found", err))
			return
		}
		logger.Error("Error updating exercise in service", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL", "Failed to update exercise", err))
		return
	}

	logger.Info("Exercise updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, exercise, logger)
}

// DeleteExercise handles DELETE /exercises/{id}.
func (h *ExerciseHandler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "DeleteExercise")

	id, appErr := webutil.ParseIDParam(r, "id")
	if appErr != nil {
		logger.Warn("Invalid exercise ID in URL", slog.String("error", appErr.Message))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int64("exercise_id", id))

	if err := h.service.DeleteExercise(r.Context(), id); err != nil {
		logger.Error("Error deleting exercise in service", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL", "Failed to delete exercise", err))
		return
	}

	logger.Info("Exercise deleted successfully (or was already deleted)")
	webutil.RespondWithJSON(w, http.StatusOK, model.SuccessResponse{Success: true}, logger)
}
