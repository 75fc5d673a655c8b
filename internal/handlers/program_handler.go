// internal/handlers/program_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_workout_tracker/internal/middleware"
	"go_workout_tracker/internal/model"
	"go_workout_tracker/internal/service"
	"go_workout_tracker/internal/webutil"
)

type ProgramHandler struct {
	service service.ProgramService
	logger  *slog.Logger
}

func NewProgramHandler(s service.ProgramService, logger *slog.Logger) *ProgramHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgramHandler{
		service: s,
		logger:  logger,
	}
}

// requestLogger prefers the logger put in the context by LoggingMiddleware.
func requestLogger(r *http.Request, fallback *slog.Logger, handler string) *slog.Logger {
	logger := fallback
	if l := middleware.GetLogger(r.Context()); l != slog.Default() {
		logger = l
	}
	return logger.With(slog.String("handler", handler))
}

// ListPrograms handles GET /programs.
func (h *ProgramHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "ListPrograms")

	programs, err := h.service.ListPrograms(r.Context())
	if err != nil {
		logger.Error("Error listing programs in service", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL", "Failed to fetch programs", err))
		return
	}
	if programs == nil {
		programs = []model.WorkoutProgram{}
	}

	logger.Info("Programs listed successfully", slog.Int("count", len(programs)))
	webutil.RespondWithJSON(w, http.StatusOK, programs, logger)
}

// CreateProgram handles POST /programs.
func (h *ProgramHandler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "CreateProgram")

	var req model.CreateProgramRequest
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

	program, err := h.service.CreateProgram(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating program in service", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL", "Failed to create program", err))
		return
	}

	logger.Info("Program created successfully", slog.Int64("program_id", program.ID))
	webutil.RespondWithJSON(w, http.StatusOK, program, logger)
}

// GetProgram handles GET /programs/{id}.
func (h *ProgramHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetProgram")

	id, appErr := webutil.ParseIDParam(r, "id")
	if appErr != nil {
		logger.Warn("Invalid program ID in URL", slog.String("error", appErr.Message))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int64("program_id", id))

	program, err := h.service.GetProgram(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Program not found")
			webutil.HandleError(w, logger, model.NewAppError("PROGRAM_NOT_FOUND", "Program not found", err))
			return
		}
		logger.Error("Error getting program from service", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL", "Failed to fetch program", err))
		return
	}

	logger.Info("Program retrieved successfully", slog.Int("exercises", len(program.Exercises)))
	webutil.RespondWithJSON(w, http.StatusOK, program, logger)
}

// UpdateProgram handles PUT /programs/{id}. All fields are replaced.
func (h *ProgramHandler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "UpdateProgram")

	id, appErr := webutil.ParseIDParam(r, "id")
	if appErr != nil {
		logger.Warn("Invalid program ID in URL", slog.String("error", appErr.Message))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int64("program_id", id))

	var req model.UpdateProgramRequest
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

	program, err := h.service.UpdateProgram(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Program not found for update")
			webutil.HandleError(w, logger, model.NewAppError("PROGRAM_NOT_FOUND", "Program not found", err))
			return
		}
		logger.Error("Error updating program in service", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL", "Failed to update program", err))
		return
	}

	logger.Info("Program updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, program, logger)
}

// DeleteProgram handles DELETE /programs/{id}. Deleting a missing program
// still succeeds.
func (h *ProgramHandler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "DeleteProgram")

	id, appErr := webutil.ParseIDParam(r, "id")
	if appErr != nil {
		logger.Warn("Invalid program ID in URL", slog.String("error", appErr.Message))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int64("program_id", id))

	if err := h.service.DeleteProgram(r.Context(), id); err != nil {
		logger.Error("Error deleting program in service", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL", "Failed to delete program", err))
		return
	}

	logger.Info("Program deleted successfully (or was already deleted)")
	webutil.RespondWithJSON(w, http.StatusOK, model.SuccessResponse{Success: true}, logger)
}
