package handlers

import (
	"log/slog"
	"net/http"

	"go_workout_tracker/internal/model"
	"go_workout_tracker/internal/service"
	"go_workout_tracker/internal/webutil"
)

// MaintenanceHandler serves schema bootstrap and the health check.
type MaintenanceHandler struct {
	service service.SchemaService
	logger  *slog.Logger
}

func NewMaintenanceHandler(s service.SchemaService, logger *slog.Logger) *MaintenanceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MaintenanceHandler{service: s, logger: logger}
}

// InitDatabase handles POST /init.
func (h *MaintenanceHandler) InitDatabase(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "InitDatabase")

	if err := h.service.Initialize(r.Context()); err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INIT_FAILED", "Failed to initialize database", err))
		return
	}

	logger.Info("Database initialized")
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Database initialized successfully"}, logger)
}

// Health handles GET /health.
func (h *MaintenanceHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "Health")

	version, err := h.service.CheckConnection(r.Context())
	if err != nil {
		logger.Error("Health check failed", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("DB_UNAVAILABLE", "Database not connected", err))
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Database connected", Version: version}, logger)
}
