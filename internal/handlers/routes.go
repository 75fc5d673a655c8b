package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the API on r. The caller decides the base path.
func RegisterRoutes(r chi.Router, ph *ProgramHandler, eh *ExerciseHandler, mh *MaintenanceHandler) {
	r.Route("/programs", func(r chi.Router) {
		r.Get("/", ph.ListPrograms)
		r.Post("/", ph.CreateProgram)
		r.Get("/{id}", ph.GetProgram)
		r.Put("/{id}", ph.UpdateProgram)
		r.Delete("/{id}", ph.DeleteProgram)
	})

	r.Route("/exercises", func(r chi.Router) {
		r.Post("/", eh.AddExercise)
		r.Get("/{id}", eh.GetExercise)
		r.Put("/{id}", eh.UpdateExercise)
		r.Delete("/{id}", eh.DeleteExercise)
	})

	r.Post("/init", mh.InitDatabase)
}
