package routers

import (
	"ortoform-service/internal/app/services/core/sessions"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, sessionController *sessions.SessionController) {
	router.Post("/", sessionController.CreateSession)
	router.Get("/{session_id}", sessionController.FindSessionByID)
	router.Get("/{session_id}/events", sessionController.StreamSessionEvents)
}
