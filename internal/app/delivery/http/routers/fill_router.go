package routers

import (
	"time"

	"ortoform-service/internal/app/delivery/http/middlewares"
	"ortoform-service/internal/app/services/core/sessions"

	"github.com/go-chi/chi/v5"
)

// The fill endpoints are reachable from any device that scanned a QR code,
// so they carry their own stricter per-IP limiter on top of the global one.
func attachFillRoutes(router chi.Router, m *middlewares.Middlewares, fillController *sessions.FillController) {
	fillLimiter := middlewares.NewRateLimiter(
		m.InternalConfig.App.MaxTimeRequestsPerSeconds,
		time.Second,
		time.Minute,
	)

	router.Use(fillLimiter.Limit)
	router.Get("/{session_id}", fillController.DescribeFillSession)
	router.Put("/{session_id}/progress", fillController.UpdateProgress)
	router.Post("/{session_id}/complete", fillController.CompleteSession)
}
