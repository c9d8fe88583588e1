package routers

import (
	"fmt"
	"time"

	"ortoform-service/internal/app/config"
	"ortoform-service/internal/app/delivery/http/middlewares"
	"ortoform-service/internal/app/services/core/catalog"
	"ortoform-service/internal/app/services/core/responses"
	"ortoform-service/internal/app/services/core/sessions"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	catalogController *catalog.CatalogController,
	responseController *responses.ResponseController,
	sessionController *sessions.SessionController,
	fillController *sessions.FillController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := internalConfig.App.EndpointPrefix
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/questionnaires", func(r chi.Router) {
				attachQuestionnaireRoutes(r, catalogController)
				attachResponseRoutes(r, responseController)
			})

			r.Route("/sessions", func(r chi.Router) {
				attachSessionRoutes(r, sessionController)
			})

			r.Route("/fill", func(r chi.Router) {
				attachFillRoutes(r, middlewares, fillController)
			})
		})
	})
}
