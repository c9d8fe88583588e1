package routers

import (
	"ortoform-service/internal/app/services/core/responses"

	"github.com/go-chi/chi/v5"
)

func attachResponseRoutes(router chi.Router, responseController *responses.ResponseController) {
	router.Put("/{questionnaire_id}/responses", responseController.SaveResponses)
	router.Get("/{questionnaire_id}/responses", responseController.FindResponses)
	router.Delete("/{questionnaire_id}/responses", responseController.DeleteResponses)
	router.Get("/{questionnaire_id}/result", responseController.CalculateResult)
}
