package requests

import "ortoform-service/internal/app/models"

type CreateSession struct {
	QuestionnaireID string `json:"questionnaireId" validate:"required"`
	Title           string `json:"title"`
}

type UpdateProgress struct {
	Current int `json:"current" validate:"min=0"`
	Total   int `json:"total" validate:"min=0"`
}

type CompleteSession struct {
	Responses models.ResponseMap `json:"responses" validate:"required"`
}
