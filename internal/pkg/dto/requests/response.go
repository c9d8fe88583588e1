package requests

import "ortoform-service/internal/app/models"

type SaveResponses struct {
	Responses models.ResponseMap `json:"responses" validate:"required"`
}
