package responses

import (
	"context"
	"ortoform-service/internal/app/models"
)

type ResponseUsecase interface {
	SaveResponses(ctx context.Context, questionnaireID string, responses models.ResponseMap) error
	// FindResponses resolves the two-tier lookup: local store first, then the
	// most recently completed broker session for the instrument.
	FindResponses(ctx context.Context, questionnaireID string) (models.ResponseMap, error)
	DeleteResponses(ctx context.Context, questionnaireID string) error
	CalculateResult(ctx context.Context, questionnaireID string) (*models.QuestionnaireResult, error)
}
