package sessions

import (
	"context"
	"ortoform-service/internal/app/models"
	"ortoform-service/internal/pkg/dto/responses"
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, questionnaireID, title string) (*responses.CreatedSession, error)
	FindSessionByID(ctx context.Context, sessionID string) (*models.FillSession, error)
	// SubscribeSession emits the current record and every subsequent change.
	// The channel is closed after a completed record has been delivered or
	// when ctx is done; the stop function releases the subscription early.
	SubscribeSession(ctx context.Context, sessionID string) (<-chan *models.FillSession, func(), error)

	// Filler-side operations.
	DescribeFillSession(ctx context.Context, sessionID string) (*responses.FillSessionView, error)
	UpdateProgress(ctx context.Context, sessionID string, current, total int) error
	CompleteSession(ctx context.Context, sessionID string, responseMap models.ResponseMap) error
}
