package contracts

import (
	"context"
	"ortoform-service/internal/app/models"
)

// ResponseRepository persists one respondent's answer set per storage key.
type ResponseRepository interface {
	SaveResponses(ctx context.Context, storageKey string, responses models.ResponseMap) error
	// LoadResponses returns nil with no error when nothing is stored.
	LoadResponses(ctx context.Context, storageKey string) (models.ResponseMap, error)
	DeleteResponses(ctx context.Context, storageKey string) error
}
