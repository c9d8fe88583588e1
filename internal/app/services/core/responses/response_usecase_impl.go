package responses

import (
	"context"
	"ortoform-service/internal/app/contracts"
	"ortoform-service/internal/app/models"
	"ortoform-service/internal/app/services/core/formengine"
	"ortoform-service/internal/app/services/core/scoring"
	"ortoform-service/internal/pkg/constvars"
	"ortoform-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type responseUsecase struct {
	Log                *zap.Logger
	Catalog            contracts.QuestionnaireCatalog
	ResponseRepository contracts.ResponseRepository
	SessionRepository  contracts.SessionRepository
}

func NewResponseUsecase(
	logger *zap.Logger,
	questionnaireCatalog contracts.QuestionnaireCatalog,
	responseRepository contracts.ResponseRepository,
	sessionRepository contracts.SessionRepository,
) ResponseUsecase {
	return &responseUsecase{
		Log:                logger,
		Catalog:            questionnaireCatalog,
		ResponseRepository: responseRepository,
		SessionRepository:  sessionRepository,
	}
}

func (uc *responseUsecase) SaveResponses(ctx context.Context, questionnaireID string, responseMap models.ResponseMap) error {
	definition, err := uc.Catalog.FindByID(questionnaireID)
	if err != nil {
		return err
	}

	// Stale conditional answers must never be persisted as current.
	pruned := formengine.Prune(definition, responseMap)
	return uc.ResponseRepository.SaveResponses(ctx, definition.StorageKey(), pruned)
}

// FindResponses checks the local store first; only when nothing is stored
// does it fall back to the most recently completed broker session for the
// storage key, mirroring that into the local store as a cache. A local copy
// always wins, so an older remote session can never overwrite newer answers.
func (uc *responseUsecase) FindResponses(ctx context.Context, questionnaireID string) (models.ResponseMap, error) {
	definition, err := uc.Catalog.FindByID(questionnaireID)
	if err != nil {
		return nil, err
	}
	storageKey := definition.StorageKey()

	local, err := uc.ResponseRepository.LoadResponses(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if local != nil {
		return local, nil
	}

	session, err := uc.SessionRepository.FindLatestCompletedByStorageKey(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Responses == nil {
		return nil, exceptions.ErrNoResponsesFound(storageKey)
	}

	if err := uc.ResponseRepository.SaveResponses(ctx, storageKey, session.Responses); err != nil {
		// The session copy is still authoritative; a failed mirror only
		// costs the next lookup another broker round trip.
		uc.Log.Warn("failed to mirror completed session responses into local store",
			zap.String(constvars.LoggingStorageKeyKey, storageKey),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
	}
	return session.Responses, nil
}

func (uc *responseUsecase) DeleteResponses(ctx context.Context, questionnaireID string) error {
	definition, err := uc.Catalog.FindByID(questionnaireID)
	if err != nil {
		return err
	}
	return uc.ResponseRepository.DeleteResponses(ctx, definition.StorageKey())
}

func (uc *responseUsecase) CalculateResult(ctx context.Context, questionnaireID string) (*models.QuestionnaireResult, error) {
	definition, err := uc.Catalog.FindByID(questionnaireID)
	if err != nil {
		return nil, err
	}

	responseMap, err := uc.FindResponses(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	result, err := scoring.Calculate(definition.ScoringName, responseMap)
	if err != nil {
		return nil, exceptions.ErrScoreCalculation(err, definition.ScoringName)
	}
	return result, nil
}
