package sessions

import (
	"context"
	"fmt"
	"time"

	"ortoform-service/internal/app/config"
	"ortoform-service/internal/app/contracts"
	"ortoform-service/internal/app/models"
	"ortoform-service/internal/app/services/core/formengine"
	"ortoform-service/internal/pkg/constvars"
	"ortoform-service/internal/pkg/dto/responses"
	"ortoform-service/internal/pkg/exceptions"
	"ortoform-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	Log               *zap.Logger
	Catalog           contracts.QuestionnaireCatalog
	SessionRepository contracts.SessionRepository
	SessionNotifier   contracts.SessionNotifier
	InternalConfig    *config.InternalConfig
}

func NewSessionUsecase(
	logger *zap.Logger,
	questionnaireCatalog contracts.QuestionnaireCatalog,
	sessionRepository contracts.SessionRepository,
	sessionNotifier contracts.SessionNotifier,
	internalConfig *config.InternalConfig,
) SessionUsecase {
	return &sessionUsecase{
		Log:               logger,
		Catalog:           questionnaireCatalog,
		SessionRepository: sessionRepository,
		SessionNotifier:   sessionNotifier,
		InternalConfig:    internalConfig,
	}
}

func (uc *sessionUsecase) CreateSession(ctx context.Context, questionnaireID, title string) (*responses.CreatedSession, error) {
	definition, err := uc.Catalog.FindByID(questionnaireID)
	if err != nil {
		return nil, err
	}

	sessionID, err := utils.GenerateSessionID()
	if err != nil {
		return nil, exceptions.ErrServerUnableToGenerateID(err)
	}

	now := time.Now().UTC()
	session := &models.FillSession{
		SessionID:       sessionID,
		QuestionnaireID: definition.ID,
		StorageKey:      definition.StorageKey(),
		Status:          models.SessionStatusPending,
		Created:         now.UnixMilli(),
		Progress:        models.SessionProgress{Current: 0, Total: 0},
		CreatedAt:       now,
	}

	if err := uc.SessionRepository.InsertSession(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("created fill session",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingQuestionnaireIDKey, definition.ID),
	)

	return &responses.CreatedSession{
		Session:  session,
		FillLink: fmt.Sprintf("%s/fill/%s", uc.InternalConfig.App.FrontendDomain, sessionID),
	}, nil
}

func (uc *sessionUsecase) FindSessionByID(ctx context.Context, sessionID string) (*models.FillSession, error) {
	session, err := uc.SessionRepository.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrSessionNotFound(sessionID)
	}
	return session, nil
}

// SubscribeSession registers with the notifier before reading the stored
// record, so a completion that lands between the two still arrives over
// the subscription instead of being lost. It emits the stored record
// first, then forwards notifier snapshots until a completed record has
// been delivered. The stream also re-reads the store on an interval, so
// even a publish that never reached the notifier cannot strand the
// subscriber on a stale pending record.
func (uc *sessionUsecase) SubscribeSession(ctx context.Context, sessionID string) (<-chan *models.FillSession, func(), error) {
	updates, stop, err := uc.SessionNotifier.Subscribe(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := uc.FindSessionByID(ctx, sessionID)
	if err != nil {
		stop()
		return nil, nil, err
	}

	out := make(chan *models.FillSession, 1)
	if snapshot.IsCompleted() {
		stop()
		out <- snapshot
		close(out)
		return out, func() {}, nil
	}

	go func() {
		defer close(out)
		defer stop()

		if !emit(ctx, out, snapshot) {
			return
		}
		last := snapshot

		resync := time.NewTicker(uc.resyncInterval())
		defer resync.Stop()

		for {
			select {
			case session, ok := <-updates:
				if !ok {
					return
				}
				// A pending record can only change in progress, so one that
				// matches the last emission carries nothing new.
				if !session.IsCompleted() && session.Progress == last.Progress {
					continue
				}
				if !emit(ctx, out, session) || session.IsCompleted() {
					return
				}
				last = session
			case <-resync.C:
				session, err := uc.SessionRepository.FindBySessionID(ctx, sessionID)
				if err != nil || session == nil {
					continue
				}
				if !session.IsCompleted() && session.Progress == last.Progress {
					continue
				}
				if !emit(ctx, out, session) || session.IsCompleted() {
					return
				}
				last = session
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, stop, nil
}

func emit(ctx context.Context, out chan<- *models.FillSession, session *models.FillSession) bool {
	select {
	case out <- session:
		return true
	case <-ctx.Done():
		return false
	}
}

func (uc *sessionUsecase) resyncInterval() time.Duration {
	seconds := uc.InternalConfig.App.SessionResyncIntervalInSeconds
	if seconds <= 0 {
		seconds = 15
	}
	return time.Duration(seconds) * time.Second
}

func (uc *sessionUsecase) DescribeFillSession(ctx context.Context, sessionID string) (*responses.FillSessionView, error) {
	session, err := uc.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted() {
		return nil, exceptions.ErrSessionAlreadyCompleted(sessionID)
	}

	definition, err := uc.Catalog.FindByID(session.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	return &responses.FillSessionView{
		SessionID:       session.SessionID,
		QuestionnaireID: session.QuestionnaireID,
		StorageKey:      session.StorageKey,
		Questionnaire:   definition,
	}, nil
}

func (uc *sessionUsecase) UpdateProgress(ctx context.Context, sessionID string, current, total int) error {
	if current < 0 || total < 0 || current > total {
		return exceptions.ErrProgressOutOfRange()
	}

	session, err := uc.FindSessionByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.IsCompleted() {
		// Late progress reports after completion carry no information.
		return nil
	}

	progress := models.SessionProgress{Current: current, Total: total}
	matched, err := uc.SessionRepository.UpdateProgress(ctx, sessionID, progress)
	if err != nil {
		return err
	}
	if !matched {
		// The session completed while this update was in flight; the write
		// was discarded, so broadcasting the stale pending record would
		// contradict the terminal status subscribers already saw.
		return nil
	}

	session.Progress = progress
	uc.publish(ctx, session)
	return nil
}

func (uc *sessionUsecase) CompleteSession(ctx context.Context, sessionID string, responseMap models.ResponseMap) error {
	session, err := uc.FindSessionByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.IsCompleted() {
		return nil
	}

	definition, err := uc.Catalog.FindByID(session.QuestionnaireID)
	if err != nil {
		return err
	}
	pruned := formengine.Prune(definition, responseMap)
	completedAt := time.Now().UTC().Format(constvars.SessionCompletedAtLayout)

	transitioned, err := uc.SessionRepository.CompleteSession(ctx, sessionID, pruned, completedAt)
	if err != nil {
		return err
	}
	if !transitioned {
		// Another filler won the completion race; their record stands.
		return nil
	}

	session.Status = models.SessionStatusCompleted
	session.Responses = pruned
	session.CompletedAt = completedAt
	uc.publish(ctx, session)

	uc.Log.Info("completed fill session",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingQuestionnaireIDKey, session.QuestionnaireID),
	)
	return nil
}

func (uc *sessionUsecase) publish(ctx context.Context, session *models.FillSession) {
	if err := uc.SessionNotifier.Publish(ctx, session); err != nil {
		// Subscribers miss one push; the stored record is still correct
		// and the stream's periodic store re-read catches them up.
		uc.Log.Warn("failed to publish session update",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
	}
}
