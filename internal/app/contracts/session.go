package contracts

import (
	"context"
	"ortoform-service/internal/app/models"
)

type SessionRepository interface {
	InsertSession(ctx context.Context, session *models.FillSession) error
	FindBySessionID(ctx context.Context, sessionID string) (*models.FillSession, error)
	// UpdateProgress writes progress only while the session is still pending,
	// so a late progress update can never clobber a completed record. It
	// reports whether a pending record matched; false means the session
	// completed in the meantime and the write was discarded.
	UpdateProgress(ctx context.Context, sessionID string, progress models.SessionProgress) (bool, error)
	// CompleteSession performs the single terminal pending->completed write.
	// It reports whether this call performed the transition; false means the
	// session was already completed.
	CompleteSession(ctx context.Context, sessionID string, responses models.ResponseMap, completedAt string) (bool, error)
	FindLatestCompletedByStorageKey(ctx context.Context, storageKey string) (*models.FillSession, error)
}

// SessionNotifier fans session record changes out to subscribed initiators.
type SessionNotifier interface {
	Publish(ctx context.Context, session *models.FillSession) error
	// Subscribe returns a channel of record snapshots and a stop function.
	// The caller must call stop to release the subscription.
	Subscribe(ctx context.Context, sessionID string) (<-chan *models.FillSession, func(), error)
}
