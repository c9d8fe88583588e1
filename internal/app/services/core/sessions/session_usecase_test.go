package sessions

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"ortoform-service/internal/app/config"
	"ortoform-service/internal/app/contracts"
	"ortoform-service/internal/app/models"
	"ortoform-service/internal/app/services/core/catalog"
	"ortoform-service/internal/pkg/constvars"
	"ortoform-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionRepository struct {
	mu              sync.Mutex
	sessions        map[string]*models.FillSession
	progressUpdates int
	// onFind runs once after the next read has taken its copy, simulating a
	// write that lands while the read is in flight.
	onFind func()
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]*models.FillSession)}
}

func (f *fakeSessionRepository) InsertSession(_ context.Context, session *models.FillSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *session
	f.sessions[session.SessionID] = &copied
	return nil
}

func (f *fakeSessionRepository) FindBySessionID(_ context.Context, sessionID string) (*models.FillSession, error) {
	f.mu.Lock()
	session, ok := f.sessions[sessionID]
	if !ok {
		f.mu.Unlock()
		return nil, nil
	}
	copied := *session
	hook := f.onFind
	f.onFind = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return &copied, nil
}

func (f *fakeSessionRepository) UpdateProgress(_ context.Context, sessionID string, progress models.SessionProgress) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progressUpdates++
	session, ok := f.sessions[sessionID]
	if !ok || session.Status != models.SessionStatusPending {
		return false, nil
	}
	session.Progress = progress
	return true, nil
}

func (f *fakeSessionRepository) CompleteSession(_ context.Context, sessionID string, responses models.ResponseMap, completedAt string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok || session.Status != models.SessionStatusPending {
		return false, nil
	}
	session.Status = models.SessionStatusCompleted
	session.Responses = responses
	session.CompletedAt = completedAt
	return true, nil
}

func (f *fakeSessionRepository) FindLatestCompletedByStorageKey(_ context.Context, storageKey string) (*models.FillSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *models.FillSession
	for _, session := range f.sessions {
		if session.StorageKey != storageKey || session.Status != models.SessionStatusCompleted {
			continue
		}
		if latest == nil || session.CompletedAt > latest.CompletedAt {
			latest = session
		}
	}
	return latest, nil
}

// fakeSessionNotifier mirrors redis pub/sub delivery: a publish only reaches
// subscribers that were already registered when it happened.
type fakeSessionNotifier struct {
	mu            sync.Mutex
	published     []*models.FillSession
	subscribers   []chan *models.FillSession
	dropPublishes bool
}

func newFakeSessionNotifier() *fakeSessionNotifier {
	return &fakeSessionNotifier{}
}

func (f *fakeSessionNotifier) Publish(_ context.Context, session *models.FillSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *session
	f.published = append(f.published, &copied)
	if f.dropPublishes {
		return nil
	}
	for _, ch := range f.subscribers {
		ch <- &copied
	}
	return nil
}

func (f *fakeSessionNotifier) Subscribe(_ context.Context, _ string) (<-chan *models.FillSession, func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan *models.FillSession, 8)
	f.subscribers = append(f.subscribers, ch)
	return ch, func() {}, nil
}

func newTestUsecase(t *testing.T) (SessionUsecase, *fakeSessionRepository, *fakeSessionNotifier) {
	t.Helper()

	questionnaireCatalog, err := catalog.NewQuestionnaireCatalog(zap.NewNop())
	require.NoError(t, err)

	repo := newFakeSessionRepository()
	notifier := newFakeSessionNotifier()
	internalConfig := &config.InternalConfig{
		App: config.App{
			FrontendDomain:                 "https://forms.example.se",
			SessionResyncIntervalInSeconds: 1,
		},
	}
	uc := NewSessionUsecase(zap.NewNop(), questionnaireCatalog, repo, notifier, internalConfig)
	return uc, repo, notifier
}

var _ contracts.SessionRepository = (*fakeSessionRepository)(nil)
var _ contracts.SessionNotifier = (*fakeSessionNotifier)(nil)

func TestCreateSession(t *testing.T) {
	uc, repo, _ := newTestUsecase(t)
	ctx := context.Background()

	created, err := uc.CreateSession(ctx, "koos", "")
	require.NoError(t, err)

	session := created.Session
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-z]{5}$`), session.SessionID)
	assert.Equal(t, "koos", session.QuestionnaireID)
	assert.Equal(t, "koosResponses", session.StorageKey)
	assert.Equal(t, models.SessionStatusPending, session.Status)
	assert.Equal(t, models.SessionProgress{Current: 0, Total: 0}, session.Progress)
	assert.Empty(t, session.CompletedAt)

	assert.Equal(t, "https://forms.example.se/fill/"+session.SessionID, created.FillLink)

	stored, err := repo.FindBySessionID(ctx, session.SessionID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	t.Run("unknown questionnaire is rejected", func(t *testing.T) {
		_, err := uc.CreateSession(ctx, "womac", "")
		assert.Error(t, err)
	})
}

func TestFindSessionByID(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	ctx := context.Background()

	_, err := uc.FindSessionByID(ctx, "1700000000000-zzzzz")
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestDescribeFillSession(t *testing.T) {
	uc, repo, _ := newTestUsecase(t)
	ctx := context.Background()

	created, err := uc.CreateSession(ctx, "dash", "")
	require.NoError(t, err)
	sessionID := created.Session.SessionID

	t.Run("pending session resolves to the full definition", func(t *testing.T) {
		view, err := uc.DescribeFillSession(ctx, sessionID)
		require.NoError(t, err)

		assert.Equal(t, sessionID, view.SessionID)
		assert.Equal(t, "dash", view.QuestionnaireID)
		assert.Equal(t, "dashResponses", view.StorageKey)
		require.NotNil(t, view.Questionnaire)
		assert.Equal(t, "DASH", view.Questionnaire.ScoringName)
	})

	t.Run("completed session is gone", func(t *testing.T) {
		repo.sessions[sessionID].Status = models.SessionStatusCompleted

		_, err := uc.DescribeFillSession(ctx, sessionID)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 410, customErr.StatusCode)
	})
}

func TestUpdateProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("out-of-range values are rejected before any write", func(t *testing.T) {
		uc, repo, _ := newTestUsecase(t)

		for _, pair := range [][2]int{{-1, 5}, {3, -1}, {6, 5}} {
			err := uc.UpdateProgress(ctx, "any", pair[0], pair[1])
			require.Error(t, err)
			customErr, ok := err.(*exceptions.CustomError)
			require.True(t, ok)
			assert.Equal(t, 400, customErr.StatusCode)
		}
		assert.Zero(t, repo.progressUpdates)
	})

	t.Run("valid update is stored and published", func(t *testing.T) {
		uc, repo, notifier := newTestUsecase(t)
		created, err := uc.CreateSession(ctx, "koos", "")
		require.NoError(t, err)
		sessionID := created.Session.SessionID

		require.NoError(t, uc.UpdateProgress(ctx, sessionID, 12, 42))

		stored, _ := repo.FindBySessionID(ctx, sessionID)
		assert.Equal(t, models.SessionProgress{Current: 12, Total: 42}, stored.Progress)

		require.Len(t, notifier.published, 1)
		assert.Equal(t, models.SessionProgress{Current: 12, Total: 42}, notifier.published[0].Progress)
		assert.Equal(t, models.SessionStatusPending, notifier.published[0].Status)
	})

	t.Run("progress after completion is a silent no-op", func(t *testing.T) {
		uc, repo, notifier := newTestUsecase(t)
		created, err := uc.CreateSession(ctx, "koos", "")
		require.NoError(t, err)
		sessionID := created.Session.SessionID
		repo.sessions[sessionID].Status = models.SessionStatusCompleted

		require.NoError(t, uc.UpdateProgress(ctx, sessionID, 1, 2))
		assert.Zero(t, repo.progressUpdates)
		assert.Empty(t, notifier.published)
	})

	t.Run("completion racing the write suppresses the publish", func(t *testing.T) {
		uc, repo, notifier := newTestUsecase(t)
		created, err := uc.CreateSession(ctx, "koos", "")
		require.NoError(t, err)
		sessionID := created.Session.SessionID

		// The session completes between the pending read and the progress
		// write; the discarded write must not broadcast a pending record.
		repo.onFind = func() {
			repo.mu.Lock()
			repo.sessions[sessionID].Status = models.SessionStatusCompleted
			repo.mu.Unlock()
		}

		require.NoError(t, uc.UpdateProgress(ctx, sessionID, 5, 42))
		assert.Equal(t, 1, repo.progressUpdates)
		assert.Empty(t, notifier.published)
		assert.Equal(t, models.SessionProgress{Current: 0, Total: 0}, repo.sessions[sessionID].Progress)
	})
}

func TestCompleteSession(t *testing.T) {
	ctx := context.Background()

	t.Run("stores pruned responses with a sortable timestamp", func(t *testing.T) {
		uc, repo, notifier := newTestUsecase(t)
		created, err := uc.CreateSession(ctx, "dash", "")
		require.NoError(t, err)
		sessionID := created.Session.SessionID

		// Q38 is gated on Q37 = "yes"; with "no" recorded it must not
		// survive completion.
		err = uc.CompleteSession(ctx, sessionID, models.ResponseMap{
			"Q1":  float64(2),
			"Q37": "no",
			"Q38": "Gitarr",
		})
		require.NoError(t, err)

		stored, _ := repo.FindBySessionID(ctx, sessionID)
		assert.Equal(t, models.SessionStatusCompleted, stored.Status)
		assert.Equal(t, models.ResponseMap{"Q1": float64(2), "Q37": "no"}, stored.Responses)

		parsed, err := time.Parse(constvars.SessionCompletedAtLayout, stored.CompletedAt)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)

		require.Len(t, notifier.published, 1)
		assert.Equal(t, models.SessionStatusCompleted, notifier.published[0].Status)
	})

	t.Run("second completion is a no-op and keeps the first record", func(t *testing.T) {
		uc, repo, notifier := newTestUsecase(t)
		created, err := uc.CreateSession(ctx, "koos", "")
		require.NoError(t, err)
		sessionID := created.Session.SessionID

		require.NoError(t, uc.CompleteSession(ctx, sessionID, models.ResponseMap{"S1": float64(1)}))
		require.NoError(t, uc.CompleteSession(ctx, sessionID, models.ResponseMap{"S1": float64(4)}))

		stored, _ := repo.FindBySessionID(ctx, sessionID)
		assert.Equal(t, models.ResponseMap{"S1": float64(1)}, stored.Responses)
		assert.Len(t, notifier.published, 1)
	})

	t.Run("unknown session yields not found", func(t *testing.T) {
		uc, _, _ := newTestUsecase(t)
		err := uc.CompleteSession(ctx, "1700000000000-zzzzz", models.ResponseMap{})
		assert.Error(t, err)
	})
}

func TestSubscribeSession(t *testing.T) {
	ctx := context.Background()

	t.Run("completed session emits one snapshot and closes", func(t *testing.T) {
		uc, repo, _ := newTestUsecase(t)
		created, err := uc.CreateSession(ctx, "koos", "")
		require.NoError(t, err)
		sessionID := created.Session.SessionID
		repo.sessions[sessionID].Status = models.SessionStatusCompleted

		updates, stop, err := uc.SubscribeSession(ctx, sessionID)
		require.NoError(t, err)
		defer stop()

		snapshot, ok := <-updates
		require.True(t, ok)
		assert.True(t, snapshot.IsCompleted())

		_, ok = <-updates
		assert.False(t, ok)
	})

	t.Run("pending session streams updates until completion", func(t *testing.T) {
		uc, _, _ := newTestUsecase(t)
		created, err := uc.CreateSession(ctx, "koos", "")
		require.NoError(t, err)
		sessionID := created.Session.SessionID

		updates, stop, err := uc.SubscribeSession(ctx, sessionID)
		require.NoError(t, err)
		defer stop()

		first := receiveSession(t, updates)
		assert.Equal(t, models.SessionStatusPending, first.Status)

		require.NoError(t, uc.UpdateProgress(ctx, sessionID, 3, 42))
		second := receiveSession(t, updates)
		assert.Equal(t, 3, second.Progress.Current)

		require.NoError(t, uc.CompleteSession(ctx, sessionID, models.ResponseMap{"S1": float64(1)}))
		third := receiveSession(t, updates)
		assert.True(t, third.IsCompleted())

		_, ok := <-updates
		assert.False(t, ok)
	})

	t.Run("completion racing the snapshot read is still delivered", func(t *testing.T) {
		uc, repo, _ := newTestUsecase(t)
		created, err := uc.CreateSession(ctx, "koos", "")
		require.NoError(t, err)
		sessionID := created.Session.SessionID

		// Completion lands right after the subscription's snapshot read
		// takes its pending copy. The subscription is registered before that
		// read, so the completed record must arrive over it.
		repo.onFind = func() {
			require.NoError(t, uc.CompleteSession(ctx, sessionID, models.ResponseMap{"S1": float64(2)}))
		}

		updates, stop, err := uc.SubscribeSession(ctx, sessionID)
		require.NoError(t, err)
		defer stop()

		first := receiveSession(t, updates)
		assert.Equal(t, models.SessionStatusPending, first.Status)

		second := receiveSession(t, updates)
		assert.True(t, second.IsCompleted())

		_, ok := <-updates
		assert.False(t, ok)
	})

	t.Run("lost completion publish is recovered from the store", func(t *testing.T) {
		uc, _, notifier := newTestUsecase(t)
		created, err := uc.CreateSession(ctx, "koos", "")
		require.NoError(t, err)
		sessionID := created.Session.SessionID

		updates, stop, err := uc.SubscribeSession(ctx, sessionID)
		require.NoError(t, err)
		defer stop()

		first := receiveSession(t, updates)
		assert.Equal(t, models.SessionStatusPending, first.Status)

		// The notifier swallows the completion; only the periodic store
		// re-read can surface the terminal record.
		notifier.mu.Lock()
		notifier.dropPublishes = true
		notifier.mu.Unlock()
		require.NoError(t, uc.CompleteSession(ctx, sessionID, models.ResponseMap{"S1": float64(3)}))

		second := receiveSession(t, updates)
		assert.True(t, second.IsCompleted())

		_, ok := <-updates
		assert.False(t, ok)
	})

	t.Run("unknown session fails up front", func(t *testing.T) {
		uc, _, _ := newTestUsecase(t)
		_, _, err := uc.SubscribeSession(ctx, "1700000000000-zzzzz")
		assert.Error(t, err)
	})
}

func receiveSession(t *testing.T, updates <-chan *models.FillSession) *models.FillSession {
	t.Helper()
	select {
	case session, ok := <-updates:
		require.True(t, ok, "update stream closed early")
		return session
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a session update")
		return nil
	}
}
