package sessions

import (
	"context"
	"ortoform-service/internal/app/contracts"
	"ortoform-service/internal/app/models"
	"ortoform-service/internal/pkg/constvars"
	"ortoform-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionMongoRepository struct {
	Collection *mongo.Collection
}

var _ contracts.SessionRepository = (*SessionMongoRepository)(nil)

func NewSessionMongoRepository(db *mongo.Client, dbName string) *SessionMongoRepository {
	return &SessionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSessions),
	}
}

// EnsureIndexes creates the unique session id index and the TTL index that
// garbage-collects abandoned pending records. Completed records are excluded
// from expiry by the partial filter.
func (repo *SessionMongoRepository) EnsureIndexes(ctx context.Context, pendingTTL time.Duration) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sessionId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index().
				SetExpireAfterSeconds(int32(pendingTTL.Seconds())).
				SetPartialFilterExpression(bson.M{"status": models.SessionStatusPending}),
		},
		{
			Keys: bson.D{{Key: "storageKey", Value: 1}, {Key: "completedAt", Value: -1}},
		},
	})
	return err
}

func (repo *SessionMongoRepository) InsertSession(ctx context.Context, session *models.FillSession) error {
	_, err := repo.Collection.InsertOne(ctx, session)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *SessionMongoRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.FillSession, error) {
	var session models.FillSession
	err := repo.Collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

// UpdateProgress only matches pending records, so a progress write that
// arrives after completion silently matches nothing: the terminal status
// always wins.
func (repo *SessionMongoRepository) UpdateProgress(ctx context.Context, sessionID string, progress models.SessionProgress) (bool, error) {
	filter := bson.M{
		"sessionId": sessionID,
		"status":    models.SessionStatusPending,
	}
	update := bson.M{"$set": bson.M{"progress": progress}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

// CompleteSession performs the single pending->completed transition. The
// conditional filter makes a second completion match nothing, which the
// caller treats as a no-op rather than corrupting consumed state.
func (repo *SessionMongoRepository) CompleteSession(ctx context.Context, sessionID string, responseMap models.ResponseMap, completedAt string) (bool, error) {
	filter := bson.M{
		"sessionId": sessionID,
		"status":    models.SessionStatusPending,
	}
	update := bson.M{"$set": bson.M{
		"status":      models.SessionStatusCompleted,
		"responses":   responseMap,
		"completedAt": completedAt,
	}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount > 0, nil
}

func (repo *SessionMongoRepository) FindLatestCompletedByStorageKey(ctx context.Context, storageKey string) (*models.FillSession, error) {
	filter := bson.M{
		"storageKey": storageKey,
		"status":     models.SessionStatusCompleted,
		"responses":  bson.M{"$ne": nil},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "completedAt", Value: -1}})

	var session models.FillSession
	err := repo.Collection.FindOne(ctx, filter, opts).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}
