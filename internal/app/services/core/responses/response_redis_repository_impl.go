package responses

import (
	"context"
	"ortoform-service/internal/app/contracts"
	"ortoform-service/internal/app/models"
	"ortoform-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type responseRedisRepository struct {
	Redis contracts.RedisRepository
}

// NewResponseRedisRepository stores one response map per storage key, kept
// without expiry: saved answers outlive any fill session.
func NewResponseRedisRepository(redisRepository contracts.RedisRepository) contracts.ResponseRepository {
	return &responseRedisRepository{
		Redis: redisRepository,
	}
}

func (repo *responseRedisRepository) SaveResponses(ctx context.Context, storageKey string, responseMap models.ResponseMap) error {
	return repo.Redis.Set(ctx, storageKey, responseMap, 0)
}

func (repo *responseRedisRepository) LoadResponses(ctx context.Context, storageKey string) (models.ResponseMap, error) {
	data, err := repo.Redis.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var responseMap models.ResponseMap
	if err := json.Unmarshal([]byte(data), &responseMap); err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return responseMap, nil
}

func (repo *responseRedisRepository) DeleteResponses(ctx context.Context, storageKey string) error {
	return repo.Redis.Delete(ctx, storageKey)
}
