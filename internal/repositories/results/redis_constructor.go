package results

import (
	"github.com/KirkDiggler/spell-duel/internal/uuid"
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a new Redis-backed result repository with default configuration
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		TimeProvider:  &RealTimeProvider{},
		ResultTTL:     resultTTL,
	})
}
