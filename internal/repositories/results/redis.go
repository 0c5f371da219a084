package results

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/spell-duel/internal/domain/combat"
	"github.com/KirkDiggler/spell-duel/internal/errors"
	"github.com/KirkDiggler/spell-duel/internal/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// Key patterns
	resultKeyPrefix = "duel:"
	batchResultsKey = "batch:%s:duels"

	// TTL for results (30 days)
	resultTTL = 30 * 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
	ResultTTL     time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
	resultTTL     time.Duration
}

// NewRedisRepository creates a new Redis-backed result repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.ResultTTL
	if ttl == 0 {
		ttl = resultTTL
	}
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	tp := cfg.TimeProvider
	if tp == nil {
		tp = &RealTimeProvider{}
	}

	return &redisRepository{
		client:        cfg.Client,
		uuidGenerator: gen,
		timeProvider:  tp,
		resultTTL:     ttl,
	}
}

func resultKey(id string) string {
	return resultKeyPrefix + id
}

func batchKey(batchID string) string {
	return fmt.Sprintf(batchResultsKey, batchID)
}

// Create stores a new result and indexes it under its batch
func (r *redisRepository) Create(ctx context.Context, result *combat.Result) error {
	if result == nil {
		return errors.InvalidArgument("result cannot be nil")
	}

	if result.ID == "" {
		result.ID = r.uuidGenerator.New()
	}
	result.CreatedAt = r.timeProvider.Now()

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	stored, err := r.client.SetNX(ctx, resultKey(result.ID), string(data), r.resultTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to store result in Redis: %w", err)
	}
	if !stored {
		return errors.AlreadyExistsf("result with ID %s already exists", result.ID)
	}

	if result.BatchID == "" {
		return nil
	}

	pipe := r.client.Pipeline()
	pipe.SAdd(ctx, batchKey(result.BatchID), result.ID)
	pipe.Expire(ctx, batchKey(result.BatchID), r.resultTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index result %s in batch %s: %w", result.ID, result.BatchID, err)
	}

	return nil
}

// Get retrieves a result by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*combat.Result, error) {
	data, err := r.client.Get(ctx, resultKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("result not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get result from Redis: %w", err)
	}

	var result combat.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to deserialize result: %w", err)
	}

	return &result, nil
}

// ListByBatch loads every result of a batch in parallel
func (r *redisRepository) ListByBatch(ctx context.Context, batchID string) ([]*combat.Result, error) {
	ids, err := r.client.SMembers(ctx, batchKey(batchID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get batch results from Redis: %w", err)
	}

	results := make([]*combat.Result, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			result, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get result %s: %w", id, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortBySeed(results)
	return results, nil
}

// Delete removes a result and its batch index entry
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	result, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, resultKey(id))
	if result.BatchID != "" {
		pipe.SRem(ctx, batchKey(result.BatchID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete result from Redis: %w", err)
	}

	return nil
}
