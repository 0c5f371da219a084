package results

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/spell-duel/internal/domain/combat"
	"github.com/KirkDiggler/spell-duel/internal/errors"
	"github.com/KirkDiggler/spell-duel/internal/uuid"
)

// InMemoryRepoConfig holds configuration for the in-memory repository
type InMemoryRepoConfig struct {
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

type inMemoryRepository struct {
	mu            sync.RWMutex
	results       map[string]*combat.Result
	byBatch       map[string][]string // batchID -> result IDs
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// NewInMemoryRepository creates a new in-memory result repository
func NewInMemoryRepository(cfg *InMemoryRepoConfig) Repository {
	if cfg == nil {
		cfg = &InMemoryRepoConfig{}
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	tp := cfg.TimeProvider
	if tp == nil {
		tp = &RealTimeProvider{}
	}

	return &inMemoryRepository{
		results:       make(map[string]*combat.Result),
		byBatch:       make(map[string][]string),
		uuidGenerator: gen,
		timeProvider:  tp,
	}
}

// Create stores a new result
func (r *inMemoryRepository) Create(ctx context.Context, result *combat.Result) error {
	if result == nil {
		return errors.InvalidArgument("result cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if result.ID == "" {
		result.ID = r.uuidGenerator.New()
	}
	if _, exists := r.results[result.ID]; exists {
		return errors.AlreadyExistsf("result with ID %s already exists", result.ID)
	}

	result.CreatedAt = r.timeProvider.Now()
	r.results[result.ID] = result

	if result.BatchID != "" {
		r.byBatch[result.BatchID] = append(r.byBatch[result.BatchID], result.ID)
	}

	return nil
}

// Get retrieves a result by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*combat.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, exists := r.results[id]
	if !exists {
		return nil, errors.NotFoundf("result not found: %s", id)
	}

	return result, nil
}

// ListByBatch retrieves all results of a batch
func (r *inMemoryRepository) ListByBatch(ctx context.Context, batchID string) ([]*combat.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byBatch[batchID]
	results := make([]*combat.Result, 0, len(ids))
	for _, id := range ids {
		if result, exists := r.results[id]; exists {
			results = append(results, result)
		}
	}

	sortBySeed(results)
	return results, nil
}

// Delete removes a result
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, exists := r.results[id]
	if !exists {
		return errors.NotFoundf("result not found: %s", id)
	}

	delete(r.results, id)

	if result.BatchID != "" {
		ids := r.byBatch[result.BatchID]
		kept := []string{}
		for _, rid := range ids {
			if rid != id {
				kept = append(kept, rid)
			}
		}
		if len(kept) == 0 {
			delete(r.byBatch, result.BatchID)
		} else {
			r.byBatch[result.BatchID] = kept
		}
	}

	return nil
}

func sortBySeed(results []*combat.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Seed != results[j].Seed {
			return results[i].Seed < results[j].Seed
		}
		return results[i].ID < results[j].ID
	})
}
