package results

//go:generate mockgen -destination=mock/mock_repository.go -package=mockresults -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/spell-duel/internal/domain/combat"
)

// Repository defines the interface for duel result storage
type Repository interface {
	// Create stores a finished duel. An empty ID is filled in and CreatedAt
	// is stamped.
	Create(ctx context.Context, result *combat.Result) error

	// Get retrieves a duel result by ID
	Get(ctx context.Context, id string) (*combat.Result, error)

	// ListByBatch retrieves every result of a simulation batch, ordered by seed
	ListByBatch(ctx context.Context, batchID string) ([]*combat.Result, error)

	// Delete removes a duel result
	Delete(ctx context.Context, id string) error
}
