package simulation

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/spell-duel/internal/domain/combat"
	"github.com/KirkDiggler/spell-duel/internal/errors"
	"github.com/KirkDiggler/spell-duel/internal/repositories/results"
	"github.com/KirkDiggler/spell-duel/internal/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config describes a batch of duels
type Config struct {
	Games    int
	Workers  int
	BaseSeed int64

	// Duel is the template every game starts from. Each game gets its own
	// ID and seed; rollers set on the character configs are dropped so every
	// game draws from a fresh source seeded with the game's seed.
	Duel combat.Config

	// Repository stores every result when set
	Repository    results.Repository
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger
}

// Runner plays many independent duels in parallel
type Runner struct {
	games    int
	workers  int
	baseSeed int64
	duel     combat.Config

	repository    results.Repository
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// NewRunner validates the config, including a trial build of the duel
func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("simulation config is required")
	}
	if cfg.Games < 1 {
		return nil, errors.InvalidArgumentf("games must be at least 1, got %d", cfg.Games)
	}
	if cfg.Workers < 1 {
		return nil, errors.InvalidArgumentf("workers must be at least 1, got %d", cfg.Workers)
	}

	if _, err := combat.NewDuel(gameConfig(cfg.Duel, "", cfg.BaseSeed)); err != nil {
		return nil, errors.Wrap(err, "invalid duel template")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		games:         cfg.Games,
		workers:       cfg.Workers,
		baseSeed:      cfg.BaseSeed,
		duel:          cfg.Duel,
		repository:    cfg.Repository,
		uuidGenerator: gen,
		logger:        logger,
	}, nil
}

// Run plays seeds BaseSeed through BaseSeed+Games-1 and summarizes them.
// The first failure cancels the remaining games.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	batchID := r.uuidGenerator.New()
	played := make([]*combat.Result, r.games)

	r.logger.Info("starting batch",
		zap.String("batch_id", batchID),
		zap.Int("games", r.games),
		zap.Int("workers", r.workers),
		zap.Int64("base_seed", r.baseSeed),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := 0; i < r.games; i++ {
		seed := r.baseSeed + int64(i)
		g.Go(func() error {
			result, err := r.play(ctx, batchID, seed)
			if err != nil {
				return err
			}
			played[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.logger.Warn("batch failed", zap.String("batch_id", batchID), zap.Error(err))
		return nil, err
	}

	summary := Summarize(batchID, played)
	fields := []zap.Field{
		zap.String("batch_id", batchID),
		zap.Int("wins", summary.Wins),
		zap.Int("losses", summary.Losses),
		zap.Int("draws", summary.Draws),
	}
	if summary.CheapestWin != nil {
		fields = append(fields,
			zap.Int("cheapest_win", summary.CheapestWin.ManaSpent),
			zap.Int64("cheapest_seed", summary.CheapestWin.Seed),
		)
	}
	r.logger.Info("batch finished", fields...)

	return summary, nil
}

func (r *Runner) play(ctx context.Context, batchID string, seed int64) (*combat.Result, error) {
	duel, err := combat.NewDuel(gameConfig(r.duel, r.uuidGenerator.New(), seed))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set up game with seed %d", seed)
	}

	result, err := duel.Run(ctx)
	if err != nil {
		return nil, err
	}
	result.BatchID = batchID

	r.logger.Debug("duel finished",
		zap.String("duel_id", result.ID),
		zap.Int64("seed", seed),
		zap.String("outcome", string(result.Outcome)),
		zap.Int("rounds", result.Rounds),
		zap.Int("mana_spent", result.ManaSpent),
	)

	if r.repository != nil {
		if err := r.repository.Create(ctx, result); err != nil {
			return nil, fmt.Errorf("failed to save result of seed %d: %w", seed, err)
		}
	}

	return result, nil
}

func gameConfig(template combat.Config, id string, seed int64) *combat.Config {
	cfg := template
	cfg.ID = id
	cfg.Seed = seed
	cfg.Caster.Seed = seed
	cfg.Caster.Roller = nil
	cfg.Opponent.Seed = seed
	cfg.Opponent.Roller = nil
	return &cfg
}
