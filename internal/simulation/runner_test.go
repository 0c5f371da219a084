package simulation_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/spell-duel/internal/domain/character"
	"github.com/KirkDiggler/spell-duel/internal/domain/combat"
	"github.com/KirkDiggler/spell-duel/internal/errors"
	"github.com/KirkDiggler/spell-duel/internal/repositories/results"
	mockresults "github.com/KirkDiggler/spell-duel/internal/repositories/results/mock"
	"github.com/KirkDiggler/spell-duel/internal/simulation"
	"github.com/KirkDiggler/spell-duel/internal/spells"
	"github.com/KirkDiggler/spell-duel/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func randomDuel() combat.Config {
	return combat.Config{
		Caster: character.Config{
			Name:   "Wizard",
			Health: 50,
			Mana:   500,
			Spells: spells.Standard(),
		},
		Opponent: character.Config{
			Name:         "Boss",
			Health:       58,
			AttackRating: 9,
		},
	}
}

func forcedDuel() combat.Config {
	cfg := randomDuel()
	cfg.Caster.SpellSequence = []string{spells.Poison, spells.MagicMissile, spells.MagicMissile}
	cfg.Opponent.Health = 13
	cfg.Opponent.AttackRating = 8
	return cfg
}

func TestRunner_Summary(t *testing.T) {
	runner, err := simulation.NewRunner(&simulation.Config{
		Games:         40,
		Workers:       4,
		BaseSeed:      100,
		Duel:          randomDuel(),
		UUIDGenerator: uuid.NewSequenceGenerator("id"),
		Logger:        zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, summary.BatchID)
	assert.Equal(t, 40, summary.Games)
	assert.Equal(t, 40, summary.Wins+summary.Losses+summary.Draws)
	require.Len(t, summary.Results, 40)

	for i, result := range summary.Results {
		require.NotNil(t, result)
		assert.Equal(t, int64(100+i), result.Seed)
		assert.Equal(t, summary.BatchID, result.BatchID)
		assert.NotEmpty(t, result.ID)
	}

	if summary.Wins > 0 {
		require.NotNil(t, summary.CheapestWin)
		for _, result := range summary.Results {
			if result.CasterWon() {
				assert.LessOrEqual(t, summary.CheapestWin.ManaSpent, result.ManaSpent)
			}
		}
	}
}

func TestRunner_Reproducible(t *testing.T) {
	run := func(workers int) *simulation.Summary {
		runner, err := simulation.NewRunner(&simulation.Config{
			Games:    25,
			Workers:  workers,
			BaseSeed: 7,
			Duel:     randomDuel(),
		})
		require.NoError(t, err)

		summary, err := runner.Run(context.Background())
		require.NoError(t, err)
		return summary
	}

	serial := run(1)
	parallel := run(8)

	assert.Equal(t, serial.Wins, parallel.Wins)
	assert.Equal(t, serial.Losses, parallel.Losses)
	assert.Equal(t, serial.Draws, parallel.Draws)
	for i := range serial.Results {
		assert.Equal(t, serial.Results[i].Spells, parallel.Results[i].Spells, "seed %d", serial.Results[i].Seed)
		assert.Equal(t, serial.Results[i].Outcome, parallel.Results[i].Outcome)
	}
}

func TestRunner_CheapestWin(t *testing.T) {
	runner, err := simulation.NewRunner(&simulation.Config{
		Games:    5,
		Workers:  2,
		BaseSeed: 3,
		Duel:     forcedDuel(),
	})
	require.NoError(t, err)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Wins)
	assert.Equal(t, 1.0, summary.WinRate())
	require.NotNil(t, summary.CheapestWin)
	assert.Equal(t, 279, summary.CheapestWin.ManaSpent)
	assert.Equal(t, int64(3), summary.CheapestWin.Seed)
	assert.Equal(t, []string{spells.Poison, spells.MagicMissile, spells.MagicMissile}, summary.CheapestWin.Spells)
}

func TestRunner_SavesResults(t *testing.T) {
	ctx := context.Background()
	repo := results.NewInMemoryRepository(nil)

	runner, err := simulation.NewRunner(&simulation.Config{
		Games:      6,
		Workers:    3,
		Duel:       forcedDuel(),
		Repository: repo,
	})
	require.NoError(t, err)

	summary, err := runner.Run(ctx)
	require.NoError(t, err)

	stored, err := repo.ListByBatch(ctx, summary.BatchID)
	require.NoError(t, err)
	require.Len(t, stored, 6)
	for i, result := range stored {
		assert.Equal(t, int64(i), result.Seed)
		assert.False(t, result.CreatedAt.IsZero())
	}
}

func TestRunner_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockresults.NewMockRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.Internalf("disk full")).MinTimes(1)

	runner, err := simulation.NewRunner(&simulation.Config{
		Games:      3,
		Workers:    1,
		Duel:       forcedDuel(),
		Repository: repo,
	})
	require.NoError(t, err)

	summary, err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunner_Cancelled(t *testing.T) {
	runner, err := simulation.NewRunner(&simulation.Config{
		Games:   10,
		Workers: 2,
		Duel:    randomDuel(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRunner_Validation(t *testing.T) {
	broken := randomDuel()
	broken.Caster.Name = ""

	tests := []struct {
		name string
		cfg  *simulation.Config
	}{
		{"nil config", nil},
		{"no games", &simulation.Config{Games: 0, Workers: 1, Duel: randomDuel()}},
		{"no workers", &simulation.Config{Games: 1, Workers: 0, Duel: randomDuel()}},
		{"invalid duel", &simulation.Config{Games: 1, Workers: 1, Duel: broken}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, err := simulation.NewRunner(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, runner)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestSummarize(t *testing.T) {
	played := []*combat.Result{
		{Seed: 0, Outcome: combat.OutcomeOpponentWon, ManaSpent: 100},
		{Seed: 1, Outcome: combat.OutcomeCasterWon, ManaSpent: 900},
		{Seed: 2, Outcome: combat.OutcomeCasterWon, ManaSpent: 641},
		{Seed: 3, Outcome: combat.OutcomeDraw, ManaSpent: 50},
		{Seed: 4, Outcome: combat.OutcomeCasterWon, ManaSpent: 641},
	}

	summary := simulation.Summarize("batch", played)

	assert.Equal(t, 5, summary.Games)
	assert.Equal(t, 3, summary.Wins)
	assert.Equal(t, 1, summary.Losses)
	assert.Equal(t, 1, summary.Draws)
	assert.InDelta(t, 0.6, summary.WinRate(), 1e-9)
	require.NotNil(t, summary.CheapestWin)
	assert.Equal(t, int64(2), summary.CheapestWin.Seed)

	empty := simulation.Summarize("none", nil)
	assert.Nil(t, empty.CheapestWin)
	assert.Zero(t, empty.WinRate())
}
