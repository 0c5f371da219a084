package combat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/KirkDiggler/spell-duel/internal/domain/character"
	"github.com/KirkDiggler/spell-duel/internal/domain/combat"
	"github.com/KirkDiggler/spell-duel/internal/effects"
	"github.com/KirkDiggler/spell-duel/internal/errors"
	"github.com/KirkDiggler/spell-duel/internal/events"
	"github.com/KirkDiggler/spell-duel/internal/spells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func wizard(health, mana int, sequence ...string) character.Config {
	return character.Config{
		Name:          "Wizard",
		Health:        health,
		Mana:          mana,
		Spells:        spells.Standard(),
		SpellSequence: sequence,
	}
}

func boss(health, attack int) character.Config {
	return character.Config{
		Name:         "Boss",
		Health:       health,
		AttackRating: attack,
	}
}

func runDuel(t *testing.T, cfg *combat.Config) *combat.Result {
	t.Helper()
	duel, err := combat.NewDuel(cfg)
	require.NoError(t, err)

	result, err := duel.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, combat.DuelStatusCompleted, duel.Status())
	return result
}

func TestDuel_CasterWins(t *testing.T) {
	result := runDuel(t, &combat.Config{
		ID:       "duel-1",
		Caster:   wizard(50, 500, spells.Poison, spells.MagicMissile, spells.MagicMissile),
		Opponent: boss(13, 8),
	})

	assert.Equal(t, "duel-1", result.ID)
	assert.Equal(t, combat.OutcomeCasterWon, result.Outcome)
	assert.True(t, result.CasterWon())
	assert.Equal(t, "Wizard", result.Winner)
	assert.Equal(t, 3, result.Rounds)
	assert.Equal(t, []string{spells.Poison, spells.MagicMissile, spells.MagicMissile}, result.Spells)
	assert.Equal(t, 279, result.ManaSpent)
	assert.Equal(t, 221, result.CasterMana)
	assert.Equal(t, 34, result.CasterHealth)
	assert.Equal(t, 0, result.OpponentHealth)
	assert.Zero(t, result.Passes)
}

func TestDuel_OpponentWins(t *testing.T) {
	result := runDuel(t, &combat.Config{
		Caster:   wizard(10, 0),
		Opponent: boss(13, 8),
	})

	assert.Equal(t, combat.OutcomeOpponentWon, result.Outcome)
	assert.Equal(t, "Boss", result.Winner)
	assert.Equal(t, 2, result.Rounds)
	assert.Equal(t, 2, result.Passes)
	assert.Empty(t, result.Spells)
	assert.Equal(t, 0, result.CasterHealth)
	assert.Equal(t, 13, result.OpponentHealth)
}

func TestDuel_DrawAtMaxRounds(t *testing.T) {
	result := runDuel(t, &combat.Config{
		MaxRounds: 3,
		Caster:    wizard(100, 0),
		Opponent:  boss(100, 1),
	})

	assert.Equal(t, combat.OutcomeDraw, result.Outcome)
	assert.True(t, result.IsDraw())
	assert.Empty(t, result.Winner)
	assert.Equal(t, 3, result.Rounds)
	assert.Equal(t, 3, result.Passes)
	assert.Equal(t, 97, result.CasterHealth)
}

func TestDuel_Attrition(t *testing.T) {
	result := runDuel(t, &combat.Config{
		Attrition: 1,
		Caster:    wizard(3, 0),
		Opponent:  boss(100, 0),
	})

	// round 1: attrition to 2, boss hits for the minimum 1
	// round 2: attrition kills the caster before it can act
	assert.Equal(t, combat.OutcomeOpponentWon, result.Outcome)
	assert.Equal(t, 2, result.Rounds)
	assert.Equal(t, 1, result.Passes)
}

func TestDuel_AttritionLandsBeforeEffectsTick(t *testing.T) {
	regenerate, err := spells.NewBuilder("Regenerate").
		OnCaster(effects.Regeneration(1, 4)).
		Build()
	require.NoError(t, err)
	book, err := spells.NewBook(regenerate)
	require.NoError(t, err)

	recorder := events.NewRecorder()
	result := runDuel(t, &combat.Config{
		Attrition: 1,
		Caster: character.Config{
			Name:          "Wizard",
			Health:        3,
			Spells:        book,
			SpellSequence: []string{"Regenerate"},
		},
		Opponent:  boss(100, 1),
		Listeners: []events.Listener{recorder},
	})

	// round 1: attrition to 2, Regenerate cast, boss hits to 1
	// round 2: attrition takes the last point while healing is still pending
	assert.Equal(t, combat.OutcomeOpponentWon, result.Outcome)
	assert.Equal(t, 2, result.Rounds)
	assert.Equal(t, []string{"Regenerate"}, result.Spells)
	assert.Zero(t, result.CasterHealth)

	// the regeneration never got to tick
	assert.Empty(t, recorder.OfType(events.EventTypeEffectApplied))
}

func TestDuel_DeadAtStart(t *testing.T) {
	result := runDuel(t, &combat.Config{
		Caster:   wizard(10, 250),
		Opponent: boss(0, 8),
	})

	assert.Equal(t, combat.OutcomeCasterWon, result.Outcome)
	assert.Zero(t, result.Rounds)
	assert.Zero(t, result.ManaSpent)
}

func TestDuel_ReproducibleWithSeed(t *testing.T) {
	play := func() *combat.Result {
		caster := wizard(50, 500)
		caster.Seed = 7
		return runDuel(t, &combat.Config{
			Seed:     7,
			Caster:   caster,
			Opponent: boss(58, 9),
		})
	}

	first := play()
	second := play()

	assert.Equal(t, int64(7), first.Seed)
	assert.Equal(t, first.Spells, second.Spells)
	assert.Equal(t, first.Outcome, second.Outcome)
	assert.Equal(t, first.Rounds, second.Rounds)
	assert.Equal(t, first.Log, second.Log)
}

func TestDuel_Events(t *testing.T) {
	recorder := events.NewRecorder()
	core, logs := observer.New(zapcore.WarnLevel)

	duel, err := combat.NewDuel(&combat.Config{
		Caster:    wizard(10, 0),
		Opponent:  boss(13, 8),
		Listeners: []events.Listener{recorder, events.NewZapListener(zap.New(core))},
	})
	require.NoError(t, err)

	result, err := duel.Run(context.Background())
	require.NoError(t, err)

	got := recorder.Events()
	require.NotEmpty(t, got)
	assert.Equal(t, events.EventTypeRoundStart, got[0].Type)
	assert.Equal(t, events.EventTypeDuelEnd, got[len(got)-1].Type)
	assert.Equal(t, "Boss wins after 2 rounds", got[len(got)-1].Message)
	assert.Equal(t, got, duel.Events())

	deaths := recorder.OfType(events.EventTypeDeath)
	require.Len(t, deaths, 1)
	assert.Equal(t, "Wizard", deaths[0].Actor)
	assert.Equal(t, "Boss", deaths[0].Target)

	// only the death is a warning
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, string(events.EventTypeDeath), logs.All()[0].Message)

	require.Len(t, result.Log, len(got))
	assert.True(t, strings.HasPrefix(result.Log[0], "Round 1: "))
	assert.True(t, strings.HasPrefix(result.Log[len(result.Log)-1], "Round 2: "))
}

func TestDuel_ObserverOnConfigIsReplaced(t *testing.T) {
	own := events.NewRecorder()
	caster := wizard(10, 0)
	caster.Observer = own

	runDuel(t, &combat.Config{
		MaxRounds: 1,
		Caster:    caster,
		Opponent:  boss(13, 1),
	})

	assert.Empty(t, own.Events())
}

func TestDuel_Run(t *testing.T) {
	t.Run("honours a cancelled context", func(t *testing.T) {
		duel, err := combat.NewDuel(&combat.Config{
			Caster:   wizard(10, 0),
			Opponent: boss(13, 8),
		})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = duel.Run(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, combat.DuelStatusActive, duel.Status())
		assert.Zero(t, duel.Round())
	})

	t.Run("runs only once", func(t *testing.T) {
		duel, err := combat.NewDuel(&combat.Config{
			Caster:   wizard(10, 0),
			Opponent: boss(13, 8),
		})
		require.NoError(t, err)

		_, err = duel.Run(context.Background())
		require.NoError(t, err)

		_, err = duel.Run(context.Background())
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestNewDuel_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  *combat.Config
	}{
		{"nil config", nil},
		{"negative max rounds", &combat.Config{MaxRounds: -1, Caster: wizard(10, 0), Opponent: boss(13, 8)}},
		{"negative attrition", &combat.Config{Attrition: -1, Caster: wizard(10, 0), Opponent: boss(13, 8)}},
		{"invalid caster", &combat.Config{Caster: character.Config{Health: 10}, Opponent: boss(13, 8)}},
		{"invalid opponent", &combat.Config{Caster: wizard(10, 0), Opponent: boss(-1, 8)}},
		{"unknown forced spell", &combat.Config{Caster: wizard(10, 500, "Fireball"), Opponent: boss(13, 8)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duel, err := combat.NewDuel(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, duel)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestNewDuel_Defaults(t *testing.T) {
	duel, err := combat.NewDuel(&combat.Config{
		Caster:   wizard(10, 0),
		Opponent: boss(13, 8),
	})
	require.NoError(t, err)

	assert.Equal(t, combat.DuelStatusSetup, duel.Status())
	assert.Equal(t, "Wizard", duel.Caster().Name())
	assert.Equal(t, "Boss", duel.Opponent().Name())
	assert.Empty(t, duel.Events())
}
