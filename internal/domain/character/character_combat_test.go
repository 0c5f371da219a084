package character_test

import (
	"testing"

	"github.com/KirkDiggler/spell-duel/internal/domain/character"
	"github.com/KirkDiggler/spell-duel/internal/effects"
	"github.com/KirkDiggler/spell-duel/internal/events"
	"github.com/KirkDiggler/spell-duel/internal/spells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttack(t *testing.T) {
	tests := []struct {
		name       string
		attack     int
		armor      int
		health     int
		wantDamage int
		wantHealth int
	}{
		{"no armor", 9, 0, 50, 9, 41},
		{"armor reduces", 9, 7, 50, 2, 48},
		{"armor exceeds attack", 8, 10, 50, 1, 49},
		{"armor equals attack", 8, 8, 50, 1, 49},
		{"zero attack", 0, 0, 50, 1, 49},
		{"overkill clamps", 9, 0, 4, 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attacker := newBoss(t, 10, tt.attack, 0)
			defender := newCharacter(t, &character.Config{Name: "Wizard", Health: tt.health, Armor: tt.armor})

			damage := attacker.Attack(defender)

			assert.Equal(t, tt.wantDamage, damage)
			assert.Equal(t, tt.wantHealth, defender.Health())
			assert.GreaterOrEqual(t, defender.Health(), 0)
		})
	}
}

func TestAttackedBy_UsesBonusArmor(t *testing.T) {
	boss := newBoss(t, 10, 8, 0)
	wizard := newCharacter(t, &character.Config{Name: "Wizard", Health: 50, Armor: 3})
	wizard.AddEffect(effects.Armor(7, 6))

	assert.Equal(t, 1, wizard.AttackedBy(boss))
	assert.Equal(t, 49, wizard.Health())
}

func TestDeadCharacter_ActionsAreNoOps(t *testing.T) {
	recorder := events.NewRecorder()
	dead := newCharacter(t, &character.Config{
		Name:          "Wizard",
		Health:        0,
		AttackRating:  9,
		Mana:          500,
		Spells:        spells.Standard(),
		SpellSequence: []string{spells.Poison},
		Observer:      recorder,
	})
	target := newBoss(t, 13, 8, 0)

	deadBefore := dead.Snapshot()
	targetBefore := target.Snapshot()

	cast := dead.CastSpellOn(target)
	damage := dead.Attack(target)

	assert.Equal(t, character.CastOutcomeDead, cast.Outcome)
	assert.Nil(t, cast.Spell)
	assert.Zero(t, damage)
	assert.Equal(t, deadBefore, dead.Snapshot())
	assert.Equal(t, targetBefore, target.Snapshot())
	assert.Equal(t, []string{spells.Poison}, dead.PendingSpells())

	warnings := recorder.OfType(events.EventTypeActorDead)
	require.Len(t, warnings, 2)
	assert.Equal(t, "Boss", warnings[0].Target)
}

func TestHealthNeverNegative(t *testing.T) {
	wizard := newCharacter(t, &character.Config{
		Name:   "Wizard",
		Health: 3,
		Mana:   10000,
		Spells: spells.Standard(),
		Seed:   99,
	})
	boss := newBoss(t, 5, 20, 0)

	for i := 0; i < 20; i++ {
		wizard.StartRound()
		wizard.CastSpellOn(boss)
		boss.StartRound()
		boss.Attack(wizard)

		assert.GreaterOrEqual(t, wizard.Health(), 0)
		assert.GreaterOrEqual(t, boss.Health(), 0)
	}
}
