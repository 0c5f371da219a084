package simulation

import (
	"github.com/KirkDiggler/spell-duel/internal/config"
	"github.com/KirkDiggler/spell-duel/internal/domain/character"
	"github.com/KirkDiggler/spell-duel/internal/domain/combat"
	"github.com/KirkDiggler/spell-duel/internal/spells"
)

// DuelTemplate builds the standard wizard versus boss duel from
// configuration
func DuelTemplate(cfg *config.Config) combat.Config {
	return combat.Config{
		Seed:      cfg.Duel.Seed,
		MaxRounds: cfg.Duel.MaxRounds,
		Attrition: cfg.Duel.Attrition,
		Caster: character.Config{
			Name:          "Wizard",
			Health:        cfg.Player.Health,
			Mana:          cfg.Player.Mana,
			Armor:         cfg.Player.Armor,
			Spells:        spells.Standard(),
			SpellSequence: cfg.Player.SpellSequence,
			Seed:          cfg.Duel.Seed,
		},
		Opponent: character.Config{
			Name:         "Boss",
			Health:       cfg.Boss.Health,
			AttackRating: cfg.Boss.Attack,
			Armor:        cfg.Boss.Armor,
			Seed:         cfg.Duel.Seed,
		},
	}
}
