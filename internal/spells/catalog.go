package spells

import (
	"github.com/KirkDiggler/spell-duel/internal/effects"
)

const (
	MagicMissile = "MagicMissile"
	Drain        = "Drain"
	Shield       = "Shield"
	Poison       = "Poison"
	Recharge     = "Recharge"
)

// Standard returns the five-spell wizard book
func Standard() *Book {
	book, err := NewBook(
		mustBuild(NewBuilder(MagicMissile).WithCost(53).
			OnTarget(effects.Damage(4))),
		mustBuild(NewBuilder(Drain).WithCost(73).
			OnCaster(effects.Healing(2)).
			OnTarget(effects.Damage(2))),
		mustBuild(NewBuilder(Shield).WithCost(113).
			OnCaster(effects.Armor(7, 6))),
		mustBuild(NewBuilder(Poison).WithCost(173).
			OnTarget(effects.Poison(3, 6))),
		mustBuild(NewBuilder(Recharge).WithCost(229).
			OnCaster(effects.Recharge(101, 5))),
	)
	if err != nil {
		panic(err)
	}
	return book
}

func mustBuild(b *Builder) *Spell {
	spell, err := b.Build()
	if err != nil {
		panic(err)
	}
	return spell
}
