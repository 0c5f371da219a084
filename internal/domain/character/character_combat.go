package character

import (
	"github.com/KirkDiggler/spell-duel/internal/events"
)

// Attack hits the opponent with this character's attack rating and returns
// the damage dealt. A dead attacker does nothing and deals 0.
func (c *Character) Attack(opponent *Character) int {
	if c.IsDead() {
		c.observe(events.Event{
			Type:    events.EventTypeActorDead,
			Target:  opponent.name,
			Message: "cannot attack while dead",
		})
		return 0
	}

	c.observe(events.Event{
		Type:   events.EventTypeAttack,
		Target: opponent.name,
		Value:  c.attackRating,
	})
	return opponent.AttackedBy(c)
}

// AttackedBy takes the attacker's rating minus this character's total armor
// as damage, never less than 1, and returns the damage taken
func (c *Character) AttackedBy(attacker *Character) int {
	damage := attacker.attackRating - c.Armor()
	if damage <= 0 {
		damage = 1
	}

	c.injure(damage)
	c.observe(events.Event{
		Type:    events.EventTypeDamageTaken,
		Value:   damage,
		Health:  c.health,
		Mana:    c.mana,
		Message: "hit by " + attacker.name,
	})
	return damage
}
