package character

import (
	"github.com/KirkDiggler/spell-duel/internal/effects"
	"github.com/KirkDiggler/spell-duel/internal/events"
)

// AddEffect lands an effect on this character. Instant effects resolve
// immediately and are not stored; durational ones are stored as a fresh
// live copy and tick on each following StartRound. A template that fails
// validation is reported as effect_rejected and changes nothing.
func (c *Character) AddEffect(effect effects.Effect) {
	if err := effect.Validate(); err != nil {
		c.observe(events.Event{
			Type:    events.EventTypeEffectRejected,
			Effect:  effect.Kind,
			Value:   effect.Value,
			Message: err.Error(),
		})
		return
	}

	if effect.IsInstant() {
		c.observe(events.Event{
			Type:   events.EventTypeEffectAdded,
			Effect: effect.Kind,
			Value:  effect.Value,
		})
		c.apply(effect.Kind, effect.Value)
		return
	}

	live := effect.Instantiate()
	c.effects.Add(live)
	c.observe(events.Event{
		Type:      events.EventTypeEffectAdded,
		Effect:    live.Kind,
		Value:     live.Value,
		Remaining: live.Remaining(),
	})
}

// StartRound ticks every active effect once, then removes the faded ones.
// An effect on its last round still applies before it is removed.
func (c *Character) StartRound() {
	c.observe(events.Event{
		Type:   events.EventTypeRoundStart,
		Health: c.health,
		Mana:   c.mana,
	})

	c.effects.Tick(func(effect *effects.Effect) {
		c.apply(effect.Kind, effect.Value)
		c.observe(events.Event{
			Type:   events.EventTypeEffectApplied,
			Effect: effect.Kind,
			Value:  effect.Value,
			// rounds left once this application is consumed
			Remaining: effect.Remaining() - 1,
		})
	})

	for _, faded := range c.effects.ClearFaded() {
		c.observe(events.Event{
			Type:   events.EventTypeEffectFaded,
			Effect: faded.Kind,
			Value:  faded.Value,
		})
	}
}

// EndRound has no effect on state
func (c *Character) EndRound() {
	c.observe(events.Event{
		Type:   events.EventTypeRoundEnd,
		Health: c.health,
		Mana:   c.mana,
	})
}

func (c *Character) apply(kind effects.Kind, value int) {
	switch kind {
	case effects.KindHealing:
		c.heal(value)
	case effects.KindDamage:
		c.injure(value)
	case effects.KindManaRegen:
		c.replenish(value)
	case effects.KindArmor:
		// passive: counted through the effect manager while stored
	}
}

func (c *Character) heal(value int) {
	c.health += value
}

func (c *Character) injure(value int) {
	c.health -= value
	if c.health < 0 {
		c.health = 0
	}
}

func (c *Character) replenish(value int) {
	c.mana += value
}
