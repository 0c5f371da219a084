package effects

// Builder helps create effect templates
type Builder struct {
	effect Effect
}

// NewBuilder starts an instant effect of the given kind
func NewBuilder(kind Kind) *Builder {
	return &Builder{
		effect: Effect{
			Kind:     kind,
			Duration: Duration{Type: DurationInstant},
		},
	}
}

// WithValue sets the per-application magnitude
func (b *Builder) WithValue(value int) *Builder {
	b.effect.Value = value
	return b
}

// ForRounds turns the effect into one that applies on the next n round-starts
func (b *Builder) ForRounds(n int) *Builder {
	b.effect.Duration = Duration{
		Type:   DurationRounds,
		Rounds: n,
	}
	return b
}

// Instant resets the effect to a one-shot
func (b *Builder) Instant() *Builder {
	b.effect.Duration = Duration{Type: DurationInstant}
	return b
}

// Build returns the constructed template
func (b *Builder) Build() Effect {
	return b.effect
}

// Common templates

// Healing heals once
func Healing(value int) Effect {
	return NewBuilder(KindHealing).WithValue(value).Build()
}

// Damage injures once
func Damage(value int) Effect {
	return NewBuilder(KindDamage).WithValue(value).Build()
}

// ManaRegen restores mana once
func ManaRegen(value int) Effect {
	return NewBuilder(KindManaRegen).WithValue(value).Build()
}

// Armor grants bonus armor for the given number of rounds
func Armor(value, rounds int) Effect {
	return NewBuilder(KindArmor).WithValue(value).ForRounds(rounds).Build()
}

// Poison deals damage at each of the next rounds round-starts
func Poison(value, rounds int) Effect {
	return NewBuilder(KindDamage).WithValue(value).ForRounds(rounds).Build()
}

// Regeneration heals at each of the next rounds round-starts
func Regeneration(value, rounds int) Effect {
	return NewBuilder(KindHealing).WithValue(value).ForRounds(rounds).Build()
}

// Recharge restores mana at each of the next rounds round-starts
func Recharge(value, rounds int) Effect {
	return NewBuilder(KindManaRegen).WithValue(value).ForRounds(rounds).Build()
}
