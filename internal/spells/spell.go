package spells

import (
	"github.com/KirkDiggler/spell-duel/internal/effects"
	"github.com/KirkDiggler/spell-duel/internal/errors"
)

// Spell is an immutable definition: what casting it costs and which effect
// templates it lands on the caster and on the target. Casting never mutates
// a Spell; live effects are instantiated from copies of the templates.
type Spell struct {
	name          string
	cost          int
	casterEffects []effects.Effect
	targetEffects []effects.Effect
}

// New creates a spell. The effect slices are copied.
func New(name string, cost int, casterEffects, targetEffects []effects.Effect) (*Spell, error) {
	spell := &Spell{
		name:          name,
		cost:          cost,
		casterEffects: append([]effects.Effect(nil), casterEffects...),
		targetEffects: append([]effects.Effect(nil), targetEffects...),
	}
	if err := spell.Validate(); err != nil {
		return nil, err
	}
	return spell, nil
}

func (s *Spell) Name() string { return s.name }
func (s *Spell) Cost() int    { return s.cost }

// CasterEffects returns a copy of the templates applied to the caster
func (s *Spell) CasterEffects() []effects.Effect {
	return append([]effects.Effect(nil), s.casterEffects...)
}

// TargetEffects returns a copy of the templates applied to the target
func (s *Spell) TargetEffects() []effects.Effect {
	return append([]effects.Effect(nil), s.targetEffects...)
}

// Validate checks name, cost and every effect template
func (s *Spell) Validate() error {
	if s.name == "" {
		return errors.Validationf("spell name is required")
	}
	if s.cost < 0 {
		return errors.Validationf("spell %s has negative cost %d", s.name, s.cost)
	}

	for _, effect := range s.casterEffects {
		if err := effect.Validate(); err != nil {
			return errors.Wrapf(err, "spell %s caster effect", s.name)
		}
	}
	for _, effect := range s.targetEffects {
		if err := effect.Validate(); err != nil {
			return errors.Wrapf(err, "spell %s target effect", s.name)
		}
	}

	return nil
}

// Builder helps create spells
type Builder struct {
	name          string
	cost          int
	casterEffects []effects.Effect
	targetEffects []effects.Effect
}

// NewBuilder starts a spell with the given name
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// WithCost sets the mana cost
func (b *Builder) WithCost(cost int) *Builder {
	b.cost = cost
	return b
}

// OnCaster appends an effect template applied to the caster
func (b *Builder) OnCaster(effect effects.Effect) *Builder {
	b.casterEffects = append(b.casterEffects, effect)
	return b
}

// OnTarget appends an effect template applied to the target
func (b *Builder) OnTarget(effect effects.Effect) *Builder {
	b.targetEffects = append(b.targetEffects, effect)
	return b
}

// Build validates and returns the spell
func (b *Builder) Build() (*Spell, error) {
	return New(b.name, b.cost, b.casterEffects, b.targetEffects)
}
