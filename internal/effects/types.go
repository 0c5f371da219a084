package effects

import (
	"fmt"

	"github.com/KirkDiggler/spell-duel/internal/errors"
)

// Kind is the category of an effect. The set is closed; every switch over
// Kind in this module is exhaustive.
type Kind string

const (
	KindHealing   Kind = "healing"
	KindDamage    Kind = "damage"
	KindManaRegen Kind = "mana_regen"
	KindArmor     Kind = "armor"
)

// Kinds lists every effect kind
func Kinds() []Kind {
	return []Kind{KindHealing, KindDamage, KindManaRegen, KindArmor}
}

func (k Kind) Valid() bool {
	switch k {
	case KindHealing, KindDamage, KindManaRegen, KindArmor:
		return true
	}
	return false
}

// DurationType tells whether an effect resolves once or over rounds
type DurationType string

const (
	DurationInstant DurationType = "instant"
	DurationRounds  DurationType = "rounds"
)

// Duration represents how long an effect lasts
type Duration struct {
	Type   DurationType
	Rounds int // Only meaningful for DurationRounds
}

// Effect is both the template stored on a spell and, once instantiated, the
// live copy sitting on a character. Templates are passed by value; live
// effects are pointers owned by a single Manager.
type Effect struct {
	Kind     Kind
	Value    int
	Duration Duration

	remaining int
}

// IsInstant reports whether the effect is applied once at cast time
func (e Effect) IsInstant() bool {
	return e.Duration.Type != DurationRounds
}

// Instantiate returns a fresh live copy with its full duration remaining
func (e Effect) Instantiate() *Effect {
	live := e
	live.remaining = e.Duration.Rounds
	return &live
}

// Remaining is the number of round-starts this effect will still apply on
func (e *Effect) Remaining() int {
	return e.remaining
}

// Fade consumes one round of duration
func (e *Effect) Fade() {
	if e.remaining > 0 {
		e.remaining--
	}
}

// Faded reports whether the effect has applied for its whole duration
func (e *Effect) Faded() bool {
	return e.remaining <= 0
}

// Validate checks the template is usable
func (e Effect) Validate() error {
	if !e.Kind.Valid() {
		return errors.Validationf("unknown effect kind %q", e.Kind)
	}

	switch e.Duration.Type {
	case DurationInstant:
		if e.Kind == KindArmor {
			return errors.Validationf("armor effect must last at least one round")
		}
	case DurationRounds:
		if e.Duration.Rounds < 1 {
			return errors.Validationf("%s effect must last at least one round, got %d", e.Kind, e.Duration.Rounds)
		}
	default:
		return errors.Validationf("unknown duration type %q", e.Duration.Type)
	}

	return nil
}

func (e Effect) String() string {
	if e.IsInstant() {
		return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
	}
	return fmt.Sprintf("%s(%d x%d)", e.Kind, e.Value, e.Duration.Rounds)
}
