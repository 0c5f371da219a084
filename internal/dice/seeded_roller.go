package dice

import (
	"math/rand"

	"github.com/KirkDiggler/spell-duel/internal/errors"
)

// seededRoller rolls from its own math/rand source, never the global one
type seededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller creates a roller whose sequence is fixed by seed
func NewSeededRoller(seed int64) Roller {
	return &seededRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *seededRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.InvalidArgument("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.InvalidArgument("invalid dice size")
	}

	rolls := make([]int, count)
	rawTotal := 0
	for i := 0; i < count; i++ {
		roll := r.rng.Intn(sides) + 1
		rolls[i] = roll
		rawTotal += roll
	}

	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}
