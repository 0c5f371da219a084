package dice

import (
	"github.com/KirkDiggler/spell-duel/internal/errors"
)

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is a character's private source of randomness. Each character owns
// its own Roller so two characters never share random state and a duel is
// reproducible from its seeds.
type Roller interface {
	// Roll rolls count dice with the given sides and adds bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult holds the outcome of a roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int
	Count    int
	Sides    int
	RawTotal int // Sum of the dice without bonus
}

// Pick returns an index in [0, n) using one roll of an n-sided die. A result
// outside that range is an error, never an index.
func Pick(r Roller, n int) (int, error) {
	result, err := r.Roll(1, n, -1)
	if err != nil {
		return 0, err
	}
	if result == nil {
		return 0, errors.Internalf("roller returned no result for 1d%d", n)
	}
	if result.Total < 0 || result.Total >= n {
		return 0, errors.Internalf("roll %d out of range for 1d%d", result.Total+1, n)
	}
	return result.Total, nil
}
