package character

import (
	"github.com/KirkDiggler/spell-duel/internal/dice"
	"github.com/KirkDiggler/spell-duel/internal/errors"
	"github.com/KirkDiggler/spell-duel/internal/spells"
)

// Chooser picks one spell out of a non-empty list of eligible candidates
type Chooser interface {
	Choose(candidates []*spells.Spell, roller dice.Roller) (*spells.Spell, error)
}

// RandomChooser picks uniformly with the caster's roller
type RandomChooser struct{}

// Choose implements Chooser
func (RandomChooser) Choose(candidates []*spells.Spell, roller dice.Roller) (*spells.Spell, error) {
	if len(candidates) == 0 {
		return nil, errors.InvalidArgument("no candidate spells")
	}

	idx, err := dice.Pick(roller, len(candidates))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick a spell")
	}
	return candidates[idx], nil
}

// PreferenceChooser takes the first eligible spell named in Order and falls
// back to Fallback, or to a uniform random pick, when none is eligible
type PreferenceChooser struct {
	Order    []string
	Fallback Chooser
}

// Choose implements Chooser
func (p PreferenceChooser) Choose(candidates []*spells.Spell, roller dice.Roller) (*spells.Spell, error) {
	for _, name := range p.Order {
		for _, candidate := range candidates {
			if candidate.Name() == name {
				return candidate, nil
			}
		}
	}

	if p.Fallback != nil {
		return p.Fallback.Choose(candidates, roller)
	}
	return RandomChooser{}.Choose(candidates, roller)
}
