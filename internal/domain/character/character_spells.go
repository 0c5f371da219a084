package character

import (
	"github.com/KirkDiggler/spell-duel/internal/effects"
	"github.com/KirkDiggler/spell-duel/internal/events"
	"github.com/KirkDiggler/spell-duel/internal/spells"
)

// CastOutcome tells what a CastSpellOn call did
type CastOutcome string

const (
	CastOutcomeCast   CastOutcome = "cast"   // a spell resolved
	CastOutcomePassed CastOutcome = "passed" // no eligible spell, nothing happened
	CastOutcomeDead   CastOutcome = "dead"   // the caster is dead, nothing happened
)

// CastResult is the outcome of one CastSpellOn call
type CastResult struct {
	Outcome CastOutcome
	Spell   *spells.Spell
	Forced  bool // the spell came from the forced sequence
}

// CastSpellOn casts one spell on the opponent. The next forced spell is used
// when a sequence remains, skipping eligibility and affordability; otherwise
// the chooser picks among EligibleSpells. The cost is always deducted, so a
// forced spell can leave mana negative.
func (c *Character) CastSpellOn(opponent *Character) CastResult {
	if c.IsDead() {
		c.observe(events.Event{
			Type:    events.EventTypeActorDead,
			Target:  opponent.name,
			Message: "cannot cast while dead",
		})
		return CastResult{Outcome: CastOutcomeDead}
	}

	c.observe(events.Event{
		Type:   events.EventTypeCastAttempt,
		Target: opponent.name,
		Mana:   c.mana,
	})

	spell, forced := c.nextSpell(opponent)
	if spell == nil {
		return CastResult{Outcome: CastOutcomePassed}
	}

	c.observe(events.Event{
		Type:   events.EventTypeSpellChosen,
		Target: opponent.name,
		Spell:  spell.Name(),
		Value:  spell.Cost(),
	})

	c.mana -= spell.Cost()
	c.totalManaSpent += spell.Cost()

	for _, effect := range spell.CasterEffects() {
		c.AddEffect(effect)
	}
	for _, effect := range spell.TargetEffects() {
		opponent.AddEffect(effect)
	}

	return CastResult{
		Outcome: CastOutcomeCast,
		Spell:   spell,
		Forced:  forced,
	}
}

// EligibleSpells returns, in spell book order, the spells this character can
// afford whose caster effects share no kind with its own active effects and
// whose target effects share no kind with the opponent's active effects
func (c *Character) EligibleSpells(opponent *Character) []*spells.Spell {
	eligible := []*spells.Spell{}
	for _, spell := range c.spellBook.All() {
		if c.isEligible(spell, opponent) {
			eligible = append(eligible, spell)
		}
	}
	return eligible
}

func (c *Character) isEligible(spell *spells.Spell, opponent *Character) bool {
	if spell.Cost() > c.mana {
		return false
	}
	if c.hasActiveKindOf(spell.CasterEffects()) {
		return false
	}
	if opponent.hasActiveKindOf(spell.TargetEffects()) {
		return false
	}
	return true
}

func (c *Character) hasActiveKindOf(templates []effects.Effect) bool {
	return c.effects.SharesKind(templates)
}

func (c *Character) nextSpell(opponent *Character) (*spells.Spell, bool) {
	if len(c.spellSequence) > 0 {
		name := c.spellSequence[0]
		c.spellSequence = c.spellSequence[1:]

		// names are checked against the book in New
		spell, _ := c.spellBook.Get(name)
		return spell, true
	}

	candidates := c.EligibleSpells(opponent)
	if len(candidates) == 0 {
		c.observe(events.Event{
			Type:    events.EventTypeSpellPassed,
			Target:  opponent.name,
			Mana:    c.mana,
			Message: "no eligible spell",
		})
		return nil, false
	}

	spell, err := c.chooser.Choose(candidates, c.roller)
	if err != nil {
		c.observe(events.Event{
			Type:    events.EventTypeSpellPassed,
			Target:  opponent.name,
			Mana:    c.mana,
			Message: err.Error(),
		})
		return nil, false
	}
	return spell, false
}
