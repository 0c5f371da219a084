package combat

import (
	"time"
)

// Outcome is how a duel ended
type Outcome string

const (
	OutcomeCasterWon   Outcome = "caster_won"
	OutcomeOpponentWon Outcome = "opponent_won"
	OutcomeDraw        Outcome = "draw"
)

// Result is the record of a finished duel
type Result struct {
	ID      string  `json:"id"`
	BatchID string  `json:"batch_id,omitempty"`
	Seed    int64   `json:"seed"`
	Outcome Outcome `json:"outcome"`
	Winner  string  `json:"winner,omitempty"`

	Caster   string `json:"caster"`
	Opponent string `json:"opponent"`

	Rounds    int      `json:"rounds"`
	ManaSpent int      `json:"mana_spent"` // Total mana the caster spent
	Passes    int      `json:"passes"`     // Caster turns without an eligible spell
	Spells    []string `json:"spells"`     // Spells cast, in order

	CasterHealth   int `json:"caster_health"`
	CasterMana     int `json:"caster_mana"`
	OpponentHealth int `json:"opponent_health"`

	Log       []string  `json:"log"`
	CreatedAt time.Time `json:"created_at"`
}

// CasterWon reports whether the caster killed the opponent
func (r *Result) CasterWon() bool {
	return r.Outcome == OutcomeCasterWon
}

// IsDraw reports whether the duel hit the round cap
func (r *Result) IsDraw() bool {
	return r.Outcome == OutcomeDraw
}
