package simulation

import (
	"github.com/KirkDiggler/spell-duel/internal/domain/combat"
)

// Summary aggregates the results of a batch
type Summary struct {
	BatchID string
	Games   int
	Wins    int // caster won
	Losses  int // opponent won
	Draws   int

	// CheapestWin is the caster win with the least mana spent, lowest seed
	// first on ties; nil without any win
	CheapestWin *combat.Result

	// Results holds every game in seed order
	Results []*combat.Result
}

// Summarize folds results, given in seed order, into a Summary
func Summarize(batchID string, played []*combat.Result) *Summary {
	summary := &Summary{
		BatchID: batchID,
		Games:   len(played),
		Results: played,
	}

	for _, result := range played {
		switch result.Outcome {
		case combat.OutcomeCasterWon:
			summary.Wins++
			if summary.CheapestWin == nil || result.ManaSpent < summary.CheapestWin.ManaSpent {
				summary.CheapestWin = result
			}
		case combat.OutcomeOpponentWon:
			summary.Losses++
		case combat.OutcomeDraw:
			summary.Draws++
		}
	}

	return summary
}

// WinRate is the share of games the caster won
func (s *Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}
