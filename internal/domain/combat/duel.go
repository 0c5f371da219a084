package combat

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/spell-duel/internal/domain/character"
	"github.com/KirkDiggler/spell-duel/internal/effects"
	"github.com/KirkDiggler/spell-duel/internal/errors"
	"github.com/KirkDiggler/spell-duel/internal/events"
	"go.uber.org/zap"
)

// DefaultMaxRounds caps a duel when the config leaves MaxRounds at zero
const DefaultMaxRounds = 100

// DuelStatus represents the current state of a duel
type DuelStatus string

const (
	DuelStatusSetup     DuelStatus = "setup"     // Characters built, nothing played
	DuelStatusActive    DuelStatus = "active"    // Rounds in progress
	DuelStatusCompleted DuelStatus = "completed" // Someone died or the round cap was hit
)

// Config describes one duel. The caster acts first in every round by casting
// a spell; the opponent answers with a physical attack.
type Config struct {
	ID       string
	Seed     int64
	Caster   character.Config
	Opponent character.Config

	// MaxRounds ends the duel in a draw; zero means DefaultMaxRounds
	MaxRounds int

	// Attrition is instant damage the caster takes at the start of each of
	// its rounds, before its own effects tick. Healing cannot save a caster
	// that attrition brings to zero.
	Attrition int

	// Listeners receive every event next to the duel's own log. Any
	// Observer set on the character configs is replaced by the duel bus.
	Listeners []events.Listener
	Logger    *zap.Logger
}

// Duel drives two characters through alternating rounds until one dies
type Duel struct {
	id        string
	seed      int64
	maxRounds int
	attrition int

	caster   *character.Character
	opponent *character.Character

	bus      *events.Bus
	recorder *events.Recorder
	log      *combatLog

	status  DuelStatus
	round   int
	passes  int
	spells  []string
	outcome Outcome
	winner  string
}

// NewDuel validates the config and builds both characters
func NewDuel(cfg *Config) (*Duel, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("duel config is required")
	}
	if cfg.MaxRounds < 0 {
		return nil, errors.InvalidArgumentf("max rounds must not be negative, got %d", cfg.MaxRounds)
	}
	if cfg.Attrition < 0 {
		return nil, errors.InvalidArgumentf("attrition must not be negative, got %d", cfg.Attrition)
	}

	maxRounds := cfg.MaxRounds
	if maxRounds == 0 {
		maxRounds = DefaultMaxRounds
	}

	d := &Duel{
		id:        cfg.ID,
		seed:      cfg.Seed,
		maxRounds: maxRounds,
		attrition: cfg.Attrition,
		bus:       events.NewBus(cfg.Logger),
		recorder:  events.NewRecorder(),
		status:    DuelStatusSetup,
		spells:    []string{},
	}
	d.log = &combatLog{duel: d, entries: []string{}}

	d.bus.SubscribeAll(d.recorder)
	d.bus.SubscribeAll(d.log)
	for _, listener := range cfg.Listeners {
		d.bus.SubscribeAll(listener)
	}

	casterCfg := cfg.Caster
	casterCfg.Observer = d.bus
	caster, err := character.New(&casterCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create caster")
	}

	opponentCfg := cfg.Opponent
	opponentCfg.Observer = d.bus
	opponent, err := character.New(&opponentCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create opponent")
	}

	d.caster = caster
	d.opponent = opponent
	return d, nil
}

func (d *Duel) ID() string                     { return d.id }
func (d *Duel) Status() DuelStatus             { return d.status }
func (d *Duel) Round() int                     { return d.round }
func (d *Duel) Caster() *character.Character   { return d.caster }
func (d *Duel) Opponent() *character.Character { return d.opponent }

// Events returns every event observed so far
func (d *Duel) Events() []events.Event {
	return d.recorder.Events()
}

// Subscribe adds a listener for every event of the duel
func (d *Duel) Subscribe(listener events.Listener) {
	d.bus.SubscribeAll(listener)
}

// Run plays rounds until a character dies or MaxRounds is reached. The
// context is checked between rounds; a cancelled duel returns the context
// error and stays active.
func (d *Duel) Run(ctx context.Context) (*Result, error) {
	if d.status != DuelStatusSetup {
		return nil, errors.InvalidArgumentf("duel %s has already been run", d.id)
	}
	d.status = DuelStatusActive

	if d.checkDeath() {
		return d.finish(), nil
	}

	for d.round < d.maxRounds {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "duel %s interrupted in round %d", d.id, d.round)
		}

		d.round++
		if d.playRound() {
			return d.finish(), nil
		}
	}

	d.outcome = OutcomeDraw
	return d.finish(), nil
}

// playRound runs the caster's turn and then the opponent's. It returns true
// as soon as a character has died.
func (d *Duel) playRound() bool {
	if d.attrition > 0 {
		d.caster.AddEffect(effects.Damage(d.attrition))
		if d.checkDeath() {
			return true
		}
	}

	d.caster.StartRound()
	if d.checkDeath() {
		return true
	}

	cast := d.caster.CastSpellOn(d.opponent)
	switch cast.Outcome {
	case character.CastOutcomeCast:
		d.spells = append(d.spells, cast.Spell.Name())
	case character.CastOutcomePassed:
		d.passes++
	case character.CastOutcomeDead:
		// unreachable after checkDeath
	}
	d.caster.EndRound()
	if d.checkDeath() {
		return true
	}

	d.opponent.StartRound()
	if d.checkDeath() {
		return true
	}

	d.opponent.Attack(d.caster)
	d.opponent.EndRound()
	return d.checkDeath()
}

// checkDeath settles the outcome once either side is dead. The caster is
// checked first, so it loses when both fall together.
func (d *Duel) checkDeath() bool {
	switch {
	case d.caster.IsDead():
		d.declare(d.caster, d.opponent, OutcomeOpponentWon)
	case d.opponent.IsDead():
		d.declare(d.opponent, d.caster, OutcomeCasterWon)
	default:
		return false
	}
	return true
}

func (d *Duel) declare(loser, winner *character.Character, outcome Outcome) {
	d.outcome = outcome
	d.winner = winner.Name()
	d.bus.Observe(events.Event{
		Type:    events.EventTypeDeath,
		Actor:   loser.Name(),
		Target:  winner.Name(),
		Health:  loser.Health(),
		Mana:    loser.Mana(),
		Message: fmt.Sprintf("%s has died", loser.Name()),
	})
}

func (d *Duel) finish() *Result {
	d.status = DuelStatusCompleted

	message := fmt.Sprintf("%s after %d rounds", d.outcome, d.round)
	if d.winner != "" {
		message = fmt.Sprintf("%s wins after %d rounds", d.winner, d.round)
	}
	d.bus.Observe(events.Event{
		Type:    events.EventTypeDuelEnd,
		Actor:   d.caster.Name(),
		Target:  d.opponent.Name(),
		Value:   d.caster.TotalManaSpent(),
		Message: message,
	})

	return &Result{
		ID:             d.id,
		Seed:           d.seed,
		Outcome:        d.outcome,
		Winner:         d.winner,
		Caster:         d.caster.Name(),
		Opponent:       d.opponent.Name(),
		Rounds:         d.round,
		ManaSpent:      d.caster.TotalManaSpent(),
		Passes:         d.passes,
		Spells:         append([]string{}, d.spells...),
		CasterHealth:   d.caster.Health(),
		CasterMana:     d.caster.Mana(),
		OpponentHealth: d.opponent.Health(),
		Log:            d.log.Entries(),
	}
}

// combatLog keeps the transcript, each line prefixed with its round
type combatLog struct {
	duel    *Duel
	mu      sync.Mutex
	entries []string
}

func (l *combatLog) ID() string    { return "combat_log" }
func (l *combatLog) Priority() int { return 0 }

func (l *combatLog) HandleEvent(event events.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprintf("Round %d: %s", l.duel.round, event))
	return nil
}

// Entries returns a copy of the transcript
func (l *combatLog) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.entries...)
}
