package character

import (
	"github.com/KirkDiggler/spell-duel/internal/dice"
	"github.com/KirkDiggler/spell-duel/internal/effects"
	"github.com/KirkDiggler/spell-duel/internal/errors"
	"github.com/KirkDiggler/spell-duel/internal/events"
	"github.com/KirkDiggler/spell-duel/internal/spells"
)

// Config holds everything needed to build a character
type Config struct {
	Name         string
	Health       int
	AttackRating int
	Armor        int
	Mana         int

	// Spells is the spell book; nil means the character cannot cast
	Spells *spells.Book

	// SpellSequence forces the cast order, one name per CastSpellOn call.
	// Every name must be in Spells.
	SpellSequence []string

	// Seed feeds the character's own roller when Roller is nil
	Seed    int64
	Roller  dice.Roller
	Chooser Chooser

	Observer events.Observer
}

// Character is one side of a duel. It only ever mutates its own state;
// the opponent is reached through AddEffect and AttackedBy during a single
// call and is never stored.
type Character struct {
	name           string
	health         int
	attackRating   int
	baseArmor      int
	mana           int
	totalManaSpent int

	spellBook     *spells.Book
	spellSequence []string
	effects       *effects.Manager

	roller   dice.Roller
	chooser  Chooser
	observer events.Observer
}

// New validates the config and builds a character
func New(cfg *Config) (*Character, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("character config is required")
	}
	if cfg.Name == "" {
		return nil, errors.InvalidArgument("character name is required")
	}
	if cfg.Health < 0 || cfg.AttackRating < 0 || cfg.Armor < 0 || cfg.Mana < 0 {
		return nil, errors.InvalidArgumentf("character %s has negative starting stats", cfg.Name).
			WithMeta("health", cfg.Health).
			WithMeta("attack_rating", cfg.AttackRating).
			WithMeta("armor", cfg.Armor).
			WithMeta("mana", cfg.Mana)
	}

	book := cfg.Spells
	if book == nil {
		var err error
		book, err = spells.NewBook()
		if err != nil {
			return nil, err
		}
	}

	for i, name := range cfg.SpellSequence {
		if _, ok := book.Get(name); !ok {
			return nil, errors.InvalidArgumentf("spell sequence entry %d: %s is not in the spell book of %s", i, name, cfg.Name)
		}
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewSeededRoller(cfg.Seed)
	}

	chooser := cfg.Chooser
	if chooser == nil {
		chooser = RandomChooser{}
	}

	observer := cfg.Observer
	if observer == nil {
		observer = events.Nop()
	}

	return &Character{
		name:          cfg.Name,
		health:        cfg.Health,
		attackRating:  cfg.AttackRating,
		baseArmor:     cfg.Armor,
		mana:          cfg.Mana,
		spellBook:     book,
		spellSequence: append([]string(nil), cfg.SpellSequence...),
		effects:       effects.NewManager(),
		roller:        roller,
		chooser:       chooser,
		observer:      observer,
	}, nil
}

func (c *Character) Name() string        { return c.name }
func (c *Character) Health() int         { return c.health }
func (c *Character) AttackRating() int   { return c.attackRating }
func (c *Character) Mana() int           { return c.mana }
func (c *Character) TotalManaSpent() int { return c.totalManaSpent }
func (c *Character) BaseArmor() int      { return c.baseArmor }

// BonusArmor is the sum of the active armor effects
func (c *Character) BonusArmor() int { return c.effects.Armor() }

// Armor is the total armor used when defending
func (c *Character) Armor() int { return c.baseArmor + c.effects.Armor() }

func (c *Character) IsAlive() bool { return c.health > 0 }
func (c *Character) IsDead() bool  { return !c.IsAlive() }

// ActiveEffects returns copies of the active effects in application order
func (c *Character) ActiveEffects() []effects.Effect {
	return c.effects.Active()
}

// PendingSpells returns what is left of the forced spell sequence
func (c *Character) PendingSpells() []string {
	return append([]string(nil), c.spellSequence...)
}

// SpellBook returns the character's spell book
func (c *Character) SpellBook() *spells.Book {
	return c.spellBook
}

// Snapshot is the queryable state of a character at one point in time
type Snapshot struct {
	Name           string
	Health         int
	Mana           int
	Armor          int
	BonusArmor     int
	TotalManaSpent int
	Alive          bool
	ActiveEffects  []effects.Effect
}

// Snapshot captures the current state
func (c *Character) Snapshot() Snapshot {
	return Snapshot{
		Name:           c.name,
		Health:         c.health,
		Mana:           c.mana,
		Armor:          c.Armor(),
		BonusArmor:     c.BonusArmor(),
		TotalManaSpent: c.totalManaSpent,
		Alive:          c.IsAlive(),
		ActiveEffects:  c.ActiveEffects(),
	}
}

func (c *Character) observe(event events.Event) {
	event.Actor = c.name
	c.observer.Observe(event)
}
