package spells

import (
	"github.com/KirkDiggler/spell-duel/internal/errors"
)

// Book maps spell names to spells. Iteration follows insertion order so a
// seeded random choice over the book is reproducible.
type Book struct {
	names  []string
	spells map[string]*Spell
}

// NewBook creates a book holding the given spells
func NewBook(spells ...*Spell) (*Book, error) {
	book := &Book{
		names:  []string{},
		spells: make(map[string]*Spell, len(spells)),
	}
	for _, spell := range spells {
		if err := book.Add(spell); err != nil {
			return nil, err
		}
	}
	return book, nil
}

// Add appends a spell; names are unique
func (b *Book) Add(spell *Spell) error {
	if spell == nil {
		return errors.InvalidArgument("spell cannot be nil")
	}
	if _, exists := b.spells[spell.Name()]; exists {
		return errors.AlreadyExistsf("spell %s already in book", spell.Name())
	}

	b.names = append(b.names, spell.Name())
	b.spells[spell.Name()] = spell
	return nil
}

// Get looks up a spell by name
func (b *Book) Get(name string) (*Spell, bool) {
	spell, ok := b.spells[name]
	return spell, ok
}

// All returns the spells in insertion order
func (b *Book) All() []*Spell {
	all := make([]*Spell, len(b.names))
	for i, name := range b.names {
		all[i] = b.spells[name]
	}
	return all
}

// Names returns the spell names in insertion order
func (b *Book) Names() []string {
	return append([]string(nil), b.names...)
}

func (b *Book) Len() int {
	return len(b.names)
}
