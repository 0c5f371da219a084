package events

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/spell-duel/internal/effects"
)

// EventType represents the type of combat event
type EventType string

// Event describes one notable transition in a duel. Only the fields that
// make sense for the type are set.
type Event struct {
	Type      EventType
	Actor     string
	Target    string
	Spell     string
	Effect    effects.Kind
	Value     int
	Remaining int
	Health    int
	Mana      int
	Message   string
}

// IsWarning reports events that signal an action was refused
func (e Event) IsWarning() bool {
	switch e.Type {
	case EventTypeActorDead, EventTypeDeath, EventTypeEffectRejected:
		return true
	}
	return false
}

// String renders the event as one transcript line
func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Type, e.Actor)
	if e.Target != "" {
		fmt.Fprintf(&b, " -> %s", e.Target)
	}
	if e.Spell != "" {
		fmt.Fprintf(&b, " spell=%s", e.Spell)
	}
	if e.Effect != "" {
		fmt.Fprintf(&b, " effect=%s value=%d remaining=%d", e.Effect, e.Value, e.Remaining)
	} else if e.Value != 0 {
		fmt.Fprintf(&b, " value=%d", e.Value)
	}
	if e.Type == EventTypeRoundStart || e.Type == EventTypeDamageTaken {
		fmt.Fprintf(&b, " health=%d mana=%d", e.Health, e.Mana)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, " (%s)", e.Message)
	}
	return b.String()
}

// Observer receives events from the combat core. Observers must not change
// the outcome of the call that emitted the event.
type Observer interface {
	Observe(event Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(event Event)

func (f ObserverFunc) Observe(event Event) { f(event) }

type nopObserver struct{}

func (nopObserver) Observe(Event) {}

// Nop returns an observer that discards every event
func Nop() Observer {
	return nopObserver{}
}
