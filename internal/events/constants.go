package events

// Event type constants
const (
	// Round lifecycle
	EventTypeRoundStart EventType = "round_start"
	EventTypeRoundEnd   EventType = "round_end"

	// Casting
	EventTypeCastAttempt EventType = "cast_attempt"
	EventTypeSpellChosen EventType = "spell_chosen"
	EventTypeSpellPassed EventType = "spell_passed"

	// Effects
	EventTypeEffectAdded   EventType = "effect_added"
	EventTypeEffectApplied EventType = "effect_applied"
	EventTypeEffectFaded   EventType = "effect_faded"

	// An invalid effect template was refused
	EventTypeEffectRejected EventType = "effect_rejected"

	// Physical combat
	EventTypeAttack      EventType = "attack"
	EventTypeDamageTaken EventType = "damage_taken"

	// A dead character tried to act
	EventTypeActorDead EventType = "actor_dead"

	// Emitted by the duel driver
	EventTypeDeath   EventType = "death"
	EventTypeDuelEnd EventType = "duel_end"
)
