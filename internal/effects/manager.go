package effects

// Manager keeps the live durational effects of one character in application
// order and tracks the armor they grant. It is not safe for concurrent use;
// a character owns exactly one.
type Manager struct {
	effects []*Effect
	armor   int
}

// NewManager creates an empty effect manager
func NewManager() *Manager {
	return &Manager{
		effects: []*Effect{},
	}
}

// Add stores a live durational effect. Armor effects raise the bonus
// immediately.
func (m *Manager) Add(effect *Effect) {
	m.effects = append(m.effects, effect)
	if effect.Kind == KindArmor {
		m.armor += effect.Value
	}
}

// Tick calls apply for every stored effect in order and consumes one round
// of its duration. Faded effects stay stored until ClearFaded.
func (m *Manager) Tick(apply func(effect *Effect)) {
	for _, effect := range m.effects {
		apply(effect)
		effect.Fade()
	}
}

// ClearFaded removes faded effects, dropping their armor contribution, and
// returns what was removed
func (m *Manager) ClearFaded() []*Effect {
	kept := m.effects[:0]
	removed := []*Effect{}

	for _, effect := range m.effects {
		if !effect.Faded() {
			kept = append(kept, effect)
			continue
		}
		if effect.Kind == KindArmor {
			m.armor -= effect.Value
		}
		removed = append(removed, effect)
	}

	// release references left past the new length
	for i := len(kept); i < len(m.effects); i++ {
		m.effects[i] = nil
	}
	m.effects = kept

	return removed
}

// Armor is the sum of active armor effect values
func (m *Manager) Armor() int {
	return m.armor
}

// Len returns the number of active effects
func (m *Manager) Len() int {
	return len(m.effects)
}

// HasKind reports whether any active effect is of the given kind
func (m *Manager) HasKind(kind Kind) bool {
	for _, effect := range m.effects {
		if effect.Kind == kind {
			return true
		}
	}
	return false
}

// SharesKind reports whether any of the templates has a kind already active
func (m *Manager) SharesKind(templates []Effect) bool {
	for _, template := range templates {
		if m.HasKind(template.Kind) {
			return true
		}
	}
	return false
}

// Active returns copies of the active effects, remaining duration included
func (m *Manager) Active() []Effect {
	active := make([]Effect, len(m.effects))
	for i, effect := range m.effects {
		active[i] = *effect
	}
	return active
}
