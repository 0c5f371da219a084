package events

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapListener writes every event to a zap logger
type ZapListener struct {
	logger   *zap.Logger
	priority int
}

// NewZapListener creates a listener logging through logger
func NewZapListener(logger *zap.Logger) *ZapListener {
	return &ZapListener{
		logger:   logger,
		priority: 1000,
	}
}

func (l *ZapListener) ID() string    { return "zap" }
func (l *ZapListener) Priority() int { return l.priority }

// HandleEvent implements Listener
func (l *ZapListener) HandleEvent(event Event) error {
	level := zapcore.DebugLevel
	if event.IsWarning() {
		level = zapcore.WarnLevel
	}

	ce := l.logger.Check(level, string(event.Type))
	if ce == nil {
		return nil
	}

	fields := []zap.Field{zap.String("actor", event.Actor)}
	if event.Target != "" {
		fields = append(fields, zap.String("target", event.Target))
	}
	if event.Spell != "" {
		fields = append(fields, zap.String("spell", event.Spell))
	}
	if event.Effect != "" {
		fields = append(fields,
			zap.String("effect", string(event.Effect)),
			zap.Int("remaining", event.Remaining),
		)
	}
	fields = append(fields,
		zap.Int("value", event.Value),
		zap.Int("health", event.Health),
		zap.Int("mana", event.Mana),
	)
	if event.Message != "" {
		fields = append(fields, zap.String("message", event.Message))
	}

	ce.Write(fields...)
	return nil
}

// Recorder keeps every event it receives, in order
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{events: []Event{}}
}

func (r *Recorder) ID() string    { return "recorder" }
func (r *Recorder) Priority() int { return 0 }

// HandleEvent implements Listener
func (r *Recorder) HandleEvent(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Observe lets a Recorder be used directly as an Observer
func (r *Recorder) Observe(event Event) {
	_ = r.HandleEvent(event)
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// OfType returns the recorded events of one type
func (r *Recorder) OfType(eventType EventType) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []Event{}
	for _, e := range r.events {
		if e.Type == eventType {
			matched = append(matched, e)
		}
	}
	return matched
}

// Lines renders the recorded events as transcript lines
func (r *Recorder) Lines() []string {
	events := r.Events()
	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = e.String()
	}
	return lines
}

// Reset drops all recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = []Event{}
}
