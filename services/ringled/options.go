package ringled

const (
	// RingSize is the number of LEDs the ring and the sweep walk through.
	RingSize = 8

	DefaultDebounceMs = 50
	DefaultHoldMs     = 500
)

// Event is one notification from the polling loop. Payload is one of
// types.RingAdvance, types.SweepStep or types.SweepDone.
type Event struct {
	TSms    uint32
	Payload any
}

// Emitter receives events. Emit must not block; false means the event was
// dropped.
type Emitter interface {
	Emit(ev Event) bool
}

type settings struct {
	debounceMs uint32
	holdMs     uint32
	emit       Emitter
}

func defaults() settings {
	return settings{debounceMs: DefaultDebounceMs, holdMs: DefaultHoldMs}
}

type Option func(*settings)

// WithDebounce sets the debounce window of the advance button.
func WithDebounce(ms uint32) Option { return func(s *settings) { s.debounceMs = ms } }

// WithHold sets how long each LED stays lit during a sweep.
func WithHold(ms uint32) Option { return func(s *settings) { s.holdMs = ms } }

// WithEmitter attaches an event sink. A nil emitter disables events.
func WithEmitter(e Emitter) Option { return func(s *settings) { s.emit = e } }

func (s *settings) publish(ts uint32, payload any) {
	if s.emit != nil {
		_ = s.emit.Emit(Event{TSms: ts, Payload: payload})
	}
}
