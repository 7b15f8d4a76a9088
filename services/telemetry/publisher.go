// Package telemetry carries ring and sweep events from the polling loop onto
// the bus and renders them as console lines.
package telemetry

import (
	"sync/atomic"

	"ringled-go/bus"
	"ringled-go/services/ringled"
	"ringled-go/types"
)

const prefix = "ringled"

// Topics. Payloads are always ringled.Event.
var (
	TopicAdvance = bus.T(prefix, "ring", "advance")
	TopicStep    = bus.T(prefix, "sweep", "step")
	TopicDone    = bus.T(prefix, "sweep", "done")
	TopicState   = bus.T(prefix, "state") // retained types.RingState
	TopicAll     = bus.T(prefix, bus.MultiWild)
)

// Publisher is a ringled.Emitter backed by a bus connection. Bus publish
// never blocks, so neither does Emit.
type Publisher struct {
	conn  *bus.Connection
	state types.RingState
	drops atomic.Uint32
}

func NewPublisher(conn *bus.Connection) *Publisher { return &Publisher{conn: conn} }

// Emit maps the event payload to its topic and refreshes the retained state
// after an advance or a completed sweep. Unknown payloads are dropped.
func (p *Publisher) Emit(ev ringled.Event) bool {
	var topic bus.Topic
	snap := true
	switch v := ev.Payload.(type) {
	case types.RingAdvance:
		topic = TopicAdvance
		p.state.Position = v.Next
		p.state.Presses = v.Presses
	case types.SweepStep:
		topic = TopicStep
		snap = false
	case types.SweepDone:
		topic = TopicDone
		p.state.Sweeps++
	default:
		p.drops.Add(1)
		return false
	}
	p.conn.Publish(&bus.Message{Topic: topic, Payload: ev})
	if snap {
		p.conn.Publish(&bus.Message{
			Topic:    TopicState,
			Payload:  ringled.Event{TSms: ev.TSms, Payload: p.state},
			Retained: true,
		})
	}
	return true
}

// State returns the last snapshot published on TopicState. Only safe to call
// from the goroutine that drives Emit.
func (p *Publisher) State() types.RingState { return p.state }

// Drops counts events with a payload the publisher does not know.
func (p *Publisher) Drops() uint32 { return p.drops.Load() }
