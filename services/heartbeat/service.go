// Package heartbeat prints a periodic status line with the active setup and
// the last ring state.
package heartbeat

import (
	"context"
	"io"
	"time"

	"ringled-go/bus"
	"ringled-go/services/config"
	"ringled-go/services/ringled"
	"ringled-go/services/telemetry"
	"ringled-go/types"
	"ringled-go/x/conv"
)

type Service struct {
	out  io.Writer
	unit time.Duration // length of one interval step
}

func New(out io.Writer) *Service { return &Service{out: out, unit: time.Second} }

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(config.TopicHeartbeat)
	defer conn.Unsubscribe(cfgSub)
	boardSub := conn.Subscribe(config.TopicBoard)
	defer conn.Unsubscribe(boardSub)
	stateSub := conn.Subscribe(telemetry.TopicState)
	defer conn.Unsubscribe(stateSub)

	var (
		tick  *time.Ticker
		tickC <-chan time.Time
		state types.RingState
		setup string
	)
	defer func() {
		if tick != nil {
			tick.Stop()
		}
	}()

	// loop until context is cancelled, respond to tick, state and config changes
	for {
		select {
		case <-ctx.Done():
			return
		case <-tickC:
			_, _ = s.out.Write(Line(setup, state))
		case msg := <-stateSub.Channel():
			if ev, ok := msg.Payload.(ringled.Event); ok {
				if st, ok := ev.Payload.(types.RingState); ok {
					state = st
				}
			}
		case msg := <-boardSub.Channel():
			if bc, ok := msg.Payload.(types.BoardConfig); ok {
				setup = bc.Name
			}
		case msg := <-cfgSub.Channel():
			iv, ok := msg.Payload.(uint32)
			if !ok {
				continue
			}
			if tick != nil {
				tick.Stop()
				tick, tickC = nil, nil
			}
			if iv > 0 {
				tick = time.NewTicker(time.Duration(iv) * s.unit)
				tickC = tick.C
			}
		}
	}
}

// Start runs the service until ctx is cancelled. The interval comes from the
// retained config/heartbeat message; zero keeps the service silent.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.serviceLoop(ctx, conn)
}

// Line renders the status line, e.g.
// "[heartbeat] setup=pico_default pos=3 presses=11 sweeps=0".
func Line(setup string, st types.RingState) []byte {
	b := make([]byte, 0, 64)
	b = append(b, "[heartbeat] setup="...)
	if setup == "" {
		setup = "?"
	}
	b = append(b, setup...)
	b = append(b, " pos="...)
	b = conv.AppendUint(b, uint64(st.Position))
	b = append(b, " presses="...)
	b = conv.AppendUint(b, uint64(st.Presses))
	b = append(b, " sweeps="...)
	b = conv.AppendUint(b, uint64(st.Sweeps))
	return append(b, '\n')
}
