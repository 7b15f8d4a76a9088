package telemetry

import (
	"context"
	"io"

	"ringled-go/bus"
	"ringled-go/services/ringled"
	"ringled-go/types"
	"ringled-go/x/conv"
)

// Console prints one tagged line per ring or sweep event.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console { return &Console{w: w} }

// Start subscribes to ringled/# and writes lines until ctx is cancelled.
func (c *Console) Start(ctx context.Context, conn *bus.Connection) {
	sub := conn.Subscribe(TopicAll)
	go func() {
		defer conn.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-sub.Channel():
				if !ok {
					return
				}
				if line := FormatLine(m); line != nil {
					_, _ = c.w.Write(line)
				}
			}
		}
	}()
}

// FormatLine renders a ringled message, for example
//
//	[ringled] t=1101 advance lit=0 next=1 mask=0x01 presses=1
//
// State snapshots and foreign payloads render as nil.
func FormatLine(m *bus.Message) []byte {
	ev, ok := m.Payload.(ringled.Event)
	if !ok {
		return nil
	}
	b := make([]byte, 0, 64)
	b = append(b, "[ringled] t="...)
	b = conv.AppendUint(b, uint64(ev.TSms))

	switch v := ev.Payload.(type) {
	case types.RingAdvance:
		b = append(b, " advance lit="...)
		b = conv.AppendUint(b, uint64(v.Lit))
		b = append(b, " next="...)
		b = conv.AppendUint(b, uint64(v.Next))
		b = append(b, " mask="...)
		b = conv.AppendHex8(b, v.Mask)
		b = append(b, " presses="...)
		b = conv.AppendUint(b, uint64(v.Presses))
	case types.SweepStep:
		b = append(b, " sweep step="...)
		b = conv.AppendUint(b, uint64(v.Index))
	case types.SweepDone:
		b = append(b, " sweep done steps="...)
		b = conv.AppendUint(b, uint64(v.Steps))
	default:
		return nil
	}
	return append(b, '\n')
}
