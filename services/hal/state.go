package hal

import (
	"io"

	"ringled-go/bus"
	"ringled-go/errcode"
	"ringled-go/services/hal/internal/platform"
	"ringled-go/types"
)

// TopicState carries the retained types.HALState.
var TopicState = bus.T("hal", "state")

type faulter interface {
	Faults() (uint32, error)
}

// State reports the board as ready, with bank faults if the bank counts them.
func (b *Board) State() types.HALState {
	st := types.HALState{Level: types.HALReady, Setup: b.Config.Name, Bank: b.Config.Bank}
	if st.Bank == "" {
		st.Bank = types.BankGPIO
	}
	if f, ok := b.Bank.(faulter); ok {
		n, last := f.Faults()
		st.Faults = n
		if last != nil {
			st.Error = string(errcode.Of(last))
		}
	}
	return st
}

// PublishState publishes the board state retained on hal/state.
func PublishState(conn *bus.Connection, b *Board) {
	conn.Publish(&bus.Message{Topic: TopicState, Payload: b.State(), Retained: true})
}

// PublishFailure publishes a failed bring-up retained on hal/state.
func PublishFailure(conn *bus.Connection, cfg types.BoardConfig, err error) {
	conn.Publish(&bus.Message{
		Topic:    TopicState,
		Payload:  types.HALState{Level: types.HALFailed, Setup: cfg.Name, Bank: cfg.Bank, Error: string(errcode.Of(err))},
		Retained: true,
	})
}

// Console is the platform log sink: USB serial mirrored to UART0
// (GP0/GP1) on rp2,
// stdout on the host.
func Console() io.Writer { return platform.DefaultConsole() }
