package ringled

import (
	"ringled-go/services/hal"
	"ringled-go/types"
)

// Sweep runs a one-shot animation from LED 7 down to LED 0 while an
// active-high button is held.
type Sweep struct {
	in   hal.Pin
	bank hal.LEDBank
	clk  hal.Clock
	s    settings

	runs uint32
}

func NewSweep(in hal.Pin, bank hal.LEDBank, clk hal.Clock, opts ...Option) *Sweep {
	w := &Sweep{in: in, bank: bank, clk: clk, s: defaults()}
	for _, o := range opts {
		o(&w.s)
	}
	return w
}

// Poll checks the button once. When it reads high, each LED from 7 down to 0
// is lit, held for the hold time and cleared. Poll then blocks until the
// button reads low. It reports whether a sweep ran.
//
// The sweep owns the bank while it runs and does not clear it first; an LED
// left on by the ring stays on until the sweep passes over it.
func (w *Sweep) Poll() bool {
	if !w.in.Get() {
		return false
	}
	for i := RingSize - 1; i >= 0; i-- {
		bit := uint8(1) << uint(i)
		w.bank.Write(bit, true)
		w.s.publish(w.clk.NowMs(), types.SweepStep{Index: uint8(i)})
		w.clk.Sleep(w.s.holdMs)
		w.bank.Write(bit, false)
	}
	for w.in.Get() {
	}
	w.runs++
	w.s.publish(w.clk.NowMs(), types.SweepDone{Steps: RingSize})
	return true
}

// Runs counts completed sweeps.
func (w *Sweep) Runs() uint32 { return w.runs }
