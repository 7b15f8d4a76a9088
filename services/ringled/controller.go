package ringled

import (
	"ringled-go/services/hal"
	"ringled-go/types"
	"ringled-go/x/timex"
)

// Controller advances a single lit LED around the ring on each debounced
// press of an active-low button.
//
// A level change counts only when at least the debounce window has passed
// since the last accepted change. The raw level is recorded on every poll, so
// a bounce that arrives inside the window is absorbed and can hide the next
// real edge.
type Controller struct {
	in   hal.Pin
	bank hal.LEDBank
	clk  hal.Clock
	s    settings

	pos        uint8  // next LED to light
	lastLevel  bool   // raw level at the previous poll; true = released
	lastAccept uint32 // ms of the last accepted change
	presses    uint32
}

func New(in hal.Pin, bank hal.LEDBank, clk hal.Clock, opts ...Option) *Controller {
	c := &Controller{in: in, bank: bank, clk: clk, s: defaults(), lastLevel: true}
	for _, o := range opts {
		o(&c.s)
	}
	return c
}

// Poll runs one polling tick. On an accepted press it lights the LED at the
// current position, advances the position and then blocks, re-sampling the
// pin, until the button is released.
func (c *Controller) Poll() {
	level := c.in.Get()
	now := c.clk.NowMs()

	if level != c.lastLevel && timex.ElapsedMs(now, c.lastAccept) >= c.s.debounceMs {
		if !level {
			c.advance(now)
			c.waitRelease()
		}
		c.lastAccept = c.clk.NowMs()
	}
	c.lastLevel = level
}

func (c *Controller) advance(now uint32) {
	lit := c.pos
	c.bank.Write(0xFF, false)
	c.bank.Write(1<<lit, true)
	c.pos = (c.pos + 1) % RingSize
	c.presses++

	c.s.publish(now, types.RingAdvance{
		Lit:     lit,
		Next:    c.pos,
		Mask:    c.bank.Mask(),
		Presses: c.presses,
	})
}

// waitRelease busy-waits until the pin reads high.
func (c *Controller) waitRelease() {
	for !c.in.Get() {
	}
}

// Position is the index of the next LED to light (0..7).
func (c *Controller) Position() uint8 { return c.pos }

// Presses counts accepted presses since start.
func (c *Controller) Presses() uint32 { return c.presses }
