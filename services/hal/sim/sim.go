// Package sim is a deterministic host-side board. Input pins follow a script
// on a virtual millisecond clock, and every read costs a little virtual time,
// so busy-wait loops written against real hardware terminate in tests.
package sim

import (
	"sort"
	"sync"

	"ringled-go/services/hal/internal/halcore"
)

// ---- Clock ----

// Clock is a virtual monotonic millisecond clock. Sleep advances it.
type Clock struct {
	mu  sync.Mutex
	now uint32
}

func NewClock(start uint32) *Clock { return &Clock{now: start} }

func (c *Clock) NowMs() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Sleep(ms uint32) { c.Advance(ms) }

func (c *Clock) Advance(ms uint32) {
	c.mu.Lock()
	c.now += ms
	c.mu.Unlock()
}

// ---- Pins ----

// Change is a scheduled external level change on an input pin.
type Change struct {
	At    uint32
	Level bool
}

// Pin implements halcore.GPIOPin.
type Pin struct {
	mu    sync.Mutex
	clk   *Clock
	n     int
	level bool
	out   bool
	pull  halcore.Pull
	cost  uint32 // virtual ms consumed by each Get
	plan  []Change
	reads uint32
}

func NewPin(clk *Clock, n int, level bool) *Pin {
	return &Pin{clk: clk, n: n, level: level, cost: 1}
}

func (p *Pin) Number() int { return p.n }

func (p *Pin) ConfigureInput(pull halcore.Pull) error {
	p.mu.Lock()
	p.out = false
	p.pull = pull
	p.mu.Unlock()
	return nil
}

func (p *Pin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.out = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *Pin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

// Get applies every scheduled change that is due, returns the level, then
// advances the clock by the sample cost.
func (p *Pin) Get() bool {
	p.mu.Lock()
	now := p.clk.NowMs()
	for len(p.plan) > 0 && int32(now-p.plan[0].At) >= 0 {
		p.level = p.plan[0].Level
		p.plan = p.plan[1:]
	}
	lvl := p.level
	p.reads++
	cost := p.cost
	p.mu.Unlock()

	if cost > 0 {
		p.clk.Advance(cost)
	}
	return lvl
}

// SetIdle sets the level the pin rests at with nothing pressed. Bring-up calls
// it so an active-high button does not read pressed on the host.
func (p *Pin) SetIdle(level bool) { p.Drive(level) }

// Drive sets the externally applied level now.
func (p *Pin) Drive(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

// DriveAt schedules an external level change at virtual time at.
func (p *Pin) DriveAt(at uint32, level bool) {
	p.mu.Lock()
	p.plan = append(p.plan, Change{At: at, Level: level})
	sort.SliceStable(p.plan, func(i, j int) bool {
		return int32(p.plan[i].At-p.plan[j].At) < 0
	})
	p.mu.Unlock()
}

// Pulse drives active at `at` and the opposite level `width` ms later.
func (p *Pin) Pulse(at, width uint32, active bool) {
	p.DriveAt(at, active)
	p.DriveAt(at+width, !active)
}

func (p *Pin) SetSampleCost(ms uint32) {
	p.mu.Lock()
	p.cost = ms
	p.mu.Unlock()
}

// Level returns the current level without sampling cost or applying the plan.
func (p *Pin) Level() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *Pin) IsOutput() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out
}

func (p *Pin) Pull() halcore.Pull {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pull
}

func (p *Pin) Reads() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reads
}

// Pending reports how many scheduled changes have not yet been observed.
func (p *Pin) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.plan)
}

// ---- LED bank ----

// Write is one recorded bank write.
type Write struct {
	At    uint32
	Bits  uint8
	Level bool
	Image uint8 // bank image after the write
}

// Bank implements halcore.LEDBank and records every write.
type Bank struct {
	mu    sync.Mutex
	clk   *Clock
	image uint8
	log   []Write
}

func NewBank(clk *Clock) *Bank { return &Bank{clk: clk} }

func (b *Bank) Write(mask uint8, level bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if level {
		b.image |= mask
	} else {
		b.image &^= mask
	}
	var at uint32
	if b.clk != nil {
		at = b.clk.NowMs()
	}
	b.log = append(b.log, Write{At: at, Bits: mask, Level: level, Image: b.image})
}

func (b *Bank) Mask() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.image
}

func (b *Bank) Writes() []Write {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Write(nil), b.log...)
}

func (b *Bank) ResetLog() {
	b.mu.Lock()
	b.log = nil
	b.mu.Unlock()
}

// ---- Board ----

// Board hands out pins on one shared clock and implements halcore.PinFactory.
type Board struct {
	clk      *Clock
	min, max int

	mu   sync.Mutex
	pins map[int]*Pin
}

func NewBoard(min, max int) *Board {
	return &Board{clk: NewClock(0), min: min, max: max, pins: map[int]*Pin{}}
}

func (b *Board) Clock() *Clock { return b.clk }

// Pin returns pin n, creating it idle-high on first use, or nil when n is out
// of range.
func (b *Board) Pin(n int) *Pin {
	if n < b.min || n > b.max {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.pins[n]
	if !ok {
		p = NewPin(b.clk, n, true)
		b.pins[n] = p
	}
	return p
}

func (b *Board) ByNumber(n int) (halcore.GPIOPin, bool) {
	p := b.Pin(n)
	if p == nil {
		return nil, false
	}
	return p, true
}

// ---- I2C ----

// I2C is a register-file I2C bus: a one-byte write selects a register and
// reads from it, longer writes store w[1:] from register w[0].
type I2C struct {
	mu   sync.Mutex
	devs map[uint16]*[256]byte
	Err  error
}

func NewI2C(addrs ...uint16) *I2C {
	b := &I2C{devs: map[uint16]*[256]byte{}}
	for _, a := range addrs {
		b.devs[a] = new([256]byte)
	}
	return b
}

func (b *I2C) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return b.Err
	}
	regs, ok := b.devs[addr]
	if !ok || len(w) == 0 {
		return errNoDevice
	}
	reg := int(w[0])
	if len(w) > 1 {
		copy(regs[reg:], w[1:])
	}
	if len(r) > 0 {
		copy(r, regs[reg:])
	}
	return nil
}

// Register returns the current value of one register of the device at addr.
func (b *I2C) Register(addr uint16, reg uint8) uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if regs, ok := b.devs[addr]; ok {
		return regs[reg]
	}
	return 0
}

type simError string

func (e simError) Error() string { return string(e) }

const errNoDevice = simError("sim: no device at address")
