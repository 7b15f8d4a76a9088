// services/hal/bringup.go
package hal

import (
	"ringled-go/errcode"
	"ringled-go/services/hal/internal/halcore"
	"ringled-go/services/hal/internal/platform"
	"ringled-go/types"
)

// Board is everything the polling loop needs once bring-up has succeeded.
type Board struct {
	Config  types.BoardConfig
	Advance Pin // active-low
	Sweep   Pin // active-high
	Bank    LEDBank
	Clock   Clock

	reg     *Registry
	claimed []claim
}

type claim struct {
	dev string
	pin int
}

// Factories are the platform services bring-up draws on.
type Factories struct {
	Pins  PinFactory
	I2C   I2CBusFactory
	Clock Clock
}

// DefaultFactories returns the factories of the build target.
func DefaultFactories() Factories {
	return Factories{
		Pins:  platform.DefaultPinFactory(),
		I2C:   platform.DefaultI2CFactory(),
		Clock: platform.DefaultClock(),
	}
}

// Bringup configures the board for the build target.
func Bringup(cfg types.BoardConfig) (*Board, error) {
	return BringupWith(cfg, DefaultFactories())
}

// BringupWith configures both buttons as floating inputs and the LED bank as
// outputs, all off. Any failure releases what was claimed and returns an
// errcode.BringupFailed error.
func BringupWith(cfg types.BoardConfig, f Factories) (*Board, error) {
	if f.Pins == nil || f.Clock == nil {
		return nil, &errcode.E{C: errcode.BringupFailed, Op: "factories", Err: errcode.InvalidParams}
	}
	b := &Board{Config: cfg, Clock: f.Clock, reg: NewRegistry(f.Pins)}

	var err error
	if b.Advance, err = b.input("advance", cfg.AdvancePin, true); err != nil {
		b.Close()
		return nil, err
	}
	if b.Sweep, err = b.input("sweep", cfg.SweepPin, false); err != nil {
		b.Close()
		return nil, err
	}

	switch cfg.Bank {
	case types.BankGPIO, "":
		var pins [BankWidth]Pin
		for i, n := range cfg.LEDPins {
			p, err := b.claim(ledID(i), n)
			if err != nil {
				b.Close()
				return nil, err
			}
			if err := p.ConfigureOutput(false); err != nil {
				b.Close()
				return nil, &errcode.E{C: errcode.BringupFailed, Op: "configure " + ledID(i), Err: err}
			}
			pins[i] = p
		}
		b.Bank = NewGPIOBank(pins)
		println("[hal] led bank on gpio")
	case types.BankMCP23017:
		if f.I2C == nil {
			b.Close()
			return nil, &errcode.E{C: errcode.BringupFailed, Op: "i2c", Err: errcode.UnknownBus}
		}
		bus, ok := f.I2C.ByID(cfg.I2C)
		if !ok {
			b.Close()
			return nil, &errcode.E{C: errcode.BringupFailed, Op: "i2c " + cfg.I2C, Err: errcode.UnknownBus}
		}
		bank, err := NewExpanderBank(bus, cfg.ExpanderAddr)
		if err != nil {
			b.Close()
			return nil, &errcode.E{C: errcode.BringupFailed, Op: "expander", Err: err}
		}
		b.Bank = bank
		println("[hal] led bank on mcp23017", cfg.I2C)
	default:
		b.Close()
		return nil, &errcode.E{C: errcode.BringupFailed, Op: "bank", Msg: cfg.Bank, Err: errcode.InvalidParams}
	}
	return b, nil
}

// Close releases every claimed pin.
func (b *Board) Close() {
	for _, c := range b.claimed {
		b.reg.ReleasePin(c.dev, c.pin)
	}
	b.claimed = nil
}

// idler is implemented by simulated pins, which have no external resistor to
// set their rest level.
type idler interface {
	SetIdle(level bool)
}

func (b *Board) input(dev string, n int, idle bool) (Pin, error) {
	p, err := b.claim(dev, n)
	if err != nil {
		return nil, err
	}
	if err := p.ConfigureInput(PullNone); err != nil {
		return nil, &errcode.E{C: errcode.BringupFailed, Op: "configure " + dev, Err: err}
	}
	if i, ok := p.(idler); ok {
		i.SetIdle(idle)
	}
	println("[hal] input", dev, "GP", n, "pull="+halcore.PullToString(PullNone))
	return p, nil
}

func (b *Board) claim(dev string, n int) (Pin, error) {
	p, err := b.reg.ClaimPin(dev, n)
	if err != nil {
		return nil, &errcode.E{C: errcode.BringupFailed, Op: "claim " + dev, Err: err}
	}
	b.claimed = append(b.claimed, claim{dev: dev, pin: n})
	return p, nil
}

func ledID(i int) string { return "led" + string(rune('0'+i)) }

// Halt is the fatal path: interrupts off, idle forever. It never returns.
func Halt() { platform.Halt() }
