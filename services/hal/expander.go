// services/hal/expander.go
package hal

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/mcp23017"

	"ringled-go/errcode"
)

// ExpanderBank drives the LEDs on port A of an MCP23017. Port B is left as
// inputs.
//
// Write never reports errors: output is infallible from the controller's
// point of view. Failed transfers are counted and the last one is kept for
// diagnostics.
type ExpanderBank struct {
	dev   *mcp23017.Device
	image uint8

	faults uint32
	last   error
}

func NewExpanderBank(bus drivers.I2C, addr uint8) (*ExpanderBank, error) {
	dev, err := mcp23017.NewI2C(bus, addr)
	if err != nil {
		return nil, errcode.Wrap(errcode.IOError, "mcp23017 probe", err)
	}
	modes := make([]mcp23017.PinMode, mcp23017.PinCount)
	for i := 0; i < BankWidth; i++ {
		modes[i] = mcp23017.Output
	}
	if err := dev.SetModes(modes); err != nil {
		return nil, errcode.Wrap(errcode.IOError, "mcp23017 modes", err)
	}
	b := &ExpanderBank{dev: dev}
	if err := dev.SetPins(0, portA); err != nil {
		return nil, errcode.Wrap(errcode.IOError, "mcp23017 clear", err)
	}
	return b, nil
}

const portA = mcp23017.Pins(0x00FF)

func (b *ExpanderBank) Write(mask uint8, level bool) {
	var pins mcp23017.Pins
	if level {
		pins = mcp23017.Pins(mask)
	}
	if err := b.dev.SetPins(pins, mcp23017.Pins(mask)); err != nil {
		b.faults++
		b.last = errcode.Wrap(errcode.IOError, "mcp23017 write", err)
		return
	}
	if level {
		b.image |= mask
	} else {
		b.image &^= mask
	}
}

func (b *ExpanderBank) Mask() uint8 { return b.image }

// Faults returns the number of failed writes and the most recent error.
func (b *ExpanderBank) Faults() (uint32, error) { return b.faults, b.last }
