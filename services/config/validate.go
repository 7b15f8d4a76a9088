package config

import (
	"ringled-go/errcode"
	"ringled-go/types"
	"ringled-go/x/conv"
)

// User GPIOs on RP2040/RP2350.
const (
	minPin = 0
	maxPin = 28
)

// Pins owned by the platform: the console UART always, the i2c0 bus when the
// bank sits on the expander.
var (
	consolePins = [...]int{0, 1}
	i2c0Pins    = [...]int{4, 5}
)

// Validate rejects configurations bring-up could not honour.
func Validate(c types.BoardConfig) error {
	if err := checkPin("advance_pin", c.AdvancePin); err != nil {
		return err
	}
	if err := checkPin("sweep_pin", c.SweepPin); err != nil {
		return err
	}
	if c.AdvancePin == c.SweepPin {
		return invalid("sweep_pin", "same pin as advance")
	}
	if c.DebounceMs == 0 {
		return invalid("debounce_ms", "must be > 0")
	}
	if c.HoldMs == 0 {
		return invalid("hold_ms", "must be > 0")
	}

	reserved := map[int]string{}
	for _, n := range consolePins {
		reserved[n] = "console"
	}
	if c.Bank == types.BankMCP23017 && c.I2C == "i2c0" {
		for _, n := range i2c0Pins {
			reserved[n] = "i2c0"
		}
	}
	buttons := [...]struct {
		field string
		pin   int
	}{{"advance_pin", c.AdvancePin}, {"sweep_pin", c.SweepPin}}
	for _, btn := range buttons {
		if owner, ok := reserved[btn.pin]; ok {
			return invalid(btn.field, "reserved for "+owner)
		}
	}

	switch c.Bank {
	case types.BankGPIO, "":
		used := map[int]bool{c.AdvancePin: true, c.SweepPin: true}
		for i, n := range c.LEDPins {
			field := "led_pins[" + string(conv.AppendUint(nil, uint64(i))) + "]"
			if err := checkPin(field, n); err != nil {
				return err
			}
			if used[n] {
				return invalid(field, "pin already used")
			}
			if owner, ok := reserved[n]; ok {
				return invalid(field, "reserved for "+owner)
			}
			used[n] = true
		}
	case types.BankMCP23017:
		if c.I2C == "" {
			return invalid("i2c", "bus required for expander bank")
		}
		if c.ExpanderAddr < 0x20 || c.ExpanderAddr > 0x27 {
			return invalid("expander_addr", string(conv.AppendHex8(nil, c.ExpanderAddr)))
		}
	default:
		return invalid("bank", c.Bank)
	}
	return nil
}

func checkPin(field string, n int) error {
	if n < minPin || n > maxPin {
		return invalid(field, "out of range "+string(conv.AppendInt(nil, int64(n))))
	}
	return nil
}

func invalid(op, msg string) error {
	return &errcode.E{C: errcode.InvalidParams, Op: op, Msg: msg}
}
