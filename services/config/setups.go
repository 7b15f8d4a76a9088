package config

import "ringled-go/types"

// Names of the built-in setups.
const (
	SetupPicoDefault  = "pico_default"
	SetupPicoExpander = "pico_expander"
)

// Buttons on GP2/GP3, LEDs on GP6..GP13.
var picoDefault = types.BoardConfig{
	Name:       SetupPicoDefault,
	AdvancePin: 2,
	SweepPin:   3,
	Bank:       types.BankGPIO,
	LEDPins:    [8]int{6, 7, 8, 9, 10, 11, 12, 13},
	DebounceMs: 50,
	HoldMs:     500,
	HeartbeatS: 2,
}

// Same buttons, LEDs on port A of an MCP23017 at 0x20 on i2c0 (GP4/GP5).
var picoExpander = types.BoardConfig{
	Name:         SetupPicoExpander,
	AdvancePin:   2,
	SweepPin:     3,
	Bank:         types.BankMCP23017,
	I2C:          "i2c0",
	ExpanderAddr: 0x20,
	DebounceMs:   50,
	HoldMs:       500,
	HeartbeatS:   2,
}

var setups = map[string]types.BoardConfig{
	SetupPicoDefault:  picoDefault,
	SetupPicoExpander: picoExpander,
}

// Lookup returns a copy of the named setup.
func Lookup(name string) (types.BoardConfig, bool) {
	c, ok := setups[name]
	return c, ok
}

// Default returns the setup selected at build time.
func Default() types.BoardConfig {
	c, _ := Lookup(Selected)
	return c
}
