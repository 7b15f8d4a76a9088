package types

// LED bank backends.
const (
	BankGPIO     = "gpio"     // eight push-pull outputs on the MCU
	BankMCP23017 = "mcp23017" // port A of an MCP23017 on I2C
)

// BoardConfig is the compile-time wiring of one board.
// Pin numbers are plain GPIO numbers; mapping to machine.Pin happens in the
// platform layer.
type BoardConfig struct {
	Name string `json:"name"`

	AdvancePin int `json:"advance_pin"` // active-low ring advance button
	SweepPin   int `json:"sweep_pin"`   // active-high sweep button

	Bank         string `json:"bank"`                    // BankGPIO or BankMCP23017
	LEDPins      [8]int `json:"led_pins,omitempty"`      // bit i -> LEDPins[i] (gpio bank)
	I2C          string `json:"i2c,omitempty"`           // bus id (expander bank)
	ExpanderAddr uint8  `json:"expander_addr,omitempty"` // 7-bit address (expander bank)

	DebounceMs uint32 `json:"debounce_ms"`
	HoldMs     uint32 `json:"hold_ms"`

	HeartbeatS uint32 `json:"heartbeat_s,omitempty"` // 0 disables the status line
}
