package types

// ------------------------
// HAL state (retained)
// ------------------------

// HAL levels.
const (
	HALReady  = "ready"
	HALFailed = "failed"
)

type HALState struct {
	Level  string `json:"level"`            // HALReady or HALFailed
	Setup  string `json:"setup"`            // BoardConfig.Name
	Bank   string `json:"bank"`             // BankGPIO or BankMCP23017
	Faults uint32 `json:"faults,omitempty"` // failed bank writes
	Error  string `json:"error,omitempty"`  // machine-readable short code
}
