// services/hal/types.go
package hal

import "ringled-go/services/hal/internal/halcore"

// Aliases so callers outside services/hal never import halcore.
type (
	Pin           = halcore.GPIOPin
	Pull          = halcore.Pull
	PinFactory    = halcore.PinFactory
	I2CBusFactory = halcore.I2CBusFactory
	LEDBank       = halcore.LEDBank
	Clock         = halcore.Clock
)

const (
	PullNone = halcore.PullNone
	PullUp   = halcore.PullUp
	PullDown = halcore.PullDown
)

// BankWidth is the number of outputs in an LED bank.
const BankWidth = 8
