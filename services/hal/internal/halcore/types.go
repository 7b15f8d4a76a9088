// services/hal/internal/halcore/types.go
package halcore

import "tinygo.org/x/drivers"

// ---- GPIO ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func PullToString(p Pull) string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}

// GPIOPin is a single digital pin. Set/Get are infallible once configured.
type GPIOPin interface {
	Number() int
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
}

// PinFactory maps logical pin numbers to pins.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// I2CBusFactory returns configured I2C buses by id ("i2c0", "i2c1").
type I2CBusFactory interface {
	ByID(id string) (drivers.I2C, bool)
}

// ---- Outputs ----

// LEDBank is an 8-bit output bank. Write drives every bit set in mask to
// level and leaves the others untouched.
type LEDBank interface {
	Write(mask uint8, level bool)
	Mask() uint8
}

// ---- Time ----

// Clock is a monotonic millisecond clock with a blocking delay.
type Clock interface {
	NowMs() uint32
	Sleep(ms uint32)
}
