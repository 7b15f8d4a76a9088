// services/hal/internal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"io"
	"machine"
	"runtime/interrupt"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"

	"ringled-go/services/hal/internal/halcore"
	"ringled-go/x/timex"
)

// -----------------------------------------------------------------------------
// Defaults used by hal.Bringup on Raspberry Pi Pico / Pico 2 (RP2 family)
// -----------------------------------------------------------------------------

// DefaultPinFactory maps logical numbers directly to machine.Pin(n). This
// matches Pico/Pico 2 GP numbering.
func DefaultPinFactory() halcore.PinFactory { return rp2PinFactory{} }

var boot = time.Now()

// DefaultClock counts milliseconds since boot.
func DefaultClock() halcore.Clock { return rp2Clock{} }

// DefaultI2CFactory hands out i2c0 at 400 kHz on board-default pins (GP4/GP5).
// The bus is configured on first use, so GPIO-bank setups leave those pins alone.
func DefaultI2CFactory() halcore.I2CBusFactory {
	return &rp2I2CFactory{buses: make(map[string]drivers.I2C)}
}

// DefaultConsole mirrors log lines onto UART0 (TX=GP0, RX=GP1) at 115200.
// If the UART cannot be configured, lines go to the USB console only.
func DefaultConsole() io.Writer {
	u := uartx.UART0
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(ConsoleTX),
		RX:       machine.Pin(ConsoleRX),
	}); err != nil {
		println("[hal] uart0 configure failed:", err.Error())
		return usbConsole{}
	}
	return teeConsole{u: u}
}

// Halt masks interrupts and idles forever.
func Halt() {
	println("[hal] halted")
	interrupt.Disable()
	for {
	}
}

// ---- clock ----

type rp2Clock struct{}

func (rp2Clock) NowMs() uint32   { return uint32(time.Since(boot).Milliseconds()) }
func (rp2Clock) Sleep(ms uint32) { time.Sleep(timex.Ms(ms)) }

// ---- I²C ----

type rp2I2CFactory struct {
	buses map[string]drivers.I2C
}

func (f *rp2I2CFactory) ByID(id string) (drivers.I2C, bool) {
	if b, ok := f.buses[id]; ok {
		return b, true
	}
	if id != "i2c0" {
		return nil, false
	}
	b0 := machine.I2C0
	if err := b0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	}); err != nil {
		println("[hal] i2c0 configure failed:", err.Error())
		return nil, false
	}
	f.buses[id] = b0
	return b0, true
}

// ---- GPIO ----

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	// Constrain to RP2’s user GPIOs (GP0..GP28).
	if n < 0 || n > 28 {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull halcore.Pull) error {
	var mode machine.PinMode
	switch pull {
	case halcore.PullUp:
		mode = machine.PinInputPullup
	case halcore.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Number() int    { return r.n }

// ---- console ----

type usbConsole struct{}

func (usbConsole) Write(b []byte) (int, error) {
	print(string(b))
	return len(b), nil
}

type teeConsole struct{ u *uartx.UART }

func (c teeConsole) Write(b []byte) (int, error) {
	print(string(b))
	return c.u.Write(b)
}
