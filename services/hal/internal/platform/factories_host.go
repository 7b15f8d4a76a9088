// services/hal/internal/platform/factories_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"io"
	"os"
	"time"

	"ringled-go/services/hal/internal/halcore"
	"ringled-go/services/hal/sim"

	"tinygo.org/x/drivers"
)

// Host builds run on the simulated board: pins idle high, the clock only
// moves when pins are sampled or Sleep is called.
var hostBoard = sim.NewBoard(0, 28)

func DefaultPinFactory() halcore.PinFactory { return hostBoard }

func DefaultClock() halcore.Clock { return hostBoard.Clock() }

// DefaultI2CFactory creates host I²C buses "i2c0" and "i2c1" with an
// expander register file at each default MCP23017 address.
func DefaultI2CFactory() halcore.I2CBusFactory {
	return &hostI2CFactory{
		buses: map[string]drivers.I2C{
			"i2c0": sim.NewI2C(0x20, 0x21),
			"i2c1": sim.NewI2C(0x20, 0x21),
		},
	}
}

type hostI2CFactory struct {
	buses map[string]drivers.I2C
}

func (f *hostI2CFactory) ByID(id string) (drivers.I2C, bool) {
	b, ok := f.buses[id]
	return b, ok
}

func DefaultConsole() io.Writer { return os.Stdout }

// Halt parks the process. There are no interrupts to mask on the host, and
// an empty select would trip the deadlock detector when nothing else runs.
func Halt() {
	println("[hal] halted")
	for {
		time.Sleep(time.Hour)
	}
}
