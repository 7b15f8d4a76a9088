// services/hal/bank.go
package hal

// GPIOBank drives eight push-pull outputs; bit i maps to pins[i].
type GPIOBank struct {
	pins  [BankWidth]Pin
	image uint8
}

func NewGPIOBank(pins [BankWidth]Pin) *GPIOBank {
	return &GPIOBank{pins: pins}
}

// Write sets or clears every pin whose bit is set in mask. Pins are written
// one at a time, lowest bit first.
func (b *GPIOBank) Write(mask uint8, level bool) {
	for i := 0; i < BankWidth; i++ {
		if mask&(1<<i) == 0 || b.pins[i] == nil {
			continue
		}
		b.pins[i].Set(level)
	}
	if level {
		b.image |= mask
	} else {
		b.image &^= mask
	}
}

func (b *GPIOBank) Mask() uint8 { return b.image }
