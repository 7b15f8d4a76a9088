package hal

import (
	"testing"

	"ringled-go/services/hal/sim"
)

func TestGPIOBankWritesOnlyMaskedPins(t *testing.T) {
	board := sim.NewBoard(0, 28)
	var pins [BankWidth]Pin
	for i := range pins {
		p := board.Pin(6 + i)
		_ = p.ConfigureOutput(false)
		pins[i] = p
	}
	b := NewGPIOBank(pins)

	b.Write(0b0000_0101, true)
	if b.Mask() != 0x05 {
		t.Fatalf("mask = %#02x, want 0x05", b.Mask())
	}
	if !board.Pin(6).Level() || board.Pin(7).Level() || !board.Pin(8).Level() {
		t.Fatal("pin levels do not follow the mask")
	}

	b.Write(0x01, false)
	if b.Mask() != 0x04 || board.Pin(6).Level() || !board.Pin(8).Level() {
		t.Fatalf("clear touched the wrong pins: mask=%#02x", b.Mask())
	}

	b.Write(0xFF, false)
	for i := 0; i < BankWidth; i++ {
		if board.Pin(6 + i).Level() {
			t.Fatalf("led%d still on after clear-all", i)
		}
	}
}
