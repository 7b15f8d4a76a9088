//go:build rp2040 || rp2350

// Command boardtest checks the wiring of a board before the ring firmware
// goes on it: each LED lights once in order, then both button levels are
// echoed whenever they change.
package main

import (
	"time"

	"ringled-go/services/config"
	"ringled-go/services/hal"
	"ringled-go/x/conv"
)

const (
	ledOn     = 300 * time.Millisecond
	echoFor   = 10 * time.Second
	echoEvery = 20 * time.Millisecond
)

func main() {
	time.Sleep(2 * time.Second)
	cfg := config.Default()
	println("[boardtest] setup=" + cfg.Name)

	if err := config.Validate(cfg); err != nil {
		println("[boardtest] config:", err.Error())
		hal.Halt()
	}
	board, err := hal.Bringup(cfg)
	if err != nil {
		println("[boardtest] bring-up:", err.Error())
		hal.Halt()
	}

	for i := 0; i < hal.BankWidth; i++ {
		println("[boardtest] led", i)
		board.Bank.Write(1<<uint(i), true)
		time.Sleep(ledOn)
		board.Bank.Write(1<<uint(i), false)
	}

	println("[boardtest] press buttons (advance idles 1, sweep idles 0)")
	var last [2]bool
	first := true
	deadline := time.Now().Add(echoFor)
	for time.Now().Before(deadline) {
		now := [2]bool{board.Advance.Get(), board.Sweep.Get()}
		if first || now != last {
			println(string(levels(now)))
			last, first = now, false
		}
		time.Sleep(echoEvery)
	}
	println("[boardtest] done")
}

func levels(l [2]bool) []byte {
	b := append([]byte(nil), "[boardtest] advance="...)
	b = conv.AppendUint(b, b2u(l[0]))
	b = append(b, " sweep="...)
	return conv.AppendUint(b, b2u(l[1]))
}

func b2u(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}
