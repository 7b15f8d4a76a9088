package main

import (
	"context"
	"time"

	"ringled-go/bus"
	"ringled-go/services/config"
	"ringled-go/services/hal"
	"ringled-go/services/heartbeat"
	"ringled-go/services/ringled"
	"ringled-go/services/telemetry"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot ringled setup=" + config.Selected)

	ctx := context.Background()
	b := bus.NewBus(8)
	sys := b.NewConnection("system")

	cfg := config.Default()
	if err := config.NewService(cfg).Publish(sys); err != nil {
		println("[main] config:", err.Error())
		hal.Halt()
	}

	board, err := hal.Bringup(cfg)
	if err != nil {
		println("[main] bring-up:", err.Error())
		hal.PublishFailure(sys, cfg, err)
		hal.Halt()
	}
	hal.PublishState(sys, board)

	out := hal.Console()
	telemetry.NewConsole(out).Start(ctx, b.NewConnection("console"))
	heartbeat.New(out).Start(ctx, b.NewConnection("heartbeat"))

	pub := telemetry.NewPublisher(b.NewConnection("ringled"))
	opts := []ringled.Option{
		ringled.WithDebounce(cfg.DebounceMs),
		ringled.WithHold(cfg.HoldMs),
		ringled.WithEmitter(pub),
	}
	ctrl := ringled.New(board.Advance, board.Bank, board.Clock, opts...)
	sweep := ringled.NewSweep(board.Sweep, board.Bank, board.Clock, opts...)

	println("[main] ready")
	_ = ringled.Run(ctx, sweep, ctrl)
}
