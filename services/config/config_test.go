// services/config/config_test.go
package config

import (
	"testing"
	"time"

	"ringled-go/bus"
	"ringled-go/errcode"
	"ringled-go/types"
)

func TestSetups_AreValid(t *testing.T) {
	for name := range setups {
		c, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) missing", name)
		}
		if c.Name != name {
			t.Fatalf("setup %q carries name %q", name, c.Name)
		}
		if err := Validate(c); err != nil {
			t.Fatalf("setup %q invalid: %v", name, err)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("unknown setup resolved")
	}
}

func TestDefault_PicoWiring(t *testing.T) {
	c, _ := Lookup(SetupPicoDefault)
	if c.AdvancePin != 2 || c.SweepPin != 3 {
		t.Fatalf("buttons = %d/%d", c.AdvancePin, c.SweepPin)
	}
	if c.LEDPins != [8]int{6, 7, 8, 9, 10, 11, 12, 13} {
		t.Fatalf("leds = %v", c.LEDPins)
	}
	if c.DebounceMs != 50 || c.HoldMs != 500 {
		t.Fatalf("timings = %d/%d", c.DebounceMs, c.HoldMs)
	}
	if Default().Name != Selected {
		t.Fatalf("Default() = %q, want %q", Default().Name, Selected)
	}
}

func TestValidate_Rejects(t *testing.T) {
	base, _ := Lookup(SetupPicoDefault)
	exp, _ := Lookup(SetupPicoExpander)

	cases := map[string]func() types.BoardConfig{
		"advance out of range": func() types.BoardConfig { c := base; c.AdvancePin = 29; return c },
		"negative sweep":       func() types.BoardConfig { c := base; c.SweepPin = -1; return c },
		"buttons share pin":    func() types.BoardConfig { c := base; c.SweepPin = c.AdvancePin; return c },
		"led on button":        func() types.BoardConfig { c := base; c.LEDPins[4] = c.SweepPin; return c },
		"duplicate led":        func() types.BoardConfig { c := base; c.LEDPins[7] = c.LEDPins[0]; return c },
		"zero debounce":        func() types.BoardConfig { c := base; c.DebounceMs = 0; return c },
		"zero hold":            func() types.BoardConfig { c := base; c.HoldMs = 0; return c },
		"led on console":       func() types.BoardConfig { c := base; c.LEDPins[0] = 0; return c },
		"button on console":    func() types.BoardConfig { c := base; c.AdvancePin = 1; return c },
		"button on i2c0":       func() types.BoardConfig { c := exp; c.SweepPin = 4; return c },
		"unknown bank":         func() types.BoardConfig { c := base; c.Bank = "shift"; return c },
		"expander no bus":      func() types.BoardConfig { c := exp; c.I2C = ""; return c },
		"expander bad addr":    func() types.BoardConfig { c := exp; c.ExpanderAddr = 0x40; return c },
	}
	for name, mk := range cases {
		err := Validate(mk())
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if errcode.Of(err) != errcode.InvalidParams {
			t.Fatalf("%s: code = %v, want invalid_params (%v)", name, errcode.Of(err), err)
		}
	}
}

func TestValidate_MessageNamesField(t *testing.T) {
	c, _ := Lookup(SetupPicoDefault)
	c.LEDPins[2] = 40
	err := Validate(c)
	if err == nil || err.Error() != "invalid_params [led_pins[2]]: out of range 40" {
		t.Fatalf("got %v", err)
	}
}

func TestService_PublishesRetained(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test-config")

	cfg, _ := Lookup(SetupPicoDefault)
	if err := NewService(cfg).Publish(conn); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	// Retained messages arrive on subscription.
	sub := conn.Subscribe(bus.T(configPrefix, "#"))
	got := map[string]any{}
	deadline := time.After(300 * time.Millisecond)
	for len(got) < 2 {
		select {
		case m := <-sub.Channel():
			got[m.Topic[1]] = m.Payload
		case <-deadline:
			t.Fatalf("timeout, got %v", got)
		}
	}
	if bc, ok := got["board"].(types.BoardConfig); !ok || bc.Name != SetupPicoDefault {
		t.Fatalf("board payload = %#v", got["board"])
	}
	if hb, ok := got["heartbeat"].(uint32); !ok || hb != 2 {
		t.Fatalf("heartbeat payload = %#v", got["heartbeat"])
	}
}

func TestService_InvalidPublishesNothing(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test-config")

	cfg, _ := Lookup(SetupPicoDefault)
	cfg.HoldMs = 0
	if err := NewService(cfg).Publish(conn); err == nil {
		t.Fatal("expected error")
	}
	sub := conn.Subscribe(bus.T(configPrefix, "#"))
	select {
	case m := <-sub.Channel():
		t.Fatalf("unexpected retained %v", m.Topic)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestValidate_ReservedButtonsReportInFieldOrder(t *testing.T) {
	c, _ := Lookup(SetupPicoDefault)
	c.AdvancePin, c.SweepPin = 0, 1
	for i := 0; i < 20; i++ {
		err := Validate(c)
		if err == nil || err.Error() != "invalid_params [advance_pin]: reserved for console" {
			t.Fatalf("run %d: got %v", i, err)
		}
	}
}
