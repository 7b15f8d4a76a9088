//go:build rp2040 || rp2350

// Command selftest runs the bus checks on the target, where scheduling and
// channel behaviour differ from the host.
package main

import (
	"time"

	"ringled-go/bus"
)

const wait = 100 * time.Millisecond

type check struct {
	name string
	fn   func() string // "" on success
}

func main() {
	time.Sleep(2 * time.Second)
	println("[selftest] bus")

	checks := []check{
		{"basic", basic},
		{"retained", retained},
		{"wildcards", wildcards},
		{"retained_clear", retainedClear},
		{"drop_oldest", dropOldest},
		{"disconnect", disconnect},
	}
	failed := 0
	for _, c := range checks {
		if why := c.fn(); why != "" {
			println("[selftest] FAIL", c.name+":", why)
			failed++
			continue
		}
		println("[selftest] ok  ", c.name)
	}
	println("[selftest] done, failures:", failed)
	for {
		time.Sleep(time.Hour)
	}
}

func expect(sub *bus.Subscription, want string) string {
	select {
	case m := <-sub.Channel():
		if s, _ := m.Payload.(string); s != want {
			return "unexpected payload"
		}
		return ""
	case <-time.After(wait):
		return "timeout waiting for " + want
	}
}

func expectNone(sub *bus.Subscription) string {
	select {
	case <-sub.Channel():
		return "unexpected message"
	case <-time.After(wait / 4):
		return ""
	}
}

func basic() string {
	b := bus.NewBus(4)
	c := b.NewConnection("t")
	s := c.Subscribe(bus.T("ringled", "ring", "advance"))
	c.Publish(b.NewMessage(bus.T("ringled", "ring", "advance"), "p", false))
	return expect(s, "p")
}

func retained() string {
	b := bus.NewBus(4)
	c := b.NewConnection("t")
	c.Publish(b.NewMessage(bus.T("ringled", "state"), "snap", true))
	return expect(c.Subscribe(bus.T("ringled", "#")), "snap")
}

func wildcards() string {
	b := bus.NewBus(4)
	c := b.NewConnection("t")
	plus := c.Subscribe(bus.T("ringled", "sweep", "+"))
	hash := c.Subscribe(bus.T("ringled", "#"))
	c.Publish(b.NewMessage(bus.T("ringled", "ring", "advance"), "a", false))
	if why := expect(hash, "a"); why != "" {
		return why
	}
	if why := expectNone(plus); why != "" {
		return why
	}
	c.Publish(b.NewMessage(bus.T("ringled", "sweep", "step"), "s", false))
	if why := expect(plus, "s"); why != "" {
		return why
	}
	return expect(hash, "s")
}

func retainedClear() string {
	b := bus.NewBus(4)
	c := b.NewConnection("t")
	c.Publish(b.NewMessage(bus.T("hal", "state"), "ready", true))
	c.Publish(b.NewMessage(bus.T("hal", "state"), nil, true))
	return expectNone(c.Subscribe(bus.T("hal", "state")))
}

func dropOldest() string {
	b := bus.NewBus(2)
	c := b.NewConnection("t")
	s := c.Subscribe(bus.T("q"))
	for _, p := range []string{"1", "2", "3"} {
		c.Publish(b.NewMessage(bus.T("q"), p, false))
	}
	if why := expect(s, "2"); why != "" {
		return why
	}
	return expect(s, "3")
}

func disconnect() string {
	b := bus.NewBus(2)
	c := b.NewConnection("t")
	s := c.Subscribe(bus.T("x"))
	c.Disconnect()
	if _, ok := <-s.Channel(); ok {
		return "channel still open"
	}
	return ""
}
