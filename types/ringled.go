package types

// ------------------------
// Ring/sweep telemetry payloads
// ------------------------

// RingAdvance is published after every confirmed press of the advance button.
type RingAdvance struct {
	Lit     uint8  `json:"lit"`     // index of the LED just lit
	Next    uint8  `json:"next"`    // ring position after the advance
	Mask    uint8  `json:"mask"`    // bank image after the write
	Presses uint32 `json:"presses"` // confirmed presses since boot
}

// SweepStep is published when the sweep lights one LED.
type SweepStep struct {
	Index uint8 `json:"index"`
}

// SweepDone is published once the sweep button has been released.
type SweepDone struct {
	Steps uint8 `json:"steps"`
}

// RingState is the retained controller snapshot.
type RingState struct {
	Position uint8  `json:"position"`
	Presses  uint32 `json:"presses"`
	Sweeps   uint32 `json:"sweeps"`
}
