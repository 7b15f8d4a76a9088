// services/hal/registry.go
package hal

import (
	"sync"

	"ringled-go/errcode"
)

// Registry hands out pins with single ownership.
type Registry struct {
	pins PinFactory

	mu     sync.Mutex
	owners map[int]string // pin -> devID
}

func NewRegistry(pins PinFactory) *Registry {
	return &Registry{pins: pins, owners: map[int]string{}}
}

// ClaimPin reserves pin n for devID. Claiming a pin already held by the same
// devID returns it again.
func (r *Registry) ClaimPin(devID string, n int) (Pin, error) {
	p, ok := r.pins.ByNumber(n)
	if !ok {
		return nil, errcode.UnknownPin
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, held := r.owners[n]; held && owner != devID {
		return nil, errcode.PinInUse
	}
	r.owners[n] = devID
	return p, nil
}

// ReleasePin frees pin n if devID holds it.
func (r *Registry) ReleasePin(devID string, n int) {
	r.mu.Lock()
	if r.owners[n] == devID {
		delete(r.owners, n)
	}
	r.mu.Unlock()
}

// Owner reports which device holds pin n.
func (r *Registry) Owner(n int) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.owners[n]
	return id, ok
}
