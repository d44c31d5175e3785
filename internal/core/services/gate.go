package services

import "sync"

// opGate serializes mutating engine operations. A mutating call holds the
// gate from validation through commit, so no later caller can observe a
// partially applied operation. Read-only paths skip the gate; the store's
// own locking keeps them tear-free.
type opGate struct {
	mu sync.Mutex
}

func newOpGate() *opGate {
	return &opGate{}
}

func (g *opGate) run(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}
