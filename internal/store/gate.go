package store

import "sync"

// Gate marks a visitor's form submission as in flight. While held, a second
// submission of the same form by the same visitor is refused.
type Gate struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func NewGate() *Gate {
	return &Gate{busy: map[string]struct{}{}}
}

// TryAcquire returns a release func and true when the slot was free. The
// release func must be called exactly once, whatever the outcome.
func (g *Gate) TryAcquire(visitorID, form string) (func(), bool) {
	key := visitorID + "/" + form
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, held := g.busy[key]; held {
		return nil, false
	}
	g.busy[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.busy, key)
			g.mu.Unlock()
		})
	}, true
}

// InFlight reports whether the form is currently being submitted.
func (g *Gate) InFlight(visitorID, form string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, held := g.busy[visitorID+"/"+form]
	return held
}
