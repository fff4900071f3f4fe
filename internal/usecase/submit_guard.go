package usecase

import "sync"

// SubmitGuard keeps one submission per key in flight. It is the server-side
// counterpart of a disabled submit button: a second identical submit that
// arrives while the first is still writing is refused, not queued.
type SubmitGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSubmitGuard() *SubmitGuard {
	return &SubmitGuard{inFlight: make(map[string]struct{})}
}

// Acquire marks key as submitting. It returns a release func and true, or
// false if the key is already submitting.
func (g *SubmitGuard) Acquire(key string) (func(), bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return nil, false
	}
	g.inFlight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, key)
			g.mu.Unlock()
		})
	}, true
}
