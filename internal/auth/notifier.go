package auth

import "sync"

// Notifier delivers session-change events to subscribers. A nil session
// means signed out. Each Notify call delivers at most once per subscriber,
// and an unsubscribed callback is never invoked again.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func(*Session)
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(*Session))}
}

// Subscribe registers a callback and returns its unsubscribe function.
// Unsubscribe is idempotent and must be called on consumer teardown.
func (n *Notifier) Subscribe(fn func(*Session)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *Notifier) Notify(session *Session) {
	n.mu.Lock()
	fns := make([]func(*Session), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(session)
	}
}
