// Package notify fans out payload-free "data changed" signals to every
// subscribed context. Delivery is best-effort, unordered and
// fire-and-forget: there is no acknowledgment and no retry.
package notify

import "sync"

// Notifier is the pub/sub contract shared by the in-process broker and the
// Redis-backed cross-process broadcaster.
type Notifier interface {
	// NotifyChange broadcasts a change signal to all subscribers.
	NotifyChange()
	// Subscribe registers fn and returns a disposer that deregisters it.
	Subscribe(fn func()) (unsubscribe func())
	Close() error
}

// Broker is the in-process Notifier used for single-process deployments
// and tests. Callbacks run on their own goroutines; a slow subscriber
// never blocks the writer.
type Broker struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[int]func())}
}

func (b *Broker) NotifyChange() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		go fn()
	}
}

func (b *Broker) Subscribe(fn func()) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *Broker) Close() error { return nil }
