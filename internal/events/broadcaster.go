// Package events provides a small multiple-consumer, single-producer
// broadcast channel used for the engine's status and progress streams:
// connectivity changes, sync status transitions, and download progress.
package events

import "sync"

const defaultBuffer = 16

// Broadcaster fans values out to every active subscriber. Publishing never
// blocks: a subscriber that has fallen defaultBuffer values behind misses
// the oldest ones. Status streams carry current-state snapshots, so a
// dropped intermediate value is acceptable.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	subs   map[int]chan T
	nextID int
	closed bool
}

func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{subs: make(map[int]chan T)}
}

// Subscribe registers a new consumer and returns its receive channel plus a
// cancel function. Cancel is idempotent and closes the channel.
func (b *Broadcaster[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan T)
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	ch := make(chan T, defaultBuffer)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

// Publish delivers v to every subscriber that has buffer room.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for _, ch := range b.subs {
		select {
		case ch <- v:
		default:
		}
	}
}

// Close terminates all subscriber channels. Further Publish calls are no-ops
// and further Subscribe calls return an already-closed channel.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
