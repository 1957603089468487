package progress

import "sync"

const subscriberBuffer = 8

// ActivityBroker fans completion events out to feed subscribers (the
// websocket activity stream). Publish never blocks: a subscriber that
// cannot keep up loses the event.
type ActivityBroker struct {
	mu   sync.Mutex
	subs map[int]chan ActivityEntry
	next int
}

// NewActivityBroker create an ActivityBroker instance
func NewActivityBroker() *ActivityBroker {
	return &ActivityBroker{
		subs: make(map[int]chan ActivityEntry),
	}
}

// Subscribe register a feed listener, the returned cancel function must be
// called when the listener goes away
func (b *ActivityBroker) Subscribe() (<-chan ActivityEntry, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan ActivityEntry, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish deliver an entry to every subscriber
func (b *ActivityBroker) Publish(entry ActivityEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- entry:
		default:
		}
	}
}
