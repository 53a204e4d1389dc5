package network

import (
	"ethereplodor-server/pkg/api"
	"sync"
)

// subscriberBuffer snapshots per subscriber before new ones get dropped.
const subscriberBuffer = 16

// Broadcaster fans snapshots out to subscribers (websocket clients, the autopilot).
// A slow subscriber misses snapshots instead of stalling the loop.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan api.Snapshot
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Snapshot),
	}
}

// Register opens a channel for id, closing the previous one if any.
func (b *Broadcaster) Register(id string) <-chan api.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.Snapshot, subscriberBuffer)
	b.subscribers[id] = ch
	return ch
}

// Unregister closes and forgets the subscriber.
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// SendTo delivers to one subscriber, dropping when its buffer is full.
func (b *Broadcaster) SendTo(id string, snap api.Snapshot) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ch, ok := b.subscribers[id]
	if !ok {
		return false
	}
	select {
	case ch <- snap:
		return true
	default:
		return false
	}
}

// Broadcast delivers to everyone.
func (b *Broadcaster) Broadcast(snap api.Snapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount returns the number of active subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
