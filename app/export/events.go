package export

import (
	"sort"
	"sync"
)

// ChannelName identifies the progress event stream exposed by the Service.
const ChannelName = "excel-export-progress"

// ProgressType classifies a progress event for display purposes.
type ProgressType string

const (
	TypeInfo    ProgressType = "info"
	TypeSuccess ProgressType = "success"
	TypeWarning ProgressType = "warning"
	TypeError   ProgressType = "error"
)

// ProgressEvent is a single status message emitted during a conversion.
type ProgressEvent struct {
	Message string       `json:"message"`
	Type    ProgressType `json:"type"`
}

// ProgressHandler receives progress events. Handlers are invoked synchronously
// on the emitting goroutine, in the order events are emitted.
type ProgressHandler func(ProgressEvent)

// Broadcaster fans progress events out to any number of subscribers.
// Delivery order matches emission order per subscription.
type Broadcaster struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]ProgressHandler
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		handlers: make(map[int]ProgressHandler),
	}
}

// Subscribe registers a handler and returns a disposer that removes it.
// Calling the disposer more than once is a no-op. After disposal the handler
// is guaranteed to receive no further events.
func (b *Broadcaster) Subscribe(handler ProgressHandler) (dispose func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// SubscriberCount returns the number of active subscriptions.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// Emit delivers an event to every subscriber. Subscribers are invoked in
// registration order while the lock is held, which keeps delivery FIFO even
// when multiple goroutines emit concurrently.
func (b *Broadcaster) Emit(event ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		b.handlers[id](event)
	}
}
