package export_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jiaqi-wen/excel-i18n-tool/app/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventRecorder collects events for later assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []export.ProgressEvent
}

func (r *eventRecorder) record(event export.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) all() []export.ProgressEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]export.ProgressEvent, len(r.events))
	copy(events, r.events)
	return events
}

func (r *eventRecorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	messages := make([]string, len(r.events))
	for i, event := range r.events {
		messages[i] = event.Message
	}
	return messages
}

func (r *eventRecorder) byType(t export.ProgressType) []export.ProgressEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var filtered []export.ProgressEvent
	for _, event := range r.events {
		if event.Type == t {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

func TestBroadcasterDeliversInOrder(t *testing.T) {
	b := export.NewBroadcaster()
	recorder := &eventRecorder{}
	dispose := b.Subscribe(recorder.record)
	defer dispose()

	for i := 0; i < 10; i++ {
		b.Emit(export.ProgressEvent{Message: fmt.Sprintf("event-%d", i), Type: export.TypeInfo})
	}

	messages := recorder.messages()
	require.Len(t, messages, 10)
	for i, msg := range messages {
		assert.Equal(t, fmt.Sprintf("event-%d", i), msg)
	}
}

func TestBroadcasterDisposerStopsDelivery(t *testing.T) {
	b := export.NewBroadcaster()
	recorder := &eventRecorder{}
	dispose := b.Subscribe(recorder.record)

	b.Emit(export.ProgressEvent{Message: "before", Type: export.TypeInfo})
	dispose()
	b.Emit(export.ProgressEvent{Message: "after", Type: export.TypeInfo})

	assert.Equal(t, []string{"before"}, recorder.messages())
	assert.Equal(t, 0, b.SubscriberCount())
}

func TestBroadcasterDisposerIsIdempotent(t *testing.T) {
	b := export.NewBroadcaster()
	first := b.Subscribe(func(export.ProgressEvent) {})
	second := b.Subscribe(func(export.ProgressEvent) {})
	require.Equal(t, 2, b.SubscriberCount())

	first()
	first()
	assert.Equal(t, 1, b.SubscriberCount())
	second()
	assert.Equal(t, 0, b.SubscriberCount())
}

func TestBroadcasterIndependentSubscribers(t *testing.T) {
	b := export.NewBroadcaster()
	first := &eventRecorder{}
	second := &eventRecorder{}
	disposeFirst := b.Subscribe(first.record)
	defer b.Subscribe(second.record)()

	b.Emit(export.ProgressEvent{Message: "one", Type: export.TypeInfo})
	disposeFirst()
	b.Emit(export.ProgressEvent{Message: "two", Type: export.TypeSuccess})

	assert.Equal(t, []string{"one"}, first.messages())
	assert.Equal(t, []string{"one", "two"}, second.messages())
}

func TestBroadcasterEmitWithoutSubscribers(t *testing.T) {
	b := export.NewBroadcaster()
	// Must not panic or block.
	b.Emit(export.ProgressEvent{Message: "ignored", Type: export.TypeWarning})
	assert.Equal(t, 0, b.SubscriberCount())
}
