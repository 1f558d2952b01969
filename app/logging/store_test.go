package logging

import (
	"testing"
	"time"
)

func entry(level LogLevel, message string) LogEntry {
	return LogEntry{Timestamp: time.Now(), Level: level, Message: message}
}

func TestLogStoreAddAndGetAll(t *testing.T) {
	store := newLogStore()
	store.Add(entry(LevelInfo, "first"))
	store.Add(entry(LevelError, "second"))

	entries := store.GetAll()
	if len(entries) != 2 {
		t.Fatalf("GetAll() returned %d entries, want 2", len(entries))
	}
	if entries[0].Message != "first" || entries[1].Message != "second" {
		t.Errorf("entries out of order: %q, %q", entries[0].Message, entries[1].Message)
	}

	// The returned slice is a copy; mutating it must not affect the store.
	entries[0].Message = "mutated"
	if store.GetAll()[0].Message != "first" {
		t.Error("GetAll() did not return a copy")
	}
}

func TestLogStoreClearIsIdempotent(t *testing.T) {
	store := newLogStore()
	store.Clear() // Clearing an empty store is a no-op.
	if store.Len() != 0 {
		t.Fatalf("Len() = %d after clearing empty store", store.Len())
	}

	store.Add(entry(LevelWarn, "something"))
	store.Clear()
	if store.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", store.Len())
	}
	store.Clear()
	if store.Len() != 0 {
		t.Errorf("Len() = %d after double Clear, want 0", store.Len())
	}
}
