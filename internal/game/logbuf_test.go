package game

import (
	"fmt"
	"testing"
)

func TestLogBufferKeepsMostRecent(t *testing.T) {
	b := NewLogBuffer(LogCapacity)
	for i := 0; i < 60; i++ {
		b.Append(LogEntry{Message: fmt.Sprintf("entry %d", i)})
		if b.Len() > LogCapacity {
			t.Fatalf("buffer grew past capacity: %d", b.Len())
		}
	}
	got := b.Entries()
	if len(got) != LogCapacity {
		t.Fatalf("expected %d entries, got %d", LogCapacity, len(got))
	}
	for i, e := range got {
		if want := fmt.Sprintf("entry %d", i+10); e.Message != want {
			t.Fatalf("entry %d = %q, want %q", i, e.Message, want)
		}
	}
}

func TestLogBufferBelowCapacity(t *testing.T) {
	b := NewLogBuffer(3)
	b.Append(LogEntry{Message: "a"})
	b.Append(LogEntry{Message: "b"})
	got := b.Entries()
	if len(got) != 2 || got[0].Message != "a" || got[1].Message != "b" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestLogBufferClear(t *testing.T) {
	b := NewLogBuffer(2)
	b.Append(LogEntry{Message: "a"})
	b.Append(LogEntry{Message: "b"})
	b.Append(LogEntry{Message: "c"})
	b.Clear()
	if b.Len() != 0 || len(b.Entries()) != 0 {
		t.Fatal("expected empty buffer after Clear")
	}
	b.Append(LogEntry{Message: "d"})
	if got := b.Entries(); len(got) != 1 || got[0].Message != "d" {
		t.Fatalf("unexpected entries after reuse: %+v", got)
	}
}

func TestLogBufferEntriesIsCopy(t *testing.T) {
	b := NewLogBuffer(2)
	b.Append(LogEntry{Message: "a"})
	got := b.Entries()
	got[0].Message = "changed"
	if b.Entries()[0].Message != "a" {
		t.Fatal("Entries should not alias the buffer")
	}
}
