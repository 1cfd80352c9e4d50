package game

// LogBuffer is a fixed-capacity FIFO of log entries. Appending past
// capacity evicts the oldest entry.
type LogBuffer struct {
	entries []LogEntry
	start   int
	size    int
}

func NewLogBuffer(capacity int) *LogBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &LogBuffer{entries: make([]LogEntry, capacity)}
}

func (b *LogBuffer) Append(e LogEntry) {
	c := len(b.entries)
	if b.size < c {
		b.entries[(b.start+b.size)%c] = e
		b.size++
		return
	}
	b.entries[b.start] = e
	b.start = (b.start + 1) % c
}

// Entries returns a copy in insertion order, oldest first.
func (b *LogBuffer) Entries() []LogEntry {
	out := make([]LogEntry, b.size)
	for i := range out {
		out[i] = b.entries[(b.start+i)%len(b.entries)]
	}
	return out
}

func (b *LogBuffer) Len() int { return b.size }

func (b *LogBuffer) Clear() {
	clear(b.entries)
	b.start = 0
	b.size = 0
}
