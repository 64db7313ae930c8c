// Package widget holds the building blocks of the terminal UI: the
// transcript scrollback ring and the viewport that renders a window of it.
package widget

// ScrollbackBuffer is a ring buffer of transcript lines. The transcript
// itself grows monotonically; the ring caps what the UI retains.
type ScrollbackBuffer struct {
	lines    []string
	head     int
	tail     int
	count    int
	capacity int
}

// NewScrollbackBuffer creates a ring holding up to capacity lines.
func NewScrollbackBuffer(capacity int) *ScrollbackBuffer {
	if capacity <= 0 {
		capacity = 10000
	}
	return &ScrollbackBuffer{
		lines:    make([]string, capacity),
		capacity: capacity,
	}
}

// Append adds a line, evicting the oldest once full.
func (sb *ScrollbackBuffer) Append(line string) {
	sb.lines[sb.tail] = line
	sb.tail = (sb.tail + 1) % sb.capacity

	if sb.count < sb.capacity {
		sb.count++
	} else {
		sb.head = (sb.head + 1) % sb.capacity
	}
}

// Count returns the number of lines retained.
func (sb *ScrollbackBuffer) Count() int {
	return sb.count
}

// At retrieves a line by logical index (0 = oldest retained).
func (sb *ScrollbackBuffer) At(i int) string {
	if i < 0 || i >= sb.count {
		return ""
	}
	return sb.lines[(sb.head+i)%sb.capacity]
}
