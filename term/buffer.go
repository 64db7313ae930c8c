package term

// LineBuffer holds the in-progress, not-yet-submitted command text. The
// accumulator appends and pops at the end only; there is no cursor. Its
// content is always mirrored into the current-line region by whoever
// mutates it.
type LineBuffer struct {
	runes []rune
}

// NewLineBuffer creates an empty buffer.
func NewLineBuffer() *LineBuffer {
	return &LineBuffer{}
}

// Append adds one character at the end.
func (b *LineBuffer) Append(r rune) {
	b.runes = append(b.runes, r)
}

// Pop removes the last character. No-op on an empty buffer.
func (b *LineBuffer) Pop() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

// Len returns the number of characters held.
func (b *LineBuffer) Len() int {
	return len(b.runes)
}

// Empty reports whether the buffer holds nothing.
func (b *LineBuffer) Empty() bool {
	return len(b.runes) == 0
}

// String returns the buffered text.
func (b *LineBuffer) String() string {
	return string(b.runes)
}

// Clear empties the buffer.
func (b *LineBuffer) Clear() {
	b.runes = b.runes[:0]
}
