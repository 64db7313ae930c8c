package term

import "unicode"

// Accumulator turns a tick's key events into line buffer edits and mirrors
// the result to the current-line region.
type Accumulator struct {
	// Prompt is the fixed marker prefixed to the mirrored buffer content.
	Prompt string
}

// Apply processes one tick of events. Character presses append in arrival
// order; afterwards a freshly pressed Backspace removes the last character.
// Unmapped keys and erase-on-empty are no-ops, not errors. keys must
// already hold this tick's edge state.
func (a Accumulator) Apply(events []KeyEvent, keys *KeyState, buf *LineBuffer, line CurrentLine) {
	dirty := false

	for _, ev := range events {
		if !ev.Pressed {
			continue
		}
		r, ok := CharFor(ev.Code)
		if !ok {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '.' {
			buf.Append(r)
			dirty = true
		}
	}

	// Erase is edge-triggered: once per physical press, not per tick held.
	if keys.JustPressed(KeyBackspace) && !buf.Empty() {
		buf.Pop()
		dirty = true
	}

	if dirty {
		line.Set(a.Prompt + buf.String())
	}
}
