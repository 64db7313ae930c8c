package term

import "testing"

// tick runs one accumulator tick the way the host does: edge state first,
// then Apply over the same events.
func tick(acc Accumulator, keys *KeyState, buf *LineBuffer, line CurrentLine, events ...KeyEvent) {
	keys.BeginTick()
	keys.ObserveAll(events)
	acc.Apply(events, keys, buf, line)
}

func TestAccumulateInArrivalOrder(t *testing.T) {
	acc := Accumulator{Prompt: "> "}
	keys := NewKeyState()
	buf := NewLineBuffer()
	line := &fakeLine{}

	tick(acc, keys, buf, line, PressesFor("exploit")...)

	if got := buf.String(); got != "exploit" {
		t.Errorf("buffer = %q, want %q", got, "exploit")
	}
	if line.text != "> exploit" {
		t.Errorf("current line = %q, want %q", line.text, "> exploit")
	}
}

func TestMirrorInvariantHoldsEveryTick(t *testing.T) {
	acc := Accumulator{Prompt: "> "}
	keys := NewKeyState()
	buf := NewLineBuffer()
	line := &fakeLine{}

	for _, ev := range PressesFor("wget data") {
		tick(acc, keys, buf, line, ev, Release(ev.Code))
		if want := "> " + buf.String(); line.text != want {
			t.Fatalf("mirror broken: line %q, buffer %q", line.text, buf.String())
		}
	}
}

func TestUnmappedKeysIgnored(t *testing.T) {
	acc := Accumulator{Prompt: "> "}
	keys := NewKeyState()
	buf := NewLineBuffer()
	line := &fakeLine{}

	tick(acc, keys, buf, line, Press(KeyUnknown), Press(KeyEnter))

	if !buf.Empty() {
		t.Errorf("buffer = %q, want empty", buf.String())
	}
	if line.sets != 0 {
		t.Error("current line should not be rewritten when nothing changed")
	}
}

func TestEraseRemovesLastCharacter(t *testing.T) {
	acc := Accumulator{Prompt: "> "}
	keys := NewKeyState()
	buf := NewLineBuffer()
	line := &fakeLine{}

	tick(acc, keys, buf, line, PressesFor("ssh")...)
	tick(acc, keys, buf, line, Press(KeyBackspace))

	if got := buf.String(); got != "ss" {
		t.Errorf("buffer = %q, want %q", got, "ss")
	}
	if line.text != "> ss" {
		t.Errorf("current line = %q, want %q", line.text, "> ss")
	}
}

func TestEraseOnEmptyBufferIsNoop(t *testing.T) {
	acc := Accumulator{Prompt: "> "}
	keys := NewKeyState()
	buf := NewLineBuffer()
	line := &fakeLine{}

	tick(acc, keys, buf, line, Press(KeyBackspace))

	if !buf.Empty() {
		t.Errorf("buffer = %q, want empty", buf.String())
	}
	if line.sets != 0 {
		t.Error("erase on empty buffer must leave the current line untouched")
	}
}

func TestEraseIsEdgeTriggeredNotHeld(t *testing.T) {
	acc := Accumulator{Prompt: "> "}
	keys := NewKeyState()
	buf := NewLineBuffer()
	line := &fakeLine{}

	tick(acc, keys, buf, line, PressesFor("abc")...)

	// Backspace goes down and stays down for three ticks.
	tick(acc, keys, buf, line, Press(KeyBackspace))
	tick(acc, keys, buf, line)
	tick(acc, keys, buf, line)

	if got := buf.String(); got != "ab" {
		t.Errorf("buffer = %q, want %q (held erase must fire once)", got, "ab")
	}
}

func TestCharsApplyBeforeEraseWithinTick(t *testing.T) {
	acc := Accumulator{Prompt: "> "}
	keys := NewKeyState()
	buf := NewLineBuffer()
	line := &fakeLine{}

	// Typing burst and an erase in the same tick: insertions land first,
	// then exactly one character comes off the end.
	events := append(PressesFor("nmap"), Press(KeyBackspace))
	tick(acc, keys, buf, line, events...)

	if got := buf.String(); got != "nma" {
		t.Errorf("buffer = %q, want %q", got, "nma")
	}
}

func TestTypeThenEraseSequence(t *testing.T) {
	acc := Accumulator{Prompt: "> "}
	keys := NewKeyState()
	buf := NewLineBuffer()
	line := &fakeLine{}

	typed := "cloak42"
	tick(acc, keys, buf, line, PressesFor(typed)...)

	erases := 3
	for i := 0; i < erases; i++ {
		tick(acc, keys, buf, line, Press(KeyBackspace), Release(KeyBackspace))
	}

	want := typed[:len(typed)-erases]
	if got := buf.String(); got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if line.text != "> "+want {
		t.Errorf("current line = %q, want %q", line.text, "> "+want)
	}
}
