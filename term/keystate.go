package term

// KeyState tracks which keys are held and which were freshly pressed this
// tick. Edge detection lives here, once, so the accumulator and processor
// can both ask "was Backspace/Enter just pressed" without re-deriving it.
//
// The host calls BeginTick, then Observe for every raw event of the tick,
// before either core component runs.
type KeyState struct {
	down  map[KeyCode]bool
	fresh map[KeyCode]bool
}

// NewKeyState creates an empty tracker.
func NewKeyState() *KeyState {
	return &KeyState{
		down:  make(map[KeyCode]bool),
		fresh: make(map[KeyCode]bool),
	}
}

// BeginTick clears the freshly-pressed set for a new tick. Held keys carry
// over, so a key held across ticks fires JustPressed only once.
func (k *KeyState) BeginTick() {
	clear(k.fresh)
}

// Observe feeds one raw event into the tracker.
func (k *KeyState) Observe(ev KeyEvent) {
	if ev.Pressed {
		if !k.down[ev.Code] {
			k.fresh[ev.Code] = true
		}
		k.down[ev.Code] = true
		return
	}
	delete(k.down, ev.Code)
}

// ObserveAll feeds a tick's events in arrival order.
func (k *KeyState) ObserveAll(events []KeyEvent) {
	for _, ev := range events {
		k.Observe(ev)
	}
}

// Down reports whether the key is currently held.
func (k *KeyState) Down(code KeyCode) bool {
	return k.down[code]
}

// JustPressed reports whether the key went down this tick.
func (k *KeyState) JustPressed(code KeyCode) bool {
	return k.fresh[code]
}
