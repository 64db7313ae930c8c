// Package term implements the terminal core: the input/edit/dispatch loop
// that turns raw key events into line edits and resolves submitted lines
// against the command table. It knows nothing about rendering - it writes
// through the Transcript and CurrentLine capabilities and reads key frames
// the host hands it each tick.
package term

// KeyCode is a stable key identity from the fixed key set.
type KeyCode int

const (
	KeyUnknown KeyCode = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	KeySpace
	KeyPeriod

	// Control keys. Never mapped to a printable character, so a single
	// keystroke can't both type and erase/submit within one tick.
	KeyBackspace
	KeyEnter
)

// KeyEvent is one press or release of a key. Events are transient: the host
// delivers each occurrence exactly once and nothing retains them.
type KeyEvent struct {
	Code    KeyCode
	Pressed bool
}

// Press is shorthand for a press event.
func Press(code KeyCode) KeyEvent {
	return KeyEvent{Code: code, Pressed: true}
}

// Release is shorthand for a release event.
func Release(code KeyCode) KeyEvent {
	return KeyEvent{Code: code, Pressed: false}
}
