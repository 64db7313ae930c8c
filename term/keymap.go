package term

// keyChars is the fixed key-to-character table: lowercase letters, digits,
// space and period. Keys absent from the table produce no character.
// Data-driven on purpose - extending the console's alphabet is one entry.
var keyChars = map[KeyCode]rune{
	KeyA: 'a', KeyB: 'b', KeyC: 'c', KeyD: 'd', KeyE: 'e', KeyF: 'f',
	KeyG: 'g', KeyH: 'h', KeyI: 'i', KeyJ: 'j', KeyK: 'k', KeyL: 'l',
	KeyM: 'm', KeyN: 'n', KeyO: 'o', KeyP: 'p', KeyQ: 'q', KeyR: 'r',
	KeyS: 's', KeyT: 't', KeyU: 'u', KeyV: 'v', KeyW: 'w', KeyX: 'x',
	KeyY: 'y', KeyZ: 'z',

	Digit0: '0', Digit1: '1', Digit2: '2', Digit3: '3', Digit4: '4',
	Digit5: '5', Digit6: '6', Digit7: '7', Digit8: '8', Digit9: '9',

	KeySpace:  ' ',
	KeyPeriod: '.',
}

// charKeys is the reverse lookup, derived once at init. Used by line-mode
// input (console UI) and tests to synthesize key events from plain text.
var charKeys = func() map[rune]KeyCode {
	m := make(map[rune]KeyCode, len(keyChars))
	for code, r := range keyChars {
		m[r] = code
	}
	return m
}()

// CharFor maps a key to its character, if it has one.
func CharFor(code KeyCode) (rune, bool) {
	r, ok := keyChars[code]
	return r, ok
}

// KeyFor maps a character back to its key, if one produces it.
func KeyFor(r rune) (KeyCode, bool) {
	code, ok := charKeys[r]
	return code, ok
}

// PressesFor converts a string into a press event per mappable character.
// Characters outside the key table are skipped.
func PressesFor(s string) []KeyEvent {
	events := make([]KeyEvent, 0, len(s))
	for _, r := range s {
		if code, ok := charKeys[r]; ok {
			events = append(events, Press(code))
		}
	}
	return events
}
