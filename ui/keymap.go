package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/darkpool/term"
)

// translate converts a Bubble Tea key message into core key events.
//
// Terminals report keystrokes, not key-up transitions, so each press gets a
// synthesized release in the same frame: every physical keystroke (and every
// autorepeat) is edge-fresh, which is exactly how a terminal should feel.
// Keys outside the core's fixed set translate to nothing.
func translate(msg tea.KeyMsg) []term.KeyEvent {
	var codes []term.KeyCode

	switch msg.Type {
	case tea.KeyEnter:
		codes = append(codes, term.KeyEnter)
	case tea.KeyBackspace:
		codes = append(codes, term.KeyBackspace)
	case tea.KeySpace:
		codes = append(codes, term.KeySpace)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			// The key table is the physical key set: shift-modified
			// letters land on the same key.
			if code, ok := term.KeyFor(unicode.ToLower(r)); ok {
				codes = append(codes, code)
			}
		}
	}

	events := make([]term.KeyEvent, 0, len(codes)*2)
	for _, code := range codes {
		events = append(events, term.Press(code), term.Release(code))
	}
	return events
}
