// Package ui renders the terminal: a scrollback transcript and the live
// current line. It implements the core's text-surface capabilities and
// produces per-tick key frames for the session to consume.
package ui

import "github.com/drake/darkpool/term"

// UI is the presentation layer seen by main and the session.
type UI interface {
	term.Transcript
	term.CurrentLine

	// Frames streams one batch of key events per UI tick.
	Frames() <-chan []term.KeyEvent

	Run() error
	Quit()
	Done() <-chan struct{}
}

var (
	_ UI = (*BubbleTeaUI)(nil)
	_ UI = (*ConsoleUI)(nil)
)

// appendMsg carries transcript text (possibly multi-line) into the model.
type appendMsg string

// setLineMsg replaces the current-line text, prompt included.
type setLineMsg string
