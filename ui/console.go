package ui

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/drake/darkpool/internal/buffer"
	"github.com/drake/darkpool/term"
)

// ConsoleUI is the -simple fallback: plain stdin/stdout, one frame per
// typed line. Each line is replayed through the same key table the TUI
// uses, so the core sees identical events in both modes.
type ConsoleUI struct {
	framesIn  chan<- []term.KeyEvent
	framesOut <-chan []term.KeyEvent

	done     chan struct{}
	doneOnce sync.Once

	lastWasLine bool // last write was the current line (no newline)
}

// NewConsoleUI initializes the line-mode interface.
func NewConsoleUI() *ConsoleUI {
	framesIn, framesOut := buffer.Unbounded[[]term.KeyEvent](16, 1024)

	return &ConsoleUI{
		framesIn:  framesIn,
		framesOut: framesOut,
		done:      make(chan struct{}),
	}
}

// Append implements term.Transcript.
func (c *ConsoleUI) Append(text string) {
	if c.lastWasLine {
		fmt.Print("\r\033[K")
		c.lastWasLine = false
	}
	fmt.Print(text)
}

// Set implements term.CurrentLine. Subsequent calls overwrite in place.
func (c *ConsoleUI) Set(text string) {
	if c.lastWasLine {
		fmt.Print("\r\033[K")
	}
	fmt.Print(text)
	c.lastWasLine = true
}

// Frames implements UI.
func (c *ConsoleUI) Frames() <-chan []term.KeyEvent {
	return c.framesOut
}

// Run reads stdin until EOF, emitting one key frame per line.
func (c *ConsoleUI) Run() error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()

		frame := make([]term.KeyEvent, 0, 2*len(line)+2)
		for _, ev := range term.PressesFor(line) {
			frame = append(frame, ev, term.Release(ev.Code))
		}
		frame = append(frame, term.Press(term.KeyEnter), term.Release(term.KeyEnter))

		select {
		case <-c.done:
			return nil
		default:
		}
		c.framesIn <- frame
	}

	close(c.framesIn)
	c.doneOnce.Do(func() { close(c.done) })
	return scanner.Err()
}

// Quit marks the UI done. Run itself can stay blocked on stdin; the
// terminating command path exits the process right after.
func (c *ConsoleUI) Quit() {
	c.doneOnce.Do(func() { close(c.done) })
}

// Done closes when the UI has exited.
func (c *ConsoleUI) Done() <-chan struct{} {
	return c.done
}
