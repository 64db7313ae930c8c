package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/darkpool/config"
	"github.com/drake/darkpool/internal/buffer"
	"github.com/drake/darkpool/term"
)

// BubbleTeaUI bridges the channel-facing UI contract with Bubble Tea's
// model/update/view loop. Surface writes are queued and drained into the
// program by a single goroutine so the session never blocks on a repaint;
// key frames travel the other way through an unbounded buffer so the UI
// never blocks on the session.
type BubbleTeaUI struct {
	cfg     *config.Config
	program *tea.Program

	framesIn  chan<- []term.KeyEvent
	framesOut <-chan []term.KeyEvent

	msgQueue chan tea.Msg

	done     chan struct{}
	doneOnce sync.Once
}

// NewBubbleTeaUI creates the full-screen UI.
func NewBubbleTeaUI(cfg *config.Config) *BubbleTeaUI {
	framesIn, framesOut := buffer.Unbounded[[]term.KeyEvent](64, 4096)

	return &BubbleTeaUI{
		cfg:       cfg,
		framesIn:  framesIn,
		framesOut: framesOut,
		msgQueue:  make(chan tea.Msg, 1024),
		done:      make(chan struct{}),
	}
}

// send queues a message for delivery to the Bubble Tea program.
func (b *BubbleTeaUI) send(msg tea.Msg) {
	select {
	case <-b.done:
	case b.msgQueue <- msg:
	}
}

// Append implements term.Transcript.
func (b *BubbleTeaUI) Append(text string) {
	b.send(appendMsg(text))
}

// Set implements term.CurrentLine.
func (b *BubbleTeaUI) Set(text string) {
	b.send(setLineMsg(text))
}

// Frames implements UI.
func (b *BubbleTeaUI) Frames() <-chan []term.KeyEvent {
	return b.framesOut
}

// Run starts the TUI and blocks until exit.
func (b *BubbleTeaUI) Run() error {
	b.program = tea.NewProgram(
		NewModel(b.framesIn, b.cfg),
		tea.WithAltScreen(),
	)

	// Single goroutine drains the surface queue into the program; Send can
	// block during repaints without stalling the session.
	go func() {
		for {
			select {
			case <-b.done:
				return
			case msg := <-b.msgQueue:
				b.program.Send(msg)
			}
		}
	}()

	_, err := b.program.Run()

	b.doneOnce.Do(func() { close(b.done) })
	// No more frames will be produced; let the session drain and stop.
	close(b.framesIn)

	return err
}

// Quit asks the program to unwind and restore the terminal.
func (b *BubbleTeaUI) Quit() {
	if b.program != nil {
		b.program.Quit()
	}
}

// Done closes when the UI has exited.
func (b *BubbleTeaUI) Done() <-chan struct{} {
	return b.done
}
