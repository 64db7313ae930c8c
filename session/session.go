// Package session runs the host loop: it owns the terminal core state and
// drives the accumulator and processor once per tick from key frames the
// UI delivers. The UI owns the pixels; the session owns the semantics.
package session

import (
	"sync"
	"sync/atomic"

	"github.com/drake/darkpool/term"
)

// Config holds the fixed content a session serves.
type Config struct {
	Prompt string
	Table  *term.Table
	Banner []string // transcript lines written before the first frame
}

// Stats are live counters for the debug monitor. All fields are atomics so
// the monitor can read them from another goroutine.
type Stats struct {
	Frames      atomic.Int64
	Keys        atomic.Int64
	Submissions atomic.Int64
}

// Session consumes per-tick key frames and applies them to the core.
// The line buffer and edge tracker are owned here and touched by exactly
// one goroutine - Run - so the core needs no locking.
type Session struct {
	frames     <-chan []term.KeyEvent
	transcript term.Transcript
	line       term.CurrentLine
	banner     []string

	keys *term.KeyState
	buf  *term.LineBuffer
	acc  term.Accumulator
	proc term.Processor

	// quit ends the process with success status. Invoked at most once,
	// only from the terminating command path.
	quit     func()
	quitOnce sync.Once

	stats Stats
}

// New creates a session. Nothing starts here; call Run.
func New(frames <-chan []term.KeyEvent, transcript term.Transcript, line term.CurrentLine, quit func(), cfg Config) *Session {
	return &Session{
		frames:     frames,
		transcript: transcript,
		line:       line,
		banner:     cfg.Banner,
		quit:       quit,
		keys:       term.NewKeyState(),
		buf:        term.NewLineBuffer(),
		acc:        term.Accumulator{Prompt: cfg.Prompt},
		proc:       term.Processor{Prompt: cfg.Prompt, Table: cfg.Table},
	}
}

// Run writes the banner and prompt, then blocks consuming frames until the
// frame channel closes or the terminating command fires.
func (s *Session) Run() {
	s.boot()

	for frame := range s.frames {
		if s.tick(frame) {
			s.quitOnce.Do(s.quit)
			return
		}
	}
}

// Stats returns the live counters.
func (s *Session) Stats() *Stats {
	return &s.stats
}

func (s *Session) boot() {
	for _, line := range s.banner {
		s.transcript.Append(line + "\n")
	}
	s.line.Set(s.acc.Prompt)
}

// tick applies one frame in the fixed order: edge state, accumulation,
// submit check. Returns true when the terminating command was submitted.
func (s *Session) tick(events []term.KeyEvent) bool {
	s.stats.Frames.Add(1)
	s.stats.Keys.Add(int64(len(events)))

	s.keys.BeginTick()
	s.keys.ObserveAll(events)

	s.acc.Apply(events, s.keys, s.buf, s.line)

	// Enter is never mapped to a character, so a submission can't count
	// a same-tick keystroke toward itself.
	if s.keys.JustPressed(term.KeyEnter) && !s.buf.Empty() {
		s.stats.Submissions.Add(1)
		return s.proc.Submit(s.buf, s.transcript, s.line)
	}
	return false
}
