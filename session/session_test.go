package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/darkpool/term"
)

// mockSurface implements both surface capabilities and records writes.
type mockSurface struct {
	transcript strings.Builder
	line       string
	lineSets   int
}

func (m *mockSurface) Append(text string) { m.transcript.WriteString(text) }
func (m *mockSurface) Set(text string)    { m.line = text; m.lineSets++ }

func testConfig() Config {
	return Config{
		Prompt: "> ",
		Banner: []string{"Initializing...", "> Welcome to the dark pool, runner."},
		Table: term.NewTable().
			Respond("exploit", "> Firewall breached").
			Terminate("exit"),
	}
}

// run feeds the frames through a session synchronously and reports whether
// the quit hook fired.
func run(t *testing.T, cfg Config, frames ...[]term.KeyEvent) (*mockSurface, *Session, bool) {
	t.Helper()

	ch := make(chan []term.KeyEvent, len(frames))
	for _, f := range frames {
		ch <- f
	}
	close(ch)

	surface := &mockSurface{}
	quit := false
	s := New(ch, surface, surface, func() { quit = true }, cfg)
	s.Run()
	return surface, s, quit
}

const banner = "Initializing...\n> Welcome to the dark pool, runner.\n"

func TestBootWritesBannerAndPrompt(t *testing.T) {
	surface, _, quit := run(t, testConfig())

	assert.Equal(t, banner, surface.transcript.String())
	assert.Equal(t, "> ", surface.line)
	assert.False(t, quit)
}

func TestRoundTrip(t *testing.T) {
	surface, _, quit := run(t, testConfig(),
		term.PressesFor("exploit"),
		[]term.KeyEvent{term.Press(term.KeyEnter)},
	)

	require.False(t, quit)
	assert.Equal(t, banner+"> Firewall breached\n", surface.transcript.String())
	assert.Equal(t, "> ", surface.line)
}

func TestSubmitOnEmptyBufferIsNoop(t *testing.T) {
	surface, _, _ := run(t, testConfig(),
		[]term.KeyEvent{term.Press(term.KeyEnter)},
	)

	assert.Equal(t, banner, surface.transcript.String(), "no blank-line echo")
	assert.Equal(t, 1, surface.lineSets, "only the boot prompt write")
}

func TestTerminatingCommand(t *testing.T) {
	surface, _, quit := run(t, testConfig(),
		term.PressesFor("exit"),
		[]term.KeyEvent{term.Press(term.KeyEnter)},
		term.PressesFor("after"), // must never be processed
	)

	require.True(t, quit, "exit must invoke the quit hook")
	assert.Equal(t, banner, surface.transcript.String(), "exit writes nothing")
	assert.Equal(t, "> exit", surface.line, "no reset after terminate")
}

func TestHeldEnterSubmitsOnce(t *testing.T) {
	surface, s, _ := run(t, testConfig(),
		term.PressesFor("exploit"),
		[]term.KeyEvent{term.Press(term.KeyEnter)}, // press, keep holding
		term.PressesFor("exploit"),
		nil, // Enter still down, not fresh
	)

	assert.EqualValues(t, 1, s.Stats().Submissions.Load())
	assert.Equal(t, banner+"> Firewall breached\n", surface.transcript.String())
	assert.Equal(t, "> exploit", surface.line, "second line still accumulating")
}

func TestStatsCounters(t *testing.T) {
	_, s, _ := run(t, testConfig(),
		term.PressesFor("ab"),
		[]term.KeyEvent{term.Press(term.KeyEnter), term.Release(term.KeyEnter)},
	)

	assert.EqualValues(t, 2, s.Stats().Frames.Load())
	assert.EqualValues(t, 4, s.Stats().Keys.Load())
	assert.EqualValues(t, 1, s.Stats().Submissions.Load())
}
