package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/darkpool/config"
	"github.com/drake/darkpool/term"
	"github.com/drake/darkpool/ui/style"
	"github.com/drake/darkpool/ui/widget"
)

// tickMsg drives the frame flush cadence.
type tickMsg time.Time

func doTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model: transcript viewport on top, current line
// with a blinking cursor at the bottom. Keystrokes are not interpreted
// here - they are collected and flushed to the session once per tick.
type Model struct {
	framesIn chan<- []term.KeyEvent
	tick     time.Duration

	scrollback *widget.ScrollbackBuffer
	viewport   *widget.Viewport
	styles     style.Styles
	cursor     cursor.Model

	line     string // current-line text, prompt included
	pending  []term.KeyEvent
	width    int
	height   int
	quitting bool
}

// NewModel creates the TUI model. Key frames are flushed into framesIn.
func NewModel(framesIn chan<- []term.KeyEvent, cfg *config.Config) Model {
	styles := style.New(cfg.Theme)
	scrollback := widget.NewScrollbackBuffer(cfg.Scrollback)

	c := cursor.New()
	c.Style = styles.Cursor
	c.SetChar(" ")
	c.Focus()

	return Model{
		framesIn:   framesIn,
		tick:       time.Duration(cfg.TickMS) * time.Millisecond,
		scrollback: scrollback,
		viewport:   widget.NewViewport(scrollback),
		styles:     styles,
		cursor:     c,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		doTick(m.tick),
		cursor.Blink,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tickMsg:
		if len(m.pending) > 0 {
			m.framesIn <- m.pending
			m.pending = nil
		}
		return m, doTick(m.tick)

	case appendMsg:
		m.appendText(string(msg))
		return m, nil

	case setLineMsg:
		m.line = string(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyPgUp:
		m.viewport.PageUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.PageDown()
		return m, nil

	case tea.KeyHome:
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyEnd:
		m.viewport.GotoBottom()
		return m, nil
	}

	m.pending = append(m.pending, translate(msg)...)
	return m, nil
}

// appendText splits transcript text into lines and feeds the scrollback.
func (m *Model) appendText(text string) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for _, line := range lines {
		m.scrollback.Append(line)
	}
	m.viewport.OnNewLines(len(lines))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	line := m.styles.Prompt.Render(m.line) + m.cursor.View()
	if m.viewport.Scrolled() {
		line += m.styles.Muted.Render(fmt.Sprintf("  [scrollback +%d, End to return]", m.viewport.NewLines()))
	}

	return m.styles.Text.Render(m.viewport.View()) + "\n" + line
}
