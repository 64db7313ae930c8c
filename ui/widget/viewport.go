package widget

import "strings"

// ScrollMode indicates whether the viewport is pinned to the newest lines
// or scrolled back into history.
type ScrollMode int

const (
	ModeLive ScrollMode = iota
	ModeScrolled
)

// Viewport renders a window into the scrollback buffer, bottom-aligned,
// with width-aware wrapping.
type Viewport struct {
	buffer *ScrollbackBuffer
	wraps  *wrapCache

	offset   int // lines back from the newest (0 = live)
	width    int
	height   int
	mode     ScrollMode
	newLines int // lines arrived while scrolled

	cacheValid bool
	cachedView string
}

// NewViewport creates a viewport over the given buffer.
func NewViewport(buffer *ScrollbackBuffer) *Viewport {
	return &Viewport{
		buffer: buffer,
		wraps:  newWrapCache(2048),
		mode:   ModeLive,
	}
}

// View renders the window: the newest visible lines, wrapped, padded with
// blank rows above so content sits at the bottom.
func (v *Viewport) View() string {
	if v.cacheValid {
		return v.cachedView
	}
	if v.height <= 0 || v.width <= 0 {
		return ""
	}

	// Collect wrapped rows from the newest visible line backwards until
	// the window is full.
	var rows []string
	end := v.buffer.Count() - v.offset
	for i := end - 1; i >= 0 && len(rows) < v.height; i-- {
		wrapped := v.wraps.wrap(v.buffer.At(i), v.width)
		for j := len(wrapped) - 1; j >= 0 && len(rows) < v.height; j-- {
			rows = append(rows, wrapped[j])
		}
	}

	var b strings.Builder
	b.Grow(v.height * (v.width + 1))
	for i := v.height - 1; i >= 0; i-- {
		if i < len(rows) {
			b.WriteString(rows[i])
		}
		if i > 0 {
			b.WriteByte('\n')
		}
	}

	v.cachedView = b.String()
	v.cacheValid = true
	return v.cachedView
}

// SetSize updates the window dimensions.
func (v *Viewport) SetSize(width, height int) {
	if width != v.width || height != v.height {
		v.width = width
		v.height = height
		v.cacheValid = false
	}
}

// OnNewLines is called when lines are appended to the buffer. In live mode
// the window follows; scrolled back, it stays put and counts what arrived.
func (v *Viewport) OnNewLines(count int) {
	switch v.mode {
	case ModeLive:
		v.cacheValid = false
	case ModeScrolled:
		v.offset += count
		v.newLines += count
		v.cacheValid = false
	}
}

// Scrolled reports whether the viewport is detached from the live tail.
func (v *Viewport) Scrolled() bool {
	return v.mode == ModeScrolled
}

// NewLines returns how many lines arrived while scrolled back.
func (v *Viewport) NewLines() int {
	return v.newLines
}

// PageUp scrolls back one page.
func (v *Viewport) PageUp() {
	if v.height <= 0 {
		return
	}
	maxOffset := v.buffer.Count() - v.height
	if maxOffset < 0 {
		maxOffset = 0
	}

	v.offset += v.height - 1
	if v.offset > maxOffset {
		v.offset = maxOffset
	}

	if v.offset > 0 {
		v.mode = ModeScrolled
	}
	v.cacheValid = false
}

// PageDown scrolls forward one page, re-entering live mode at the tail.
func (v *Viewport) PageDown() {
	v.offset -= v.height - 1
	if v.offset <= 0 {
		v.GotoBottom()
		return
	}
	v.cacheValid = false
}

// GotoTop scrolls to the oldest retained line.
func (v *Viewport) GotoTop() {
	if v.height <= 0 {
		return
	}
	maxOffset := v.buffer.Count() - v.height
	if maxOffset <= 0 {
		return
	}
	v.offset = maxOffset
	v.mode = ModeScrolled
	v.cacheValid = false
}

// GotoBottom returns to live mode.
func (v *Viewport) GotoBottom() {
	v.offset = 0
	v.newLines = 0
	v.mode = ModeLive
	v.cacheValid = false
}
