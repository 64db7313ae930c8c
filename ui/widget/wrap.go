package widget

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
)

// wrapCache memoizes wrapped lines keyed by width and content. Re-wrapping
// the whole visible window happens every repaint, but the window mostly
// shows the same lines, so the hit rate is high.
type wrapCache struct {
	cache *lru.Cache[string, []string]
}

func newWrapCache(size int) *wrapCache {
	c, err := lru.New[string, []string](size)
	if err != nil {
		// Only fails on a non-positive size.
		panic(err)
	}
	return &wrapCache{cache: c}
}

func (w *wrapCache) wrap(line string, width int) []string {
	key := fmt.Sprintf("%d|%s", width, line)
	if rows, ok := w.cache.Get(key); ok {
		return rows
	}
	rows := wrapLine(line, width)
	w.cache.Add(key, rows)
	return rows
}

// wrapLine breaks a line into display rows no wider than width, measured
// with runewidth so wide characters count properly. Breaks fall at spaces
// when one is available, otherwise mid-word.
func wrapLine(line string, width int) []string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	var rows []string
	var row strings.Builder
	rowWidth := 0
	lastSpace := -1 // byte offset in row of the last space
	spaceWidth := 0 // row width up to and including that space

	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if rowWidth+rw > width {
			if lastSpace >= 0 {
				s := row.String()
				rows = append(rows, strings.TrimRight(s[:lastSpace], " "))
				rest := s[lastSpace+1:]
				row.Reset()
				row.WriteString(rest)
				rowWidth = rowWidth - spaceWidth
			} else {
				rows = append(rows, row.String())
				row.Reset()
				rowWidth = 0
			}
			lastSpace = -1
			spaceWidth = 0
		}
		if r == ' ' {
			lastSpace = row.Len()
			spaceWidth = rowWidth + rw
		}
		row.WriteRune(r)
		rowWidth += rw
	}

	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return rows
}
