package widget

import (
	"reflect"
	"testing"
)

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  []string
	}{
		{
			name:  "fits",
			line:  "> Trace evaded",
			width: 80,
			want:  []string{"> Trace evaded"},
		},
		{
			name:  "breaks at space",
			line:  "one two three",
			width: 8,
			want:  []string{"one two", "three"},
		},
		{
			name:  "mid word when no space",
			line:  "abcdefghij",
			width: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		{
			name:  "empty",
			line:  "",
			width: 10,
			want:  []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapLine(tt.line, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapLine(%q, %d) = %q, want %q", tt.line, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapCacheReturnsSameRows(t *testing.T) {
	c := newWrapCache(8)

	first := c.wrap("one two three", 8)
	second := c.wrap("one two three", 8)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("cache returned different rows: %q vs %q", first, second)
	}

	// Same line at a different width is a different entry.
	other := c.wrap("one two three", 4)
	if reflect.DeepEqual(first, other) {
		t.Error("width must be part of the cache key")
	}
}
