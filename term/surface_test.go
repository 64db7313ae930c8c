package term

import "strings"

// fakeTranscript records appended text.
type fakeTranscript struct {
	appends []string
}

func (f *fakeTranscript) Append(text string) {
	f.appends = append(f.appends, text)
}

func (f *fakeTranscript) String() string {
	return strings.Join(f.appends, "")
}

// fakeLine records every Set so tests can assert both the final text and
// that the mirror was actually written.
type fakeLine struct {
	text string
	sets int
}

func (f *fakeLine) Set(text string) {
	f.text = text
	f.sets++
}
