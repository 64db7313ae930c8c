package term

// The text surface is two independently addressable regions owned by the
// presentation layer. The core holds write-only capabilities to them and
// never reads back.

// Transcript is the append-only history region. Append may carry embedded
// newlines; growth is monotonic - scrolling and truncation are the
// presentation layer's concern.
type Transcript interface {
	Append(text string)
}

// CurrentLine is the live view of the line buffer. Set replaces the whole
// region, prompt marker included.
type CurrentLine interface {
	Set(text string)
}
