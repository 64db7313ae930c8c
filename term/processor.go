package term

import "strings"

// Processor resolves a submitted line against the command table and routes
// the response to the transcript.
type Processor struct {
	Prompt string
	Table  *Table
}

// Submit handles one submission: trim the buffered text, look it up,
// append the matched (or default) response plus a newline to the
// transcript, reset the current line to the prompt marker, and clear the
// buffer. Every submission is handled atomically within one call.
//
// A terminating entry returns true before any mutation - the host owns
// the actual process exit. An empty buffer is a no-op and returns false;
// callers gate on the submit key being freshly pressed.
func (p Processor) Submit(buf *LineBuffer, transcript Transcript, line CurrentLine) bool {
	if buf.Empty() {
		return false
	}

	cmd := strings.TrimSpace(buf.String())

	var response string
	if entry, ok := p.Table.Lookup(cmd); ok {
		if entry.Action == ActionTerminate {
			return true
		}
		response = entry.Text
	} else {
		response = UnknownResponse(cmd)
	}

	transcript.Append(response + "\n")
	line.Set(p.Prompt)
	buf.Clear()
	return false
}
