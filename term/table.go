package term

import (
	"fmt"
	"sort"
)

// Action tags a command table entry.
type Action int

const (
	// ActionRespond appends the entry's text to the transcript.
	ActionRespond Action = iota
	// ActionTerminate ends the process. The host performs the exit; the
	// table only reports the outcome so lookup stays side-effect free.
	ActionTerminate
)

// Entry is the outcome of a command lookup.
type Entry struct {
	Action Action
	Text   string
}

// Table maps exact trimmed command strings to outcomes. Matching is
// case-sensitive and whole-line - no tokenizing, no arguments.
// Built once at startup, read-only afterwards.
type Table struct {
	entries map[string]Entry
}

// NewTable creates an empty command table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Respond registers a command that answers with text.
func (t *Table) Respond(cmd, text string) *Table {
	t.entries[cmd] = Entry{Action: ActionRespond, Text: text}
	return t
}

// Terminate registers the command that ends the process.
func (t *Table) Terminate(cmd string) *Table {
	t.entries[cmd] = Entry{Action: ActionTerminate}
	return t
}

// Lookup resolves a trimmed command string.
func (t *Table) Lookup(cmd string) (Entry, bool) {
	e, ok := t.entries[cmd]
	return e, ok
}

// Commands returns every registered command, sorted.
func (t *Table) Commands() []string {
	cmds := make([]string, 0, len(t.entries))
	for cmd := range t.entries {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// UnknownResponse synthesizes the default reply for an unmatched command.
func UnknownResponse(cmd string) string {
	return fmt.Sprintf("> Unknown command: %s. Type 'help' for options.", cmd)
}
