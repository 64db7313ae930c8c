// Package scenario defines the fixed Data Heist at NeoTech Labs content:
// the command table, the startup banner, and the prompt marker.
package scenario

import (
	"sort"
	"strings"

	"github.com/drake/darkpool/term"
)

// Banner is printed to the transcript before the first prompt.
var Banner = []string{
	"Initializing...",
	"> Welcome to the dark pool, runner.",
}

// Table builds the NeoTech Labs command table. `exit` is the terminating
// entry; `help` lists every registered command and is registered last so it
// can see the rest of the table.
func Table() *term.Table {
	t := term.NewTable().
		Respond("nmap neotechlabs.com", "> Scanning NeoTech Labs...\n> Port 80: HTTP (vulnerable)").
		Respond("ssh neotechlabs.com", "> Connected—auth required").
		Respond("exploit", "> Firewall breached").
		Respond("wget data", "> 500MB downloaded—trace active!").
		Respond("cloak", "> Trace evaded").
		Terminate("exit")

	t.Respond("help", helpText(t))
	return t
}

func helpText(t *term.Table) string {
	cmds := append(t.Commands(), "help")
	sort.Strings(cmds)
	return "> Available commands: " + strings.Join(cmds, ", ")
}
