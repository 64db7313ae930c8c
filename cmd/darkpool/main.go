// Command darkpool runs the Data Heist at NeoTech Labs terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/drake/darkpool/config"
	"github.com/drake/darkpool/debug"
	"github.com/drake/darkpool/scenario"
	"github.com/drake/darkpool/session"
	"github.com/drake/darkpool/ui"
)

func main() {
	simpleUI := flag.Bool("simple", false, "Use line-mode console instead of the full-screen UI")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	// Select UI mode. Both implementations carry the surface capabilities
	// and the key-frame stream the session consumes.
	var u ui.UI
	quit := func() {
		// The exit command lands here, exactly once. Unwind the UI so the
		// terminal is restored, then end with success status.
		u.Quit()
		<-u.Done()
		os.Exit(0)
	}
	if *simpleUI {
		u = ui.NewConsoleUI()
	} else {
		u = ui.NewBubbleTeaUI(cfg)
	}

	sess := session.New(u.Frames(), u, u, quit, session.Config{
		Prompt: cfg.Prompt,
		Table:  scenario.Table(),
		Banner: scenario.Banner,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debug.NewMonitor(ctx, sess.Stats()).Start()

	// Host loop - single goroutine owns the core state.
	go sess.Run()

	if err := u.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "UI error:", err)
		os.Exit(1)
	}
}
