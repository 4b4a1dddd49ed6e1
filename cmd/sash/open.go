package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/paneless/sash"
	"github.com/paneless/sash/internal/config"
)

func runOpen(args []string) int {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	title := fs.String("title", "sash", "window title")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sash open [-title <title>]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a window and print its events until it is asked to close.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Apply()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	conn, err := sash.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer conn.Close()

	win, err := sash.NewWindow(conn, *title)
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}
	defer win.Close()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Printf("Window %d open. Close it from the window manager or press Ctrl+C.\n", win.ID())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.PollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			return 0
		case <-ticker.C:
			win.Poll()
			for _, ev := range win.Events() {
				fmt.Printf("%s\n", describeEvent(ev))
				if _, ok := ev.(sash.CloseRequest); ok {
					return 0
				}
			}
		}
	}
}

func describeEvent(ev sash.Event) string {
	switch e := ev.(type) {
	case sash.CloseRequest:
		return "close requested"
	case sash.KeyDown:
		return "key down: " + e.Key.String()
	case sash.KeyUp:
		return "key up: " + e.Key.String()
	case sash.KeyRepeat:
		return "key repeat: " + e.Key.String()
	case sash.Focus:
		if e.Gained {
			return "focus gained"
		}
		return "focus lost"
	default:
		return fmt.Sprintf("event %T", ev)
	}
}
