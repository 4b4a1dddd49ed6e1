package main

import (
	"fmt"
	"log"
	"os"

	"github.com/paneless/sash"
	"github.com/paneless/sash/internal/config"
)

func runScreens(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: sash screens")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "List the active screens of the display with their geometry.")
		return 0
	}
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "screens takes no arguments")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Apply()

	conn, err := sash.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer conn.Close()

	screens, err := conn.Screens()
	if err != nil {
		log.Fatalf("Failed to list screens: %v", err)
	}
	if len(screens) == 0 {
		fmt.Println("No active screens.")
		return 0
	}
	for _, s := range screens {
		fmt.Printf("%-12s %dx%d+%d+%d\n", s.Name, s.Width, s.Height, s.X, s.Y)
	}
	return 0
}
