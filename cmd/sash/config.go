package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paneless/sash/internal/config"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sash config <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  validate    Validate the configuration file")
	fmt.Fprintln(w, "  print       Print the effective configuration as YAML")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "validate":
		return runConfigValidate()
	case "print":
		return runConfigPrint()
	case "help", "-h", "--help":
		printConfigUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}

func runConfigValidate() int {
	path, err := config.DefaultConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if _, err := config.LoadFromPath(path); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		return 1
	}
	fmt.Printf("%s: OK\n", path)
	return 0
}

func runConfigPrint() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	os.Stdout.Write(out)
	return 0
}
