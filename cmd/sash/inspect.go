package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/paneless/sash/internal/config"
)

// runInspect reads a window's identity properties back from the server. It
// opens its own short-lived connection so it can inspect windows owned by
// other clients.
func runInspect(args []string) int {
	if len(args) == 1 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: sash inspect <window-id>")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Print a window's title, PID and client machine properties.")
		fmt.Fprintln(os.Stdout, "The id may be decimal or 0x-prefixed hex, as printed by 'sash open'.")
		return 0
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "inspect takes exactly one window id")
		return 2
	}

	id, err := strconv.ParseUint(args[0], 0, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad window id %q: %v\n", args[0], err)
		return 2
	}
	win := xproto.Window(id)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Apply()

	xu, err := xgbutil.NewConn()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer xu.Conn().Close()

	if name, err := ewmh.WmNameGet(xu, win); err == nil && name != "" {
		fmt.Printf("_NET_WM_NAME:      %s\n", name)
	}
	if name, err := icccm.WmNameGet(xu, win); err == nil && name != "" {
		fmt.Printf("WM_NAME:           %s\n", name)
	}
	if pid, err := ewmh.WmPidGet(xu, win); err == nil {
		fmt.Printf("_NET_WM_PID:       %d\n", pid)
	}
	if machine, err := xprop.PropValStr(xprop.GetProperty(xu, win, "WM_CLIENT_MACHINE")); err == nil && machine != "" {
		fmt.Printf("WM_CLIENT_MACHINE: %s\n", machine)
	}
	return 0
}
