// Package xb resolves and bundles the X protocol entry points the library
// depends on. Callers receive the operations as an injected interface so
// that an unavailable backend is an explicit value rather than a nil-pointer
// hazard.
package xb

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// API is the capability table: every X server operation the library issues.
// The live implementation is produced by Connect; Unavailable is the
// permanently-invalid variant.
type API interface {
	// InternAtom synchronously resolves a protocol atom by name.
	InternAtom(name string) (xproto.Atom, error)
	// QueryExtension reports whether the named extension is present and,
	// if so, its major opcode.
	QueryExtension(name string) (opcode byte, present bool, err error)
	// GenerateID allocates a fresh resource identifier.
	GenerateID() (xproto.Window, error)
	// CreateWindow issues a checked window-creation request against the
	// default screen's root with the given geometry and event mask.
	CreateWindow(id xproto.Window, width, height uint16, eventMask uint32) error
	// SelectEvents replaces the window's event mask. Checked so a protocol
	// rejection is visible to the caller.
	SelectEvents(id xproto.Window, eventMask uint32) error
	// ChangeProperty replaces a window property. Fire-and-forget: property
	// writes are best effort and their results are deliberately discarded.
	ChangeProperty(id xproto.Window, prop, typ xproto.Atom, format byte, data []byte)
	// MapWindow issues a checked map request.
	MapWindow(id xproto.Window) error
	// DestroyWindow issues an unchecked destroy request.
	DestroyWindow(id xproto.Window)
	// PollEvent returns the next queued event without blocking. Both
	// results are nil when the queue is empty; a non-nil xgb.Error is a
	// wire error from an earlier unchecked request.
	PollEvent() (xgb.Event, xgb.Error)
	// Flush forces completion of all outstanding requests via a round
	// trip and reports the connection state.
	Flush() error
	// KeyboardMapping snapshots the server's keycode-to-keysym table.
	KeyboardMapping() (*Keymap, error)
	// Screens lists the active RandR outputs.
	Screens() ([]Screen, error)
	// Close drops the connection. The handle must be released exactly once.
	Close()
}

// Screen describes one active output on the display.
type Screen struct {
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// Keymap is a read-only keycode-to-keysym table. Column 0 holds the base
// keysym for a keycode, column 1 the keysym under shift.
type Keymap struct {
	First   xproto.Keycode
	PerCode int
	Syms    []xproto.Keysym
}

// Lookup returns the keysym for a keycode in the given column, or 0 when
// the keycode or column is outside the table.
func (k *Keymap) Lookup(code xproto.Keycode, column int) xproto.Keysym {
	if k == nil || k.PerCode == 0 || code < k.First || column >= k.PerCode {
		return 0
	}
	i := int(code-k.First)*k.PerCode + column
	if i < 0 || i >= len(k.Syms) {
		return 0
	}
	return k.Syms[i]
}

// wire is the xgb-backed capability table.
type wire struct {
	conn   *xgb.Conn
	setup  *xproto.SetupInfo
	screen *xproto.ScreenInfo
}

// Connect opens a display connection and selects the default screen record
// by its ordinal in the setup's root list. An empty display means $DISPLAY.
func Connect(display string) (API, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}
	setup := xproto.Setup(conn)
	if conn.DefaultScreen < 0 || conn.DefaultScreen >= len(setup.Roots) {
		conn.Close()
		return nil, fmt.Errorf("xb: setup has no screen %d", conn.DefaultScreen)
	}
	return &wire{
		conn:   conn,
		setup:  setup,
		screen: &setup.Roots[conn.DefaultScreen],
	}, nil
}

func (w *wire) InternAtom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(w.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Atom, nil
}

func (w *wire) QueryExtension(name string) (byte, bool, error) {
	reply, err := xproto.QueryExtension(w.conn, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, false, err
	}
	return reply.MajorOpcode, reply.Present, nil
}

func (w *wire) GenerateID() (xproto.Window, error) {
	return xproto.NewWindowId(w.conn)
}

func (w *wire) CreateWindow(id xproto.Window, width, height uint16, eventMask uint32) error {
	// Depth and visual are both CopyFromParent (0), matching the root.
	return xproto.CreateWindowChecked(w.conn,
		0,
		id, w.screen.Root,
		0, 0, width, height, 0,
		xproto.WindowClassInputOutput,
		0,
		xproto.CwEventMask, []uint32{eventMask},
	).Check()
}

func (w *wire) SelectEvents(id xproto.Window, eventMask uint32) error {
	return xproto.ChangeWindowAttributesChecked(w.conn, id,
		xproto.CwEventMask, []uint32{eventMask}).Check()
}

func (w *wire) ChangeProperty(id xproto.Window, prop, typ xproto.Atom, format byte, data []byte) {
	units := uint32(len(data)) / uint32(format/8)
	xproto.ChangeProperty(w.conn, xproto.PropModeReplace, id, prop, typ, format, units, data)
}

func (w *wire) MapWindow(id xproto.Window) error {
	return xproto.MapWindowChecked(w.conn, id).Check()
}

func (w *wire) DestroyWindow(id xproto.Window) {
	xproto.DestroyWindow(w.conn, id)
}

func (w *wire) PollEvent() (xgb.Event, xgb.Error) {
	return w.conn.PollForEvent()
}

func (w *wire) Flush() error {
	// xgb writes requests eagerly and exposes no client-side flush result,
	// so a GetInputFocus round trip stands in: it both drains the pipe and
	// reports a dead connection.
	_, err := xproto.GetInputFocus(w.conn).Reply()
	return err
}

func (w *wire) KeyboardMapping() (*Keymap, error) {
	first := w.setup.MinKeycode
	count := byte(w.setup.MaxKeycode - first + 1)
	reply, err := xproto.GetKeyboardMapping(w.conn, first, count).Reply()
	if err != nil {
		return nil, err
	}
	return &Keymap{
		First:   first,
		PerCode: int(reply.KeysymsPerKeycode),
		Syms:    reply.Keysyms,
	}, nil
}

func (w *wire) Screens() ([]Screen, error) {
	if err := randr.Init(w.conn); err != nil {
		return nil, fmt.Errorf("xb: randr init: %w", err)
	}
	resources, err := randr.GetScreenResources(w.conn, w.screen.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("xb: screen resources: %w", err)
	}
	var screens []Screen
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(w.conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Disabled CRTCs report zero size and no outputs.
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}
		name := fmt.Sprintf("screen%d", i)
		if out, err := randr.GetOutputInfo(w.conn, info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}
		screens = append(screens, Screen{
			Name:   name,
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}
	return screens, nil
}

func (w *wire) Close() {
	w.conn.Close()
}
