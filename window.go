package sash

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Window geometry is fixed at creation. Sizing, styling and decoration
// belong to the caller's toolkit, not to this library.
const (
	defaultWidth  = 800
	defaultHeight = 608
)

// inputEventMask is the full input selection a window asks for once it
// exists: keyboard, buttons, motion, crossing and focus.
const inputEventMask = xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskFocusChange

// Window is one on-screen surface. Its event buffer is owned exclusively by
// the caller that polls it; the shared connection only ever touches the
// window's mailbox slot.
type Window struct {
	conn   *Connection
	id     xproto.Window
	events []Event
	closed bool
}

// NewWindow creates, titles and maps a window on c. The whole creation
// sequence runs under the connection lock so it is atomic with respect to
// other windows' creation and poll cycles.
func NewWindow(c *Connection, title string) (*Window, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, err := c.api.GenerateID()
	if err != nil {
		// ID generation fails when the identifier space is exhausted or
		// the connection has broken; the wire reports both the same way.
		return nil, fmt.Errorf("sash: allocate window id: %w", ErrSystemResources)
	}

	// The server recycles identifiers. Drain anything already queued so
	// stale events addressed to a previous owner of this id cannot leak
	// into the new window's mailbox; events for other live windows found
	// here are parked as normal.
	c.drain(0, nil)

	// ButtonPress is an exclusive grab, so request it in CreateWindow:
	// selecting it after mapping can race the server delivering the first
	// click to another client.
	if err := c.api.CreateWindow(id, defaultWidth, defaultHeight, xproto.EventMaskButtonPress); err != nil {
		// The only resource-attributable rejection is Alloc; Match and
		// Value mean a bad parameter.
		switch err.(type) {
		case xproto.AllocError:
			return nil, fmt.Errorf("sash: create window: %w", ErrSystemResources)
		default:
			return nil, fmt.Errorf("sash: create window: %w", ErrInvalid)
		}
	}

	// Widen the selection to the full input set. Best effort: checked so
	// the request completes, result discarded.
	_ = c.api.SelectEvents(id, inputEventMask)

	// Register WM_DELETE_WINDOW in WM_PROTOCOLS so the window manager
	// delivers its close affordance as a client message instead of
	// killing the connection.
	c.api.ChangeProperty(id, c.atoms.wmProtocols, xproto.AtomAtom, 32, atomBytes(c.atoms.wmDeleteWindow))

	// Multibyte titles render incorrectly in WM_NAME, but window managers
	// that understand _NET_WM_NAME (UTF-8) prefer it; write both so the
	// rest still show something.
	c.api.ChangeProperty(id, c.atoms.netWMName, c.atoms.utf8String, 8, []byte(title))
	c.api.ChangeProperty(id, xproto.AtomWmName, xproto.AtomString, 8, []byte(title))

	// "If _NET_WM_PID is set, the ICCCM-specified property
	// WM_CLIENT_MACHINE MUST also be set." Write the pair or neither.
	if c.hasHostname {
		c.api.ChangeProperty(id, c.atoms.netWMPid, xproto.AtomCardinal, 32, cardinalBytes(uint32(os.Getpid())))
		c.api.ChangeProperty(id, c.atoms.wmClientMachine, xproto.AtomString, 8, []byte(c.hostname))
	}

	if err := c.api.MapWindow(id); err != nil {
		// Mapping can only be rejected for a bad window id, which cannot
		// happen for an id we just created.
		return nil, fmt.Errorf("sash: map window: %w", wireError(err))
	}

	// Register the mailbox slot even for callers that never poll: routing
	// always needs a slot to target, and the map must hold exactly one
	// entry per live window.
	c.mailboxes[id] = make([]Event, 0, mailboxCap)

	if err := c.api.Flush(); err != nil {
		delete(c.mailboxes, id)
		return nil, fmt.Errorf("sash: flush: %w", wireError(err))
	}

	return &Window{
		conn:   c,
		id:     id,
		events: make([]Event, 0, mailboxCap),
	}, nil
}

// ID exposes the native window identifier for interop with other X
// libraries on the same display.
func (w *Window) ID() xproto.Window {
	return w.id
}

// Events returns the events gathered by the most recent Poll, oldest first.
// The slice is stable until the next Poll on this window and must not be
// mutated.
func (w *Window) Events() []Event {
	return w.events
}

// Close destroys the window and removes its mailbox slot, so the identifier
// can never be routed to again. Teardown failures are swallowed: nothing
// actionable remains. Close is idempotent.
func (w *Window) Close() {
	c := w.conn
	c.mu.Lock()
	defer c.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	c.api.DestroyWindow(w.id)
	_ = c.api.Flush()
	delete(c.mailboxes, w.id)
}

func atomBytes(a xproto.Atom) []byte {
	return cardinalBytes(uint32(a))
}

// cardinalBytes encodes one 32-bit property word in the connection's byte
// order (xgb always speaks LSB-first).
func cardinalBytes(v uint32) []byte {
	buf := make([]byte, 4)
	xgb.Put32(buf, v)
	return buf
}
