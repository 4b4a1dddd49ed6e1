package sash

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/paneless/sash/internal/xb"
)

// mailboxCap pre-sizes every event buffer. Events are small, so a large
// starting capacity is cheap and keeps the routing path allocation-free.
const mailboxCap = 256

// inputExtension must be present on the server for the connection to be
// usable; its absence is ErrUnsupported, not a degraded mode.
const inputExtension = "XInputExtension"

// atoms is the fixed set of protocol atoms interned at construction,
// read-only afterwards.
type atoms struct {
	wmProtocols     xproto.Atom
	wmDeleteWindow  xproto.Atom
	netWMName       xproto.Atom
	utf8String      xproto.Atom
	netWMPid        xproto.Atom
	wmClientMachine xproto.Atom
}

// keyStamp remembers the most recent key release so the demultiplexer can
// recognize the server's auto-repeat signature (a release and press with
// the same keycode and timestamp).
type keyStamp struct {
	code   xproto.Keycode
	time   xproto.Timestamp
	window xproto.Window
}

// Connection is the single shared link to the X server. All windows created
// from it share its atom cache, extension metadata and mailbox map; one
// mutex covers the capability table and all of that state together. A
// Connection must outlive every window created on it.
type Connection struct {
	log *slog.Logger

	mu          sync.Mutex
	api         xb.API
	atoms       atoms
	inputOpcode byte
	keymap      *xb.Keymap
	hostname    string
	hasHostname bool
	lastRelease keyStamp
	mailboxes   map[xproto.Window][]Event
}

// Connect opens a connection to the display named by $DISPLAY.
func Connect() (*Connection, error) {
	return ConnectDisplay("")
}

// ConnectDisplay opens a connection to the named display. Construction
// fails fast: an error leaves nothing behind, and the four sentinel errors
// in this package are its complete failure surface.
func ConnectDisplay(display string) (*Connection, error) {
	api, err := xb.Connect(display)
	if err != nil {
		// The open call reports nothing useful about why.
		return nil, fmt.Errorf("sash: open display: %w", ErrUnknown)
	}
	c, err := newConnection(api, gethostname, slog.Default())
	if err != nil {
		api.Close()
		return nil, err
	}
	return c, nil
}

// newConnection runs the construction protocol against an already-open
// capability table. Split from ConnectDisplay so tests can inject a table
// and a hostname source.
func newConnection(api xb.API, hostname func([]byte) (int, error), log *slog.Logger) (*Connection, error) {
	c := &Connection{
		log:       log,
		api:       api,
		mailboxes: make(map[xproto.Window][]Event),
	}

	// Intern the protocol atoms synchronously, in a fixed order. The names
	// are fixed and valid, so a miss can only be an allocation or
	// connection failure.
	for _, slot := range []struct {
		name string
		dst  *xproto.Atom
	}{
		{"WM_PROTOCOLS", &c.atoms.wmProtocols},
		{"WM_DELETE_WINDOW", &c.atoms.wmDeleteWindow},
		{"_NET_WM_NAME", &c.atoms.netWMName},
		{"UTF8_STRING", &c.atoms.utf8String},
		{"_NET_WM_PID", &c.atoms.netWMPid},
		{"WM_CLIENT_MACHINE", &c.atoms.wmClientMachine},
	} {
		a, err := api.InternAtom(slot.name)
		if err != nil {
			return nil, fmt.Errorf("sash: intern %s: %w", slot.name, ErrSystemResources)
		}
		*slot.dst = a
	}

	opcode, present, err := api.QueryExtension(inputExtension)
	if err != nil {
		return nil, fmt.Errorf("sash: query %s: %w", inputExtension, ErrSystemResources)
	}
	if !present {
		return nil, fmt.Errorf("sash: %s: %w", inputExtension, ErrUnsupported)
	}
	c.inputOpcode = opcode

	km, err := api.KeyboardMapping()
	if err != nil {
		return nil, fmt.Errorf("sash: keyboard mapping: %w", wireError(err))
	}
	c.keymap = km

	c.hostname, c.hasHostname = lookupHostname(hostname)

	return c, nil
}

// InputOpcode returns the major opcode of the input extension, for interop
// with other X libraries on the same display.
func (c *Connection) InputOpcode() byte {
	return c.inputOpcode
}

// Screens lists the active outputs on this display.
func (c *Connection) Screens() ([]Screen, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	screens, err := c.api.Screens()
	if err != nil {
		return nil, fmt.Errorf("sash: list screens: %w", wireError(err))
	}
	return screens, nil
}

// Close flushes outstanding requests and drops the server connection. It
// must only be called once every window created on this connection has been
// closed; because no window can still be live, no lock is taken. After
// Close, any straggler call through a leaked window fails with a typed
// error instead of touching the dead connection.
func (c *Connection) Close() {
	// A failed flush at teardown is not actionable.
	_ = c.api.Flush()
	c.api.Close()
	c.api = xb.Unavailable{}
}

// Screen describes one active output on the display.
type Screen = xb.Screen
