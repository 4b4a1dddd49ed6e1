package sash

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/paneless/sash/internal/xb"
)

// fakeAPI is an in-memory capability table. Tests script its event queue
// and inspect the requests the library issued against it.
type fakeAPI struct {
	nextID    xproto.Window
	idErr     error
	internErr map[string]error
	atoms     map[string]xproto.Atom
	atomOrder []string

	extOpcode  byte
	extPresent bool
	extErr     error

	keymap    *xb.Keymap
	keymapErr error

	queue []pollItem

	createErr error
	selectErr error
	mapErr    error
	flushErr  error

	props     []propWrite
	destroyed []xproto.Window
	flushes   int
	closed    bool

	screens    []xb.Screen
	screensErr error
}

type pollItem struct {
	ev  xgb.Event
	err xgb.Error
}

type propWrite struct {
	window xproto.Window
	prop   xproto.Atom
	typ    xproto.Atom
	format byte
	data   []byte
}

var _ xb.API = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		extOpcode:  131,
		extPresent: true,
		keymap:     testKeymap(),
	}
}

func (f *fakeAPI) InternAtom(name string) (xproto.Atom, error) {
	if err := f.internErr[name]; err != nil {
		return 0, err
	}
	f.atomOrder = append(f.atomOrder, name)
	if f.atoms == nil {
		f.atoms = make(map[string]xproto.Atom)
	}
	a, ok := f.atoms[name]
	if !ok {
		a = xproto.Atom(100 + len(f.atoms))
		f.atoms[name] = a
	}
	return a, nil
}

func (f *fakeAPI) QueryExtension(string) (byte, bool, error) {
	return f.extOpcode, f.extPresent, f.extErr
}

func (f *fakeAPI) GenerateID() (xproto.Window, error) {
	if f.idErr != nil {
		return 0, f.idErr
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeAPI) CreateWindow(xproto.Window, uint16, uint16, uint32) error {
	return f.createErr
}

func (f *fakeAPI) SelectEvents(xproto.Window, uint32) error {
	return f.selectErr
}

func (f *fakeAPI) ChangeProperty(id xproto.Window, prop, typ xproto.Atom, format byte, data []byte) {
	f.props = append(f.props, propWrite{id, prop, typ, format, data})
}

func (f *fakeAPI) MapWindow(xproto.Window) error {
	return f.mapErr
}

func (f *fakeAPI) DestroyWindow(id xproto.Window) {
	f.destroyed = append(f.destroyed, id)
}

func (f *fakeAPI) PollEvent() (xgb.Event, xgb.Error) {
	if len(f.queue) == 0 {
		return nil, nil
	}
	item := f.queue[0]
	f.queue = f.queue[1:]
	return item.ev, item.err
}

func (f *fakeAPI) Flush() error {
	f.flushes++
	return f.flushErr
}

func (f *fakeAPI) KeyboardMapping() (*xb.Keymap, error) {
	if f.keymapErr != nil {
		return nil, f.keymapErr
	}
	return f.keymap, nil
}

func (f *fakeAPI) Screens() ([]xb.Screen, error) {
	return f.screens, f.screensErr
}

func (f *fakeAPI) Close() {
	f.closed = true
}

func (f *fakeAPI) enqueue(evs ...xgb.Event) {
	for _, ev := range evs {
		f.queue = append(f.queue, pollItem{ev: ev})
	}
}

// propFor returns the writes against a given property atom.
func (f *fakeAPI) propFor(prop xproto.Atom) []propWrite {
	var out []propWrite
	for _, p := range f.props {
		if p.prop == prop {
			out = append(out, p)
		}
	}
	return out
}

// testKeymap maps a handful of keycodes the tests use:
// 38 -> 'a'/'A', 90 -> KP_Insert/KP_0 (base unmapped, keypad under shift),
// 111 -> Up arrow, 99 -> nothing at all.
func testKeymap() *xb.Keymap {
	const first, last = 8, 255
	syms := make([]xproto.Keysym, (last-first+1)*2)
	set := func(code int, base, shifted xproto.Keysym) {
		syms[(code-first)*2] = base
		syms[(code-first)*2+1] = shifted
	}
	set(38, 0x61, 0x41)
	set(90, 0xFF9E, 0xFFB0)
	set(111, 0xFF52, 0)
	return &xb.Keymap{First: first, PerCode: 2, Syms: syms}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func hostnameOf(name string) func([]byte) (int, error) {
	return func(buf []byte) (int, error) {
		return copy(buf, name), nil
	}
}

var errHostnameUnavailable = errors.New("hostname unavailable")

func noHostname([]byte) (int, error) {
	return 0, errHostnameUnavailable
}

// newTestConn builds a connection over a fake table with a resolvable
// hostname.
func newTestConn(t *testing.T, f *fakeAPI) *Connection {
	t.Helper()
	c, err := newConnection(f, hostnameOf("testhost"), testLogger())
	if err != nil {
		t.Fatalf("newConnection: %v", err)
	}
	return c
}

func mustWindow(t *testing.T, c *Connection, title string) *Window {
	t.Helper()
	w, err := NewWindow(c, title)
	if err != nil {
		t.Fatalf("NewWindow(%q): %v", title, err)
	}
	return w
}

func keyPress(win xproto.Window, code xproto.Keycode, time xproto.Timestamp) xproto.KeyPressEvent {
	return xproto.KeyPressEvent{Detail: code, Time: time, Event: win}
}

func keyRelease(win xproto.Window, code xproto.Keycode, time xproto.Timestamp) xproto.KeyReleaseEvent {
	return xproto.KeyReleaseEvent(keyPress(win, code, time))
}

func clientMessage(win xproto.Window, format byte, typ xproto.Atom, firstWord uint32) xproto.ClientMessageEvent {
	return xproto.ClientMessageEvent{
		Format: format,
		Window: win,
		Type:   typ,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{firstWord, 0, 0, 0, 0}),
	}
}
