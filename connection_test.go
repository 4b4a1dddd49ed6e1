package sash

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestNewConnection_InternsAtomsInOrder(t *testing.T) {
	f := newFakeAPI()
	c := newTestConn(t, f)

	want := []string{
		"WM_PROTOCOLS",
		"WM_DELETE_WINDOW",
		"_NET_WM_NAME",
		"UTF8_STRING",
		"_NET_WM_PID",
		"WM_CLIENT_MACHINE",
	}
	if len(f.atomOrder) != len(want) {
		t.Fatalf("interned %d atoms, want %d", len(f.atomOrder), len(want))
	}
	for i, name := range want {
		if f.atomOrder[i] != name {
			t.Fatalf("atom %d: interned %q, want %q", i, f.atomOrder[i], name)
		}
	}
	if c.atoms.wmProtocols != f.atoms["WM_PROTOCOLS"] {
		t.Fatalf("WM_PROTOCOLS cached as %d, interned as %d",
			c.atoms.wmProtocols, f.atoms["WM_PROTOCOLS"])
	}
	if c.atoms.wmDeleteWindow != f.atoms["WM_DELETE_WINDOW"] {
		t.Fatalf("WM_DELETE_WINDOW cached as %d, interned as %d",
			c.atoms.wmDeleteWindow, f.atoms["WM_DELETE_WINDOW"])
	}
}

func TestNewConnection_AtomFailureIsResourceError(t *testing.T) {
	f := newFakeAPI()
	f.internErr = map[string]error{"UTF8_STRING": errors.New("boom")}

	_, err := newConnection(f, hostnameOf("h"), testLogger())
	if !errors.Is(err, ErrSystemResources) {
		t.Fatalf("expected ErrSystemResources, got %v", err)
	}
}

func TestNewConnection_MissingInputExtensionIsUnsupported(t *testing.T) {
	f := newFakeAPI()
	f.extPresent = false

	_, err := newConnection(f, hostnameOf("h"), testLogger())
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestNewConnection_ExtensionQueryFailureIsResourceError(t *testing.T) {
	f := newFakeAPI()
	f.extErr = errors.New("reply lost")

	_, err := newConnection(f, hostnameOf("h"), testLogger())
	if !errors.Is(err, ErrSystemResources) {
		t.Fatalf("expected ErrSystemResources, got %v", err)
	}
}

func TestNewConnection_CachesExtensionOpcode(t *testing.T) {
	f := newFakeAPI()
	f.extOpcode = 142
	c := newTestConn(t, f)

	if c.InputOpcode() != 142 {
		t.Fatalf("InputOpcode() = %d, want 142", c.InputOpcode())
	}
}

func TestNewConnection_KeymapFailureIsClassified(t *testing.T) {
	f := newFakeAPI()
	f.keymapErr = xproto.AllocError{}

	_, err := newConnection(f, hostnameOf("h"), testLogger())
	if !errors.Is(err, ErrSystemResources) {
		t.Fatalf("expected ErrSystemResources, got %v", err)
	}
}

func TestNewConnection_HostnameFailureIsNotFatal(t *testing.T) {
	f := newFakeAPI()
	c, err := newConnection(f, noHostname, testLogger())
	if err != nil {
		t.Fatalf("newConnection: %v", err)
	}
	if c.hasHostname {
		t.Fatalf("hostname should be unresolved")
	}
}

func TestConnectionClose_InstallsUnavailableTable(t *testing.T) {
	f := newFakeAPI()
	c := newTestConn(t, f)

	c.Close()
	if !f.closed {
		t.Fatalf("underlying connection not closed")
	}

	// A straggler create on the closed connection must fail with a typed
	// error rather than reach the dead connection.
	if _, err := NewWindow(c, "late"); !errors.Is(err, ErrSystemResources) {
		t.Fatalf("create after close: expected ErrSystemResources, got %v", err)
	}
	if f.nextID != 0 {
		t.Fatalf("closed connection still allocated an id")
	}
}

func TestScreens_Classified(t *testing.T) {
	f := newFakeAPI()
	f.screens = []Screen{{Name: "eDP-1", Width: 1920, Height: 1080}}
	c := newTestConn(t, f)

	screens, err := c.Screens()
	if err != nil {
		t.Fatalf("Screens: %v", err)
	}
	if len(screens) != 1 || screens[0].Name != "eDP-1" {
		t.Fatalf("unexpected screens: %+v", screens)
	}

	f.screensErr = xproto.AllocError{}
	if _, err := c.Screens(); !errors.Is(err, ErrSystemResources) {
		t.Fatalf("expected ErrSystemResources, got %v", err)
	}
}
