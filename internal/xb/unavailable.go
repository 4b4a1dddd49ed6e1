package xb

import (
	"errors"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// ErrUnavailable is returned by every operation on an Unavailable table.
var ErrUnavailable = errors.New("xb: connection unavailable")

// Unavailable is the permanently-invalid capability table. It is installed
// in place of the live table once a connection is torn down, so a straggler
// call through a leaked handle returns a typed error instead of touching a
// dead connection. None of its methods should be reachable in a correct
// program.
type Unavailable struct{}

var _ API = Unavailable{}

func (Unavailable) InternAtom(string) (xproto.Atom, error) { return 0, ErrUnavailable }

func (Unavailable) QueryExtension(string) (byte, bool, error) { return 0, false, ErrUnavailable }

func (Unavailable) GenerateID() (xproto.Window, error) { return 0, ErrUnavailable }

func (Unavailable) CreateWindow(xproto.Window, uint16, uint16, uint32) error {
	return ErrUnavailable
}

func (Unavailable) SelectEvents(xproto.Window, uint32) error { return ErrUnavailable }

func (Unavailable) ChangeProperty(xproto.Window, xproto.Atom, xproto.Atom, byte, []byte) {}

func (Unavailable) MapWindow(xproto.Window) error { return ErrUnavailable }

func (Unavailable) DestroyWindow(xproto.Window) {}

func (Unavailable) PollEvent() (xgb.Event, xgb.Error) { return nil, nil }

func (Unavailable) Flush() error { return ErrUnavailable }

func (Unavailable) KeyboardMapping() (*Keymap, error) { return nil, ErrUnavailable }

func (Unavailable) Screens() ([]Screen, error) { return nil, ErrUnavailable }

func (Unavailable) Close() {}
