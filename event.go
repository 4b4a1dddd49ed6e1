package sash

// CloseReason says what asked for the window to close.
type CloseReason uint8

const (
	// CloseSystemMenu is the window manager's close affordance: the title
	// bar button, the system menu, Alt+F4.
	CloseSystemMenu CloseReason = iota
)

// Event is one window-system event. It is a sealed interface; the concrete
// types are CloseRequest, KeyDown, KeyUp, KeyRepeat and Focus. Events are
// immutable once produced and belong to exactly one window's buffer.
type Event interface {
	isEvent()
}

// CloseRequest reports that something asked for the window to close. The
// window is not closed until the caller does so.
type CloseRequest struct {
	Reason CloseReason
}

// KeyDown reports a key going down.
type KeyDown struct {
	Key Key
}

// KeyUp reports a key coming back up.
type KeyUp struct {
	Key Key
}

// KeyRepeat reports a key held long enough for the server's auto-repeat.
type KeyRepeat struct {
	Key Key
}

// Focus reports the window gaining (true) or losing (false) input focus.
type Focus struct {
	Gained bool
}

func (CloseRequest) isEvent() {}
func (KeyDown) isEvent()      {}
func (KeyUp) isEvent()        {}
func (KeyRepeat) isEvent()    {}
func (Focus) isEvent()        {}
