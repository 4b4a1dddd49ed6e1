package sash

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Poll discards the window's previous event batch, takes over whatever other
// windows' polls parked in its mailbox, then drains the server queue,
// routing every classified event to its owner. Query the result with
// Events. Poll must be called regularly (at most every few seconds) so the
// server keeps considering the client responsive.
func (w *Window) Poll() {
	c := w.conn
	c.mu.Lock()
	defer c.mu.Unlock()
	if w.closed {
		return
	}

	// Trade buffers with the mailbox slot: the mailboxed events become the
	// new local batch and the old batch's storage becomes the empty
	// mailbox. The slot always exists for a live window; if caller code
	// has somehow removed it, do nothing rather than fail.
	w.events = w.events[:0]
	if q, ok := c.mailboxes[w.id]; ok {
		w.events, c.mailboxes[w.id] = q, w.events
	}

	c.drain(w.id, &w.events)
}

// drain empties the server-side event queue, classifying and routing each
// event. self and local identify the polling window's buffer so its own
// events skip the mailbox round trip; during the pre-creation drain there
// is no local buffer and everything routes through mailboxes.
//
// The decoded event value is dropped as soon as classification is done,
// making classify-then-release a single step from the caller's view.
func (c *Connection) drain(self xproto.Window, local *[]Event) {
	for {
		raw, xerr := c.api.PollEvent()
		if xerr != nil {
			// Wire errors from earlier unchecked requests surface here.
			// They carry no routing target; record and move on.
			c.log.Debug("sash: dropping wire error", "err", xerr.Error())
			continue
		}
		if raw == nil {
			return
		}

		switch ev := raw.(type) {
		case xproto.KeyPressEvent:
			key, ok := c.lookupKey(ev.Detail)
			if !ok {
				continue
			}
			// Auto-repeat shows up as a release and press with the same
			// keycode and timestamp; the press half becomes a repeat.
			if c.lastRelease == (keyStamp{ev.Detail, ev.Time, ev.Event}) {
				c.route(KeyRepeat{Key: key}, ev.Event, self, local)
			} else {
				c.route(KeyDown{Key: key}, ev.Event, self, local)
			}

		case xproto.KeyReleaseEvent:
			c.lastRelease = keyStamp{ev.Detail, ev.Time, ev.Event}
			key, ok := c.lookupKey(ev.Detail)
			if !ok {
				continue
			}
			c.route(KeyUp{Key: key}, ev.Event, self, local)

		case xproto.FocusInEvent:
			c.route(Focus{Gained: true}, ev.Event, self, local)

		case xproto.FocusOutEvent:
			c.route(Focus{Gained: false}, ev.Event, self, local)

		case xproto.ClientMessageEvent:
			// The close handshake is a 32-bit WM_PROTOCOLS message whose
			// first data word is WM_DELETE_WINDOW. Anything else differing
			// in any of the three fields is not for us.
			if ev.Format == 32 && ev.Type == c.atoms.wmProtocols &&
				len(ev.Data.Data32) > 0 &&
				xproto.Atom(ev.Data.Data32[0]) == c.atoms.wmDeleteWindow {
				c.route(CloseRequest{Reason: CloseSystemMenu}, ev.Window, self, local)
			}

		case xproto.ButtonPressEvent, xproto.ButtonReleaseEvent,
			xproto.MotionNotifyEvent,
			xproto.EnterNotifyEvent, xproto.LeaveNotifyEvent:
			// Selected so the window receives them first, but pointer
			// input is not part of the event surface yet: consume and
			// drop.

		default:
			// Not an event this library understands; drop.
		}
	}
}

// route delivers one classified event. The polling window's events go
// straight to its local buffer; anything else lands in the target's mailbox
// if it has one. A target without a mailbox has no owner (not created yet,
// or already destroyed) and the event is dropped.
func (c *Connection) route(ev Event, target xproto.Window, self xproto.Window, local *[]Event) {
	if local != nil && target == self {
		*local = append(*local, ev)
		return
	}
	if q, ok := c.mailboxes[target]; ok {
		c.mailboxes[target] = append(q, ev)
	}
}

// lookupKey resolves a keycode through the keyboard mapping snapshot: the
// base keysym plus the keysym under shift, mapped together to an abstract
// key. Unmapped pairs produce no event, only a diagnostic.
func (c *Connection) lookupKey(code xproto.Keycode) (Key, bool) {
	base := c.keymap.Lookup(code, 0)
	shifted := c.keymap.Lookup(code, 1)
	key, ok := keysymToKey(base, shifted)
	if !ok {
		c.log.Debug("sash: unmapped key",
			"keysym", fmt.Sprintf("%#x", uint32(base)),
			"shifted", fmt.Sprintf("%#x", uint32(shifted)))
	}
	return key, ok
}
