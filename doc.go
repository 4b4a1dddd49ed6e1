// Package sash maintains one shared connection to an X server, creates
// windows on it, and delivers window-system events (keyboard, focus, close
// requests) to the window they belong to.
//
// A single Connection is multiplexed across any number of windows, possibly
// polled from different goroutines. Each window owns a local event buffer;
// events pulled off the wire during one window's poll that belong to another
// live window are parked in that window's mailbox inside the connection and
// handed over on its next poll. Events for windows that no longer exist (or
// do not exist yet) are dropped.
//
// Polling is a manual, non-blocking action. Call (*Window).Poll on a cadence
// of at most a few seconds per window, or the server's unresponsiveness
// heuristics may kick in.
package sash
