package sash

import (
	"errors"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/paneless/sash/internal/xb"
)

// The complete error surface of connection and window construction. Every
// failure wraps exactly one of these; none are retriable at this layer.
var (
	// ErrSystemResources covers allocation, identifier or memory
	// exhaustion on either side of the wire.
	ErrSystemResources = errors.New("sash: out of system resources")

	// ErrUnsupported means a required protocol extension or capability is
	// absent from the server.
	ErrUnsupported = errors.New("sash: required capability not supported")

	// ErrInvalid is a malformed parameter or a protocol-level rejection
	// not attributable to resources.
	ErrInvalid = errors.New("sash: invalid parameter")

	// ErrUnknown is an undiagnosable native failure, including failures
	// the protocol defines as unreachable.
	ErrUnknown = errors.New("sash: unknown windowing system failure")
)

// wireError classifies a low-level X failure into the public taxonomy.
func wireError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, xb.ErrUnavailable) {
		return ErrUnsupported
	}
	switch err.(type) {
	case xproto.AllocError:
		return ErrSystemResources
	case xproto.MatchError, xproto.ValueError:
		return ErrInvalid
	}
	return ErrUnknown
}
