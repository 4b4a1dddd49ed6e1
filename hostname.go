package sash

import (
	"bytes"
	"errors"

	"golang.org/x/sys/unix"
)

const (
	hostnameStartLen = 16
	hostnameMaxLen   = 1 << 16
)

// gethostname fills buf with the local host name and returns its length,
// mirroring gethostname(2): ENAMETOOLONG when buf cannot hold the name.
func gethostname(buf []byte) (int, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return 0, err
	}
	name := uts.Nodename[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	if len(name) > len(buf) {
		return 0, unix.ENAMETOOLONG
	}
	return copy(buf, name), nil
}

// lookupHostname resolves the machine name into a growing buffer, starting
// at 16 bytes and doubling up to a 64 KiB ceiling. ENAMETOOLONG and EINVAL
// both mean the name did not fit. Failure is not fatal: the caller omits
// the properties that need the name (_NET_WM_PID may only be written when
// WM_CLIENT_MACHINE is too).
func lookupHostname(get func([]byte) (int, error)) (string, bool) {
	for size := hostnameStartLen; size <= hostnameMaxLen; size *= 2 {
		buf := make([]byte, size)
		n, err := get(buf)
		if err == nil {
			return string(buf[:n]), true
		}
		if !errors.Is(err, unix.ENAMETOOLONG) && !errors.Is(err, unix.EINVAL) {
			return "", false
		}
	}
	return "", false
}
