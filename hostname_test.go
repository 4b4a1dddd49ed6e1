package sash

import (
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

func TestLookupHostname_GrowsUntilTheNameFits(t *testing.T) {
	name := strings.Repeat("n", 40) // needs the third buffer size (64)
	var sizes []int
	get := func(buf []byte) (int, error) {
		sizes = append(sizes, len(buf))
		if len(buf) < len(name) {
			return 0, unix.ENAMETOOLONG
		}
		return copy(buf, name), nil
	}

	got, ok := lookupHostname(get)
	if !ok || got != name {
		t.Fatalf("lookupHostname = %q, %v", got, ok)
	}
	want := []int{16, 32, 64}
	if len(sizes) != len(want) {
		t.Fatalf("buffer sizes %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("buffer sizes %v, want %v", sizes, want)
		}
	}
}

func TestLookupHostname_EINVALAlsoMeansTooSmall(t *testing.T) {
	calls := 0
	get := func(buf []byte) (int, error) {
		calls++
		if calls == 1 {
			return 0, unix.EINVAL
		}
		return copy(buf, "host"), nil
	}
	got, ok := lookupHostname(get)
	if !ok || got != "host" {
		t.Fatalf("lookupHostname = %q, %v", got, ok)
	}
	if calls != 2 {
		t.Fatalf("made %d calls, want 2", calls)
	}
}

func TestLookupHostname_GivesUpAtTheCeiling(t *testing.T) {
	calls := 0
	get := func([]byte) (int, error) {
		calls++
		return 0, unix.ENAMETOOLONG
	}
	if _, ok := lookupHostname(get); ok {
		t.Fatal("resolved a name that never fit")
	}
	// 16 doubling to 64 KiB inclusive is 13 attempts.
	if calls != 13 {
		t.Fatalf("made %d attempts, want 13", calls)
	}
}

func TestLookupHostname_HardFailureStopsImmediately(t *testing.T) {
	calls := 0
	get := func([]byte) (int, error) {
		calls++
		return 0, unix.EPERM
	}
	if _, ok := lookupHostname(get); ok {
		t.Fatal("resolved a name from a failing getter")
	}
	if calls != 1 {
		t.Fatalf("made %d calls, want 1", calls)
	}
}
