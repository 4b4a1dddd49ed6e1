package sash

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestKeysymToKey(t *testing.T) {
	cases := []struct {
		name          string
		base, shifted xproto.Keysym
		want          Key
		ok            bool
	}{
		{"lowercase letter", 0x61, 0x41, KeyA, true},
		{"digit row", 0x30, 0x29, Key0, true},
		{"comma", 0x2C, 0x3C, KeyComma, true},
		{"escape", 0xFF1B, 0xFF1B, KeyEscape, true},
		{"function key", 0xFFBE, 0xFFBE, KeyF1, true},
		{"left shift", 0xFFE1, 0xFFE1, KeyLeftShift, true},
		{"delete", 0xFFFF, 0xFFFF, KeyDelete, true},
		// Keypad keys resolve through the shifted column: with NumLock
		// off the base column holds the navigation symbol, which for
		// KP_Insert is not mapped at all.
		{"keypad zero via shift column", 0xFF9E, 0xFFB0, KeyKeypad0, true},
		{"keypad zero, base unmapped", 0, 0xFFB0, KeyKeypad0, true},
		{"keypad divide", 0xFFAF, 0xFFAF, KeyKeypadDivide, true},
		{"nothing mapped", 0, 0, 0, false},
		{"media key", 0x1008FF11, 0x1008FF11, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := keysymToKey(tc.base, tc.shifted)
			if ok != tc.ok {
				t.Fatalf("keysymToKey(%#x, %#x) ok = %v, want %v",
					tc.base, tc.shifted, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("keysymToKey(%#x, %#x) = %v, want %v",
					tc.base, tc.shifted, got, tc.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if got := KeyA.String(); got != "A" {
		t.Fatalf("KeyA.String() = %q", got)
	}
	if got := KeyUpArrow.String(); got != "UpArrow" {
		t.Fatalf("KeyUpArrow.String() = %q", got)
	}
	if got := Key(255).String(); got == "" {
		t.Fatal("unknown key produced an empty string")
	}
}
