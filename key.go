package sash

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Key is an abstract key code, independent of layout and modifier state.
type Key uint8

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyComma
	KeyMinus
	KeyPeriod
	KeyEqual

	KeyBackspace
	KeyTab
	KeyReturn
	KeyPause
	KeyScrollLock
	KeyEscape
	KeyHome
	KeyLeftArrow
	KeyUpArrow
	KeyRightArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyInsert
	KeyDelete
	KeyNumLock
	KeyCapsLock

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightSuper

	KeyKeypadMultiply
	KeyKeypadAdd
	KeyKeypadSeparator
	KeyKeypadSubtract
	KeyKeypadDecimal
	KeyKeypadDivide
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
)

var keyNames = map[Key]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyComma:  "Comma",
	KeyMinus:  "Minus",
	KeyPeriod: "Period",
	KeyEqual:  "Equal",

	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeyReturn:     "Return",
	KeyPause:      "Pause",
	KeyScrollLock: "ScrollLock",
	KeyEscape:     "Escape",
	KeyHome:       "Home",
	KeyLeftArrow:  "LeftArrow",
	KeyUpArrow:    "UpArrow",
	KeyRightArrow: "RightArrow",
	KeyDownArrow:  "DownArrow",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyEnd:        "End",
	KeyInsert:     "Insert",
	KeyDelete:     "Delete",
	KeyNumLock:    "NumLock",
	KeyCapsLock:   "CapsLock",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14",
	KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22",
	KeyF23: "F23", KeyF24: "F24",

	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftAlt:      "LeftAlt",
	KeyLeftSuper:    "LeftSuper",
	KeyRightSuper:   "RightSuper",

	KeyKeypadMultiply:  "KeypadMultiply",
	KeyKeypadAdd:       "KeypadAdd",
	KeyKeypadSeparator: "KeypadSeparator",
	KeyKeypadSubtract:  "KeypadSubtract",
	KeyKeypadDecimal:   "KeypadDecimal",
	KeyKeypadDivide:    "KeypadDivide",
	KeyKeypad0:         "Keypad0",
	KeyKeypad1:         "Keypad1",
	KeyKeypad2:         "Keypad2",
	KeyKeypad3:         "Keypad3",
	KeyKeypad4:         "Keypad4",
	KeyKeypad5:         "Keypad5",
	KeyKeypad6:         "Keypad6",
	KeyKeypad7:         "Keypad7",
	KeyKeypad8:         "Keypad8",
	KeyKeypad9:         "Keypad9",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// keysymToKey maps a keysym pair to an abstract key code. base is the
// keycode's keysym with no modifiers, shifted the keysym under shift. The
// keymap ignores modifier state, so base carries the layout's "plain"
// symbol; keypad keys only distinguish themselves in the shifted column
// (their base column is the NumLock-off navigation symbol), which is why
// the keypad block is keyed off shifted when base is unmapped.
func keysymToKey(base, shifted xproto.Keysym) (Key, bool) {
	switch base {
	case 0x2C:
		return KeyComma, true
	case 0x2D:
		return KeyMinus, true
	case 0x2E:
		return KeyPeriod, true
	case 0x30:
		return Key0, true
	case 0x31:
		return Key1, true
	case 0x32:
		return Key2, true
	case 0x33:
		return Key3, true
	case 0x34:
		return Key4, true
	case 0x35:
		return Key5, true
	case 0x36:
		return Key6, true
	case 0x37:
		return Key7, true
	case 0x38:
		return Key8, true
	case 0x39:
		return Key9, true
	case 0x3D:
		return KeyEqual, true
	case 0x61:
		return KeyA, true
	case 0x62:
		return KeyB, true
	case 0x63:
		return KeyC, true
	case 0x64:
		return KeyD, true
	case 0x65:
		return KeyE, true
	case 0x66:
		return KeyF, true
	case 0x67:
		return KeyG, true
	case 0x68:
		return KeyH, true
	case 0x69:
		return KeyI, true
	case 0x6A:
		return KeyJ, true
	case 0x6B:
		return KeyK, true
	case 0x6C:
		return KeyL, true
	case 0x6D:
		return KeyM, true
	case 0x6E:
		return KeyN, true
	case 0x6F:
		return KeyO, true
	case 0x70:
		return KeyP, true
	case 0x71:
		return KeyQ, true
	case 0x72:
		return KeyR, true
	case 0x73:
		return KeyS, true
	case 0x74:
		return KeyT, true
	case 0x75:
		return KeyU, true
	case 0x76:
		return KeyV, true
	case 0x77:
		return KeyW, true
	case 0x78:
		return KeyX, true
	case 0x79:
		return KeyY, true
	case 0x7A:
		return KeyZ, true
	case 0xFF08:
		return KeyBackspace, true
	case 0xFF09:
		return KeyTab, true
	case 0xFF0D:
		return KeyReturn, true
	case 0xFF13:
		return KeyPause, true
	case 0xFF14:
		return KeyScrollLock, true
	case 0xFF1B:
		return KeyEscape, true
	case 0xFF50:
		return KeyHome, true
	case 0xFF51:
		return KeyLeftArrow, true
	case 0xFF52:
		return KeyUpArrow, true
	case 0xFF53:
		return KeyRightArrow, true
	case 0xFF54:
		return KeyDownArrow, true
	case 0xFF55:
		return KeyPageUp, true
	case 0xFF56:
		return KeyPageDown, true
	case 0xFF57:
		return KeyEnd, true
	case 0xFF63:
		return KeyInsert, true
	case 0xFF7F:
		return KeyNumLock, true
	case 0xFFBE:
		return KeyF1, true
	case 0xFFBF:
		return KeyF2, true
	case 0xFFC0:
		return KeyF3, true
	case 0xFFC1:
		return KeyF4, true
	case 0xFFC2:
		return KeyF5, true
	case 0xFFC3:
		return KeyF6, true
	case 0xFFC4:
		return KeyF7, true
	case 0xFFC5:
		return KeyF8, true
	case 0xFFC6:
		return KeyF9, true
	case 0xFFC7:
		return KeyF10, true
	case 0xFFC8:
		return KeyF11, true
	case 0xFFC9:
		return KeyF12, true
	case 0xFFCA:
		return KeyF13, true
	case 0xFFCB:
		return KeyF14, true
	case 0xFFCC:
		return KeyF15, true
	case 0xFFCD:
		return KeyF16, true
	case 0xFFCE:
		return KeyF17, true
	case 0xFFCF:
		return KeyF18, true
	case 0xFFD0:
		return KeyF19, true
	case 0xFFD1:
		return KeyF20, true
	case 0xFFD2:
		return KeyF21, true
	case 0xFFD3:
		return KeyF22, true
	case 0xFFD4:
		return KeyF23, true
	case 0xFFD5:
		return KeyF24, true
	case 0xFFE1:
		return KeyLeftShift, true
	case 0xFFE2:
		return KeyRightShift, true
	case 0xFFE3:
		return KeyLeftControl, true
	case 0xFFE4:
		return KeyRightControl, true
	case 0xFFE5:
		return KeyCapsLock, true
	case 0xFFE9:
		return KeyLeftAlt, true
	case 0xFFEB:
		return KeyLeftSuper, true
	case 0xFFEC:
		return KeyRightSuper, true
	case 0xFFFF:
		return KeyDelete, true
	}
	switch shifted {
	case 0xFFAA:
		return KeyKeypadMultiply, true
	case 0xFFAB:
		return KeyKeypadAdd, true
	case 0xFFAC:
		return KeyKeypadSeparator, true
	case 0xFFAD:
		return KeyKeypadSubtract, true
	case 0xFFAE:
		return KeyKeypadDecimal, true
	case 0xFFAF:
		return KeyKeypadDivide, true
	case 0xFFB0:
		return KeyKeypad0, true
	case 0xFFB1:
		return KeyKeypad1, true
	case 0xFFB2:
		return KeyKeypad2, true
	case 0xFFB3:
		return KeyKeypad3, true
	case 0xFFB4:
		return KeyKeypad4, true
	case 0xFFB5:
		return KeyKeypad5, true
	case 0xFFB6:
		return KeyKeypad6, true
	case 0xFFB7:
		return KeyKeypad7, true
	case 0xFFB8:
		return KeyKeypad8, true
	case 0xFFB9:
		return KeyKeypad9, true
	}
	return 0, false
}
