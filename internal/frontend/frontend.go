// Package frontend contains the keyboard layout shared by all interactive
// frontends.
package frontend

import "unicode"

// Layout lists the keyboard keys of the left hand 4x4 block, row by row.
const Layout = "1234qwerasdfzxcv"

// keypad values of the Layout keys, mirroring the COSMAC VIP keypad:
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
var keypadValues = [len(Layout)]uint8{
	0x1, 0x2, 0x3, 0xC,
	0x4, 0x5, 0x6, 0xD,
	0x7, 0x8, 0x9, 0xE,
	0xA, 0x0, 0xB, 0xF,
}

// KeyForRune returns the keypad key that the keyboard character maps to.
func KeyForRune(r rune) (uint8, bool) {
	r = unicode.ToLower(r)
	for i, c := range Layout {
		if c == r {
			return keypadValues[i], true
		}
	}
	return 0, false
}

// KeyAt returns the keypad key of the Layout character at the given index.
func KeyAt(index int) uint8 {
	return keypadValues[index]
}
