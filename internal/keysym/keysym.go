// Package keysym names keyboard keys independently of the physical layout.
// Values use the X11 keysym encoding so that quick-select bindings written
// for X menus keep working: Latin-1 characters map to their code point,
// other Unicode characters to 0x01000000|rune, and function keys to the
// 0xff00 block.
package keysym

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Keysym identifies a named keyboard key.
type Keysym uint32

// NoSymbol is the zero keysym; it never resolves from a name.
const NoSymbol Keysym = 0

const (
	Space        Keysym = 0x0020
	BracketLeft  Keysym = 0x005b
	Backslash    Keysym = 0x005c
	BracketRight Keysym = 0x005d

	BackSpace Keysym = 0xff08
	Tab       Keysym = 0xff09
	Return    Keysym = 0xff0d
	Escape    Keysym = 0xff1b
	Home      Keysym = 0xff50
	Left      Keysym = 0xff51
	Up        Keysym = 0xff52
	Right     Keysym = 0xff53
	Down      Keysym = 0xff54
	Prior     Keysym = 0xff55
	Next      Keysym = 0xff56
	End       Keysym = 0xff57
	Insert    Keysym = 0xff63
	KPEnter   Keysym = 0xff8d
	F1        Keysym = 0xffbe
	Delete    Keysym = 0xffff

	unicodeOffset Keysym = 0x01000000
)

// Modifiers is a bit set of modifier keys held during a key press.
type Modifiers uint8

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
)

var named = map[string]Keysym{
	"BackSpace": BackSpace,
	"Tab":       Tab,
	"Return":    Return,
	"Escape":    Escape,
	"Delete":    Delete,
	"Home":      Home,
	"Left":      Left,
	"Up":        Up,
	"Right":     Right,
	"Down":      Down,
	"Prior":     Prior,
	"Page_Up":   Prior,
	"Next":      Next,
	"Page_Down": Next,
	"End":       End,
	"Insert":    Insert,
	"KP_Enter":  KPEnter,
	"Enter":     KPEnter,

	"space":        Space,
	"exclam":       0x21,
	"quotedbl":     0x22,
	"numbersign":   0x23,
	"dollar":       0x24,
	"percent":      0x25,
	"ampersand":    0x26,
	"apostrophe":   0x27,
	"parenleft":    0x28,
	"parenright":   0x29,
	"asterisk":     0x2a,
	"plus":         0x2b,
	"comma":        0x2c,
	"minus":        0x2d,
	"period":       0x2e,
	"slash":        0x2f,
	"colon":        0x3a,
	"semicolon":    0x3b,
	"less":         0x3c,
	"equal":        0x3d,
	"greater":      0x3e,
	"question":     0x3f,
	"at":           0x40,
	"bracketleft":  BracketLeft,
	"backslash":    Backslash,
	"bracketright": BracketRight,
	"asciicircum":  0x5e,
	"underscore":   0x5f,
	"grave":        0x60,
	"braceleft":    0x7b,
	"bar":          0x7c,
	"braceright":   0x7d,
	"asciitilde":   0x7e,
}

var names map[Keysym]string

func init() {
	for i := 0; i < 24; i++ {
		named[fmt.Sprintf("F%d", i+1)] = F1 + Keysym(i)
	}
	for r := 'a'; r <= 'z'; r++ {
		named[string(r)] = Keysym(r)
		named[string(unicode.ToUpper(r))] = Keysym(unicode.ToUpper(r))
	}
	for r := '0'; r <= '9'; r++ {
		named[string(r)] = Keysym(r)
	}
	names = make(map[Keysym]string, len(named))
	for name, ks := range named {
		if prev, ok := names[ks]; ok && prev < name {
			continue
		}
		names[ks] = name
	}
	// prefer the canonical X names over the aliases
	names[Prior] = "Prior"
	names[Next] = "Next"
	names[KPEnter] = "KP_Enter"
}

// Lookup resolves a key symbol name. Names are case-sensitive. Besides the
// named table it accepts the "U20AC" Unicode form and "0x…" raw values.
func Lookup(name string) (Keysym, bool) {
	if name == "" {
		return NoSymbol, false
	}
	if ks, ok := named[name]; ok {
		return ks, true
	}
	if len(name) > 1 && name[0] == 'U' {
		cp, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil || cp == 0 || cp > unicode.MaxRune {
			return NoSymbol, false
		}
		return FromRune(rune(cp)), true
	}
	if strings.HasPrefix(name, "0x") && len(name) > 2 {
		v, err := strconv.ParseUint(name[2:], 16, 32)
		if err != nil || v == 0 {
			return NoSymbol, false
		}
		return Keysym(v), true
	}
	return NoSymbol, false
}

// FromRune returns the keysym produced by typing r.
func FromRune(r rune) Keysym {
	if (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff) {
		return Keysym(r)
	}
	return unicodeOffset | Keysym(r)
}

// Canonical folds the case of ks to lower case, so that "A" and "a" name the
// same binding.
func Canonical(ks Keysym) Keysym {
	switch {
	case ks >= 'A' && ks <= 'Z':
		return ks + ('a' - 'A')
	case ks >= 0xc0 && ks <= 0xde && ks != 0xd7:
		return ks + 0x20
	case ks&0xff000000 == unicodeOffset:
		r := rune(ks &^ unicodeOffset)
		return FromRune(unicode.ToLower(r))
	}
	return ks
}

// String returns the keysym name, or its hexadecimal value when unnamed.
func (ks Keysym) String() string {
	if name, ok := names[ks]; ok {
		return name
	}
	if ks&0xff000000 == unicodeOffset {
		return fmt.Sprintf("U%04X", uint32(ks&^unicodeOffset))
	}
	return fmt.Sprintf("0x%04x", uint32(ks))
}
