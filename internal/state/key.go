// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

// KeyKind classifies a key press independently of the terminal library.
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyRunes
	KeyBackspace
	KeyConfirm
	KeyCancel
	KeyUp
	KeyDown
	KeyInterrupt
)

// quickCopyRune copies the hovered secret while browsing.
const quickCopyRune = 'c'

func (k KeyKind) String() string {
	switch k {
	case KeyRunes:
		return "runes"
	case KeyBackspace:
		return "backspace"
	case KeyConfirm:
		return "confirm"
	case KeyCancel:
		return "cancel"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "other"
	}
}

// Key is a single input event. Runes is set only for [KeyRunes] and may hold
// more than one rune when text is pasted.
type Key struct {
	Kind  KeyKind
	Runes []rune
}

// Press returns a key of the given kind without text.
func Press(kind KeyKind) Key {
	return Key{Kind: kind}
}

// Text returns a [KeyRunes] key carrying s.
func Text(s string) Key {
	return Key{Kind: KeyRunes, Runes: []rune(s)}
}

func (k Key) isQuickCopy() bool {
	return k.Kind == KeyRunes && len(k.Runes) == 1 && k.Runes[0] == quickCopyRune
}
