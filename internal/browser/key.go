package browser

// KeyCode identifies the kind of key event.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// Key is one input event: a code, the rune for KeyRune, and the shift modifier.
type Key struct {
	Code  KeyCode
	Rune  rune
	Shift bool
}

// RuneKey builds a KeyRune event.
func RuneKey(r rune, shift bool) Key {
	return Key{Code: KeyRune, Rune: r, Shift: shift}
}

// CodeKey builds a non-rune key event.
func CodeKey(code KeyCode) Key {
	return Key{Code: code}
}

func (k Key) is(runes ...rune) bool {
	if k.Code != KeyRune {
		return false
	}
	for _, r := range runes {
		if k.Rune == r {
			return true
		}
	}
	return false
}
