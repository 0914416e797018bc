package mode

// Code identifies the kind of keystroke delivered to the mode machinery.
type Code int

const (
	CodeChar Code = iota
	CodeEnter
	CodeEscape
	CodeTab
)

// Key is one keystroke observed while a mode is active.
type Key struct {
	Code  Code
	Char  rune // set when Code == CodeChar
	Shift bool
}

// Char builds a character keystroke.
func CharKey(r rune) Key { return Key{Code: CodeChar, Char: r} }
