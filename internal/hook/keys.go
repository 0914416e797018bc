package hook

import (
	"fmt"
	"strings"
)

// Hotkey is a parsed activation combination: a set of required modifiers
// plus exactly one non-modifier key. Each entry lists the rawcodes that
// count as that key, e.g. both left and right variants of a modifier.
type Hotkey struct {
	// Modifiers holds one rawcode group per required modifier.
	Modifiers [][]uint16
	// Key holds the rawcode group of the final non-modifier key.
	Key []uint16
	// Spec is the normalized textual form, for logging.
	Spec string
}

// ParseHotkey parses a combination like "ctrl+alt+f" or "cmd+shift+space".
// The last part must be a non-modifier key; every other part must be a
// modifier.
func ParseHotkey(spec string) (Hotkey, error) {
	parts := strings.Split(strings.ToLower(spec), "+")
	var normalized []string
	hk := Hotkey{}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Hotkey{}, fmt.Errorf("empty key in hotkey %q", spec)
		}
		codes := keyNameToRawcodes(part)
		if codes == nil {
			return Hotkey{}, fmt.Errorf("unknown key %q in hotkey %q", part, spec)
		}
		last := i == len(parts)-1
		if isModifierName(part) {
			if last {
				return Hotkey{}, fmt.Errorf("hotkey %q ends in a modifier", spec)
			}
			hk.Modifiers = append(hk.Modifiers, codes)
		} else {
			if !last {
				return Hotkey{}, fmt.Errorf("key %q must come last in hotkey %q", part, spec)
			}
			hk.Key = codes
		}
		normalized = append(normalized, part)
	}
	if hk.Key == nil {
		return Hotkey{}, fmt.Errorf("hotkey %q has no non-modifier key", spec)
	}
	hk.Spec = strings.Join(normalized, "+")
	return hk, nil
}

func isModifierName(name string) bool {
	switch name {
	case "ctrl", "alt", "shift", "win", "cmd", "super":
		return true
	}
	return false
}

// Modifier rawcode groups, Windows virtual-key numbering as delivered by
// the hook library on every platform.
var (
	ctrlCodes  = []uint16{162, 163}
	altCodes   = []uint16{164, 165}
	shiftCodes = []uint16{160, 161}
	cmdCodes   = []uint16{91, 92}
)

// keyNameToRawcodes maps a key name to the rawcodes that count as it.
// Modifiers map to both their left and right variants.
func keyNameToRawcodes(name string) []uint16 {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "ctrl":
		return ctrlCodes
	case "alt":
		return altCodes
	case "shift":
		return shiftCodes
	case "win", "cmd", "super":
		return cmdCodes
	}

	if len(name) == 1 {
		c := name[0]
		if c >= 'a' && c <= 'z' {
			return []uint16{uint16(c - 'a' + 'A')}
		}
		if c >= '0' && c <= '9' {
			return []uint16{uint16(c)}
		}
	}

	// F1..F24 occupy a contiguous rawcode range starting at 112.
	if strings.HasPrefix(name, "f") {
		var n int
		if _, err := fmt.Sscanf(name, "f%d", &n); err == nil && n >= 1 && n <= 24 {
			return []uint16{uint16(112 + n - 1)}
		}
	}

	switch name {
	case "space":
		return []uint16{32}
	case "enter", "return":
		return []uint16{13}
	case "esc", "escape":
		return []uint16{27}
	case "tab":
		return []uint16{9}
	case "backspace":
		return []uint16{8}
	case "delete", "del":
		return []uint16{46}
	case "home":
		return []uint16{36}
	case "end":
		return []uint16{35}
	case "pageup", "pgup":
		return []uint16{33}
	case "pagedown", "pgdn":
		return []uint16{34}
	case "left":
		return []uint16{37}
	case "up":
		return []uint16{38}
	case "right":
		return []uint16{39}
	case "down":
		return []uint16{40}
	}
	return nil
}

func inGroup(code uint16, group []uint16) bool {
	for _, c := range group {
		if c == code {
			return true
		}
	}
	return false
}

func isModifierCode(code uint16) bool {
	return inGroup(code, ctrlCodes) || inGroup(code, altCodes) ||
		inGroup(code, shiftCodes) || inGroup(code, cmdCodes)
}
