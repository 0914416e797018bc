package hook

import (
	"testing"

	"github.com/yhao3/hinto/internal/mode"
)

func TestParseHotkey(t *testing.T) {
	tests := []struct {
		spec      string
		modifiers int
		key       uint16
		wantErr   bool
	}{
		{"ctrl+alt+f", 2, 'F', false},
		{"cmd+shift+space", 2, 32, false},
		{"CTRL + ALT + F", 2, 'F', false},
		{"f6", 0, 117, false},
		{"ctrl+alt", 0, 0, true},  // ends in a modifier
		{"f+ctrl", 0, 0, true},    // key not last
		{"ctrl+bogus", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tc := range tests {
		hk, err := ParseHotkey(tc.spec)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tc.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.spec, err)
			continue
		}
		if len(hk.Modifiers) != tc.modifiers {
			t.Errorf("%q: expected %d modifier groups, got %d", tc.spec, tc.modifiers, len(hk.Modifiers))
		}
		if !inGroup(tc.key, hk.Key) {
			t.Errorf("%q: expected key rawcode %d in %v", tc.spec, tc.key, hk.Key)
		}
	}
}

func TestModifiersMatch_ExactOnly(t *testing.T) {
	hk, err := ParseHotkey("ctrl+alt+f")
	if err != nil {
		t.Fatal(err)
	}
	m := &Monitor{hotkey: hk}

	down := func(codes ...uint16) map[uint16]bool {
		pressed := make(map[uint16]bool)
		for _, c := range codes {
			pressed[c] = true
		}
		return pressed
	}

	if !m.modifiersMatch(down(162, 164)) {
		t.Error("left ctrl + left alt should match")
	}
	if !m.modifiersMatch(down(163, 165)) {
		t.Error("right-side variants should match")
	}
	if m.modifiersMatch(down(162)) {
		t.Error("missing alt must not match")
	}
	if m.modifiersMatch(down(162, 164, 160)) {
		t.Error("extra shift must not match; the combination is exact")
	}
	if m.modifiersMatch(down()) {
		t.Error("bare key must not match")
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		raw     uint16
		keychar rune
		shift   bool
		want    mode.Key
		ok      bool
	}{
		{13, 0, false, mode.Key{Code: mode.CodeEnter}, true},
		{13, 0, true, mode.Key{Code: mode.CodeEnter, Shift: true}, true},
		{27, 0, false, mode.Key{Code: mode.CodeEscape}, true},
		{9, 0, false, mode.Key{Code: mode.CodeTab}, true},
		{'A', 'a', false, mode.Key{Code: mode.CodeChar, Char: 'a'}, true},
		{'A', 'A', true, mode.Key{Code: mode.CodeChar, Char: 'A', Shift: true}, true},
		{'7', '7', false, mode.Key{Code: mode.CodeChar, Char: '7'}, true},
		{186, ';', false, mode.Key{Code: mode.CodeChar, Char: ';'}, true},
		{112, 0xffff, false, mode.Key{}, false}, // F1 has no mode meaning
	}
	for _, tc := range tests {
		got, ok := translate(tc.raw, tc.keychar, tc.shift)
		if ok != tc.ok || got != tc.want {
			t.Errorf("translate(%d, %q, %v) = %+v, %v; want %+v, %v",
				tc.raw, tc.keychar, tc.shift, got, ok, tc.want, tc.ok)
		}
	}
}

func TestKeyNameToRawcodes(t *testing.T) {
	if codes := keyNameToRawcodes("f12"); len(codes) != 1 || codes[0] != 123 {
		t.Errorf("f12: got %v", codes)
	}
	if codes := keyNameToRawcodes("f25"); codes != nil {
		t.Errorf("f25 is out of range, got %v", codes)
	}
	if codes := keyNameToRawcodes("shift"); len(codes) != 2 {
		t.Errorf("modifiers map to both variants, got %v", codes)
	}
	if codes := keyNameToRawcodes("plugh"); codes != nil {
		t.Errorf("unknown names must map to nil, got %v", codes)
	}
}
