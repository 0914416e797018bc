package model

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/yhao3/hinto/internal/platform"
)

func rect(x, y, w, h float64) platform.Rect {
	return platform.Rect{X: x, Y: y, W: w, H: h}
}

func TestIsClickable_RadioButtonTabExemption(t *testing.T) {
	// Radio buttons above y=60 behave as tabs and skip the enabled check.
	if !IsClickable(RoleRadioButton, rect(100, 59, 80, 24), false) {
		t.Error("disabled radio at y=59 should be clickable (tab exemption)")
	}
	if IsClickable(RoleRadioButton, rect(100, 60, 80, 24), false) {
		t.Error("disabled radio at y=60 should not be clickable (boundary)")
	}
	if !IsClickable(RoleRadioButton, rect(100, 60, 80, 24), true) {
		t.Error("enabled radio at y=60 should be clickable")
	}
}

func TestIsClickable_DisabledExcluded(t *testing.T) {
	if IsClickable(RoleButton, rect(100, 200, 80, 24), false) {
		t.Error("disabled button should not be clickable")
	}
}

func TestIsClickable_GeometryRules(t *testing.T) {
	tests := []struct {
		name  string
		role  string
		frame platform.Rect
		want  bool
	}{
		{"zero_origin_placeholder", RoleButton, rect(0, 0, 80, 24), false},
		{"oversized_width", RoleButton, rect(100, 200, 2001, 24), false},
		{"oversized_height", RoleButton, rect(100, 200, 80, 2001), false},
		{"max_allowed_span", RoleButton, rect(100, 200, 2000, 2000), true},
		{"far_offscreen", RoleButton, rect(100, -101, 80, 24), false},
		{"slightly_above_screen", RoleButton, rect(100, -50, 80, 24), true},
		{"too_narrow", RoleButton, rect(100, 200, 9, 24), false},
		{"too_short", RoleButton, rect(100, 200, 80, 9), false},
		{"min_span", RoleButton, rect(100, 200, 10, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsClickable(tt.role, tt.frame, true)
			if got != tt.want {
				t.Errorf("IsClickable(%s, %+v) = %v, want %v", tt.role, tt.frame, got, tt.want)
			}
		})
	}
}

func TestIsClickable_TopChromeBand(t *testing.T) {
	// Elements hugging the very top edge are window chrome, except menu
	// bar items which live exactly there.
	if IsClickable(RoleButton, rect(100, 19, 80, 24), true) {
		t.Error("button at y=19 should be excluded as chrome")
	}
	if !IsClickable(RoleButton, rect(100, 20, 80, 24), true) {
		t.Error("button at y=20 should be clickable")
	}
	if !IsClickable(RoleMenuBarItem, rect(100, 5, 80, 22), true) {
		t.Error("menu bar item at y=5 should be clickable")
	}
	// The band only covers non-negative y; negative y is handled by the
	// offscreen rule instead.
	if !IsClickable(RoleButton, rect(100, -5, 80, 24), true) {
		t.Error("button at y=-5 should be clickable")
	}
}

func TestIsClickable_StaticTextTabShapes(t *testing.T) {
	tests := []struct {
		name  string
		frame platform.Rect
		want  bool
	}{
		{"file_tab", rect(100, 55, 50, 20), true},
		{"file_tab_y_boundary", rect(100, 54, 50, 20), false},
		{"file_tab_upper_y", rect(100, 90, 120, 20), true},
		{"file_tab_past_upper_y", rect(100, 91, 120, 20), false},
		{"file_tab_narrow", rect(100, 65, 49, 20), false},
		{"session_tab", rect(100, 101, 30, 20), true},
		{"session_tab_y_boundary", rect(100, 100, 30, 20), false},
		{"session_tab_narrow", rect(100, 150, 29, 20), false},
		{"session_tab_max_width", rect(100, 150, 200, 20), true},
		{"session_tab_too_wide", rect(100, 150, 201, 20), false},
		{"plain_caption", rect(100, 400, 300, 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsClickable(RoleStaticText, tt.frame, true)
			if got != tt.want {
				t.Errorf("IsClickable(AXStaticText, %+v) = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}

func TestIsClickable_UnknownRoleExcluded(t *testing.T) {
	if IsClickable("AXGroup", rect(100, 200, 300, 300), true) {
		t.Error("non-clickable role should be excluded")
	}
}

// allRoles covers every role constant plus an unknown one, for the
// property tests below.
var allRoles = []string{
	RoleButton, RoleLink, RoleMenuItem, RoleMenuBarItem, RoleCheckBox,
	RoleRadioButton, RolePopUpButton, RoleMenuButton, RoleDisclosureTriangle,
	RoleIncrementor, RoleCell, RoleTab, RoleToolbarButton, RoleColorWell,
	RoleSlider, RoleTextField, RoleTextArea, RoleComboBox, RoleStaticText,
	"AXGroup",
}

func TestIsClickable_EmptyFrameNeverClickable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		role := rapid.SampledFrom(allRoles).Draw(t, "role")
		enabled := rapid.Bool().Draw(t, "enabled")
		x := rapid.Float64Range(-500, 3000).Draw(t, "x")
		y := rapid.Float64Range(-500, 3000).Draw(t, "y")
		var w, h float64
		if rapid.Bool().Draw(t, "zeroWidth") {
			w = rapid.Float64Range(-100, 0).Draw(t, "w")
			h = rapid.Float64Range(-100, 100).Draw(t, "h")
		} else {
			w = rapid.Float64Range(-100, 100).Draw(t, "w")
			h = rapid.Float64Range(-100, 0).Draw(t, "h")
		}
		if IsClickable(role, rect(x, y, w, h), enabled) {
			t.Fatalf("empty frame %v clickable for role %s", rect(x, y, w, h), role)
		}
	})
}

func TestIsClickable_ChromeBandProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		role := rapid.SampledFrom(allRoles).Draw(t, "role")
		if role == RoleMenuBarItem || role == RoleRadioButton {
			// Menu bar items are exempt; tab-like radios are exercised
			// separately above.
			return
		}
		y := rapid.Float64Range(0, 19.99).Draw(t, "y")
		w := rapid.Float64Range(10, 500).Draw(t, "w")
		h := rapid.Float64Range(10, 500).Draw(t, "h")
		if IsClickable(role, rect(100, y, w, h), true) {
			t.Fatalf("role %s at y=%v should be excluded by the chrome band", role, y)
		}
	})
}

func TestOnScreen(t *testing.T) {
	screens := []platform.Rect{rect(0, 0, 1920, 1080)}
	tests := []struct {
		name  string
		frame platform.Rect
		want  bool
	}{
		{"inside", rect(100, 100, 50, 50), true},
		{"far_right", rect(3000, 100, 50, 50), false},
		{"menu_band_estimate", rect(1900, -10, 30, 22), true},
		{"bottom_band", rect(100, 1075, 50, 20), true},
		{"far_below", rect(100, 1300, 50, 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnScreen(tt.frame, screens); got != tt.want {
				t.Errorf("OnScreen(%+v) = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}

func TestFilterClickable_DeduplicatesAcrossSources(t *testing.T) {
	// Same control discovered twice with sub-point jitter: rounded rects
	// collide so only one survives.
	a := Element{Role: RoleButton, Frame: rect(100, 200, 80, 24), Enabled: true}
	b := Element{Role: RoleButton, Frame: rect(100.3, 199.8, 80.2, 24.1), Enabled: true}
	c := Element{Role: RoleLink, Frame: rect(300, 200, 80, 24), Enabled: true}
	got := FilterClickable([]Element{a, b, c})
	if len(got) != 2 {
		t.Fatalf("expected 2 elements after dedup, got %d", len(got))
	}
	if got[0].Role != RoleButton || got[1].Role != RoleLink {
		t.Errorf("unexpected roles: %s, %s", got[0].Role, got[1].Role)
	}
}

func TestFilterClickable_DropsNonClickable(t *testing.T) {
	elements := []Element{
		{Role: RoleButton, Frame: rect(100, 200, 80, 24), Enabled: true},
		{Role: RoleButton, Frame: rect(100, 300, 80, 24), Enabled: false},
		{Role: "AXGroup", Frame: rect(100, 400, 80, 24), Enabled: true},
	}
	got := FilterClickable(elements)
	if len(got) != 1 {
		t.Fatalf("expected 1 element, got %d", len(got))
	}
}
