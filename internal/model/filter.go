package model

import "github.com/yhao3/hinto/internal/platform"

// Thresholds below were found empirically against specific third-party
// toolkits (IDE tab strips, terminal session tabs, web-rendered chrome).
// They are load-bearing: changing one silently breaks labeling in the
// application it was calibrated for.
const (
	tabExemptMaxY   = 60   // radio buttons above this behave as tabs
	chromeBandMaxY  = 20   // decorative close/chrome buttons hug the top edge
	maxControlSpan  = 2000 // anything wider/taller is a container, not a control
	offscreenMinY   = -100
	minControlSpan  = 10 // below this, decorative or invisible
	fileTabMinY     = 55
	fileTabMaxY     = 90
	fileTabMinW     = 50
	sessionTabMinY  = 100 // exclusive
	sessionTabMinW  = 30
	sessionTabMaxW  = 200
	menuBarBandSpan = 30 // on-screen tolerance band at screen top/bottom
)

// IsClickable decides whether a discovered element should receive a label.
// It is a total function over (role, frame, enabled); rules apply in order
// and the first failing rule excludes the element.
func IsClickable(role string, frame platform.Rect, enabled bool) bool {
	// Some toolkits report tab controls as disabled radio buttons even
	// though they are interactive; exempt them from the enabled check.
	tabLike := role == RoleRadioButton && frame.Y < tabExemptMaxY
	if !tabLike && !enabled {
		return false
	}
	if frame.W <= 0 || frame.H <= 0 {
		return false
	}
	// Exactly (0,0) is the placeholder/hidden convention.
	if frame.X == 0 && frame.Y == 0 {
		return false
	}
	if frame.W > maxControlSpan || frame.H > maxControlSpan {
		return false
	}
	if frame.Y < float64(offscreenMinY) {
		return false
	}
	if frame.W < minControlSpan || frame.H < minControlSpan {
		return false
	}
	if role != RoleMenuBarItem && frame.Y >= 0 && frame.Y < chromeBandMaxY {
		return false
	}
	if role == RoleStaticText {
		return isTabShapedText(frame)
	}
	return ClickableRoles[role]
}

// isTabShapedText accepts static text only when its geometry matches a
// file-tab or session-tab shape. Plain labels and captions are excluded.
func isTabShapedText(frame platform.Rect) bool {
	fileTab := frame.Y >= fileTabMinY && frame.Y <= fileTabMaxY && frame.W >= fileTabMinW
	sessionTab := frame.Y > sessionTabMinY && frame.W >= sessionTabMinW && frame.W <= sessionTabMaxW
	return fileTab || sessionTab
}

// OnScreen reports whether the frame intersects an active display, or lies
// within the top/bottom menu-bar band of one. Status-tray icons carry
// estimated frames that can fall just outside the display rectangle.
func OnScreen(frame platform.Rect, screens []platform.Rect) bool {
	for _, s := range screens {
		if frame.Intersects(s) {
			return true
		}
	}
	for _, s := range screens {
		top := platform.Rect{X: s.X, Y: s.Y - menuBarBandSpan, W: s.W, H: 2 * menuBarBandSpan}
		bottom := platform.Rect{X: s.X, Y: s.Y + s.H - menuBarBandSpan, W: s.W, H: 2 * menuBarBandSpan}
		if frame.Intersects(top) || frame.Intersects(bottom) {
			return true
		}
	}
	return false
}

// FilterClickable applies IsClickable to every element and deduplicates
// the survivors by rounded rectangle.
func FilterClickable(elements []Element) []Element {
	result := make([]Element, 0, len(elements))
	for _, el := range elements {
		if IsClickable(el.Role, el.Frame, el.Enabled) {
			result = append(result, el)
		}
	}
	return Dedup(result)
}
