package platform

import (
	"fmt"
	"math"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left or right)", s)
	}
}

// Rect is a screen rectangle in points. The accessibility layer reports
// fractional coordinates on scaled displays, so geometry stays float64 and
// is only rounded when a stable identity is needed (see Key).
type Rect struct {
	X, Y, W, H float64
}

// Key returns the rounded integer identity of the rectangle. Two elements
// with the same Key are treated as the same control regardless of which
// scanner discovered them.
func (r Rect) Key() [4]int {
	return [4]int{
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.W)),
		int(math.Round(r.H)),
	}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// SearchKey identifies one element category for a structured accessibility
// search query. Values mirror the platform's parameterized search attribute.
type SearchKey string

const (
	SearchButton            SearchKey = "AXButtonSearchKey"
	SearchCheckBox          SearchKey = "AXCheckBoxSearchKey"
	SearchControl           SearchKey = "AXControlSearchKey"
	SearchLink              SearchKey = "AXLinkSearchKey"
	SearchTextField         SearchKey = "AXTextFieldSearchKey"
	SearchMenuItem          SearchKey = "AXMenuItemSearchKey"
	SearchTabGroup          SearchKey = "AXTabGroupSearchKey"
	SearchRadioGroup        SearchKey = "AXRadioGroupSearchKey"
	SearchOutline           SearchKey = "AXOutlineSearchKey"
	SearchGraphic           SearchKey = "AXGraphicSearchKey"
	SearchKeyboardFocusable SearchKey = "AXKeyboardFocusableSearchKey"
)

// AllSearchKeys lists every category the search-predicate scanner queries,
// in query order.
var AllSearchKeys = []SearchKey{
	SearchButton,
	SearchCheckBox,
	SearchControl,
	SearchLink,
	SearchTextField,
	SearchMenuItem,
	SearchTabGroup,
	SearchRadioGroup,
	SearchOutline,
	SearchGraphic,
	SearchKeyboardFocusable,
}
