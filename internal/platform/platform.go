package platform

// UIElement is an opaque handle to one node of the OS accessibility tree.
//
// Handles are only valid for the discovery cycle that produced them: once
// the focused window changes, attribute queries on an old handle return
// zero values. Nothing in this repository stores a UIElement past the
// cycle that created it.
type UIElement interface {
	// Role returns the element's accessibility role (e.g. "AXButton").
	// ok is false when the attribute is unavailable.
	Role() (role string, ok bool)

	// Frame returns the element's screen rectangle in points.
	// ok is false when position or size is unavailable.
	Frame() (frame Rect, ok bool)

	// Enabled reports whether the element accepts interaction. Elements
	// that do not expose the attribute are treated as enabled.
	Enabled() bool

	// Children returns up to max child elements, or all of them when
	// max <= 0. Missing children yield an empty slice, never an error.
	Children(max int) []UIElement

	// Parent returns the containing element, if any.
	Parent() (UIElement, bool)

	// Tabs returns the element's tab children via the dedicated tab-group
	// accessor. Empty when the element is not a tab container or the
	// toolkit does not expose the attribute.
	Tabs() []UIElement
}

// Accessibility is the OS accessibility service. All queries are total:
// absent data is reported through ok=false or empty slices, never errors,
// except for FrontApp which fails when no application is frontmost.
type Accessibility interface {
	// FrontApp returns the frontmost application element.
	FrontApp() (UIElement, error)

	// FocusedWindow returns the focused window of the given application.
	FocusedWindow(app UIElement) (UIElement, bool)

	// MenuBar returns the application's menu bar element.
	MenuBar(app UIElement) (UIElement, bool)

	// ElementAt resolves the element at a screen point (hit-testing).
	ElementAt(x, y float64) (UIElement, bool)

	// Search issues one structured query against a window for elements of
	// the given category, returning at most max results. Toolkits that do
	// not implement the search attribute return an empty slice.
	Search(window UIElement, key SearchKey, max int) []UIElement

	// Screens returns the frames of all active displays.
	Screens() []Rect
}

// Inputter synthesizes mouse input at the OS level.
type Inputter interface {
	// Click posts a press/release pair at screen coordinates.
	Click(x, y int, button MouseButton) error

	// Scroll posts a scroll-wheel event in line units. Positive dy scrolls
	// up, positive dx scrolls left, matching the platform convention.
	Scroll(dx, dy int) error
}
