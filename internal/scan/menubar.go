package scan

import (
	"math"

	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/platform"
)

// Status-tray sampling. Icons sit in a horizontal strip along the
// top-right of the main screen; their exact geometry is often unavailable
// through the tree, so accepted hits get an estimated fixed-size
// rectangle at the snapped sample position. The stride is wider than a
// typical icon so adjacent samples rarely land on the same one.
const (
	statusStripWidth = 480
	statusStride     = 40
	statusIconWidth  = 30
	statusIconHeight = 22
)

// MenuBar discovers the frontmost application's menu bar items and the
// system status-tray icons. Menus are read shallowly: submenus only open
// on click, so recursing into them finds nothing interactive.
type MenuBar struct {
	AX platform.Accessibility
}

func (s *MenuBar) Name() string { return "menu-bar" }

func (s *MenuBar) Scan(ctx *Context) []model.Element {
	var out []model.Element
	if mb, ok := s.AX.MenuBar(ctx.App); ok {
		for _, h := range mb.Children(0) {
			if el, ok := resolve(h); ok && !el.Frame.Empty() {
				out = append(out, el)
			}
		}
	}
	out = append(out, s.statusIcons(ctx)...)
	return out
}

func (s *MenuBar) statusIcons(ctx *Context) []model.Element {
	if len(ctx.Screens) == 0 {
		return nil
	}
	main := ctx.Screens[0]
	y := main.Y + statusIconHeight/2
	start := main.X + main.W - statusStripWidth
	if start < main.X {
		start = main.X
	}

	seen := make(map[[4]int]bool)
	var out []model.Element
	for x := start; x < main.X+main.W; x += statusStride {
		h, ok := s.AX.ElementAt(x, y)
		if !ok {
			continue
		}
		role, ok := h.Role()
		if !ok || !model.MenuRoles[role] {
			continue
		}
		snapped := math.Round(x/statusStride) * statusStride
		estimated := platform.Rect{
			X: snapped - statusIconWidth/2,
			Y: main.Y,
			W: statusIconWidth,
			H: statusIconHeight,
		}
		// Dedup by the icon's reported position when the toolkit gives
		// one, else by the snapped sample position.
		key := estimated.Key()
		if frame, ok := h.Frame(); ok && !frame.Empty() {
			key = frame.Key()
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, model.Element{
			Role:    role,
			Frame:   estimated,
			Enabled: h.Enabled(),
			Handle:  h,
		})
	}
	return out
}
