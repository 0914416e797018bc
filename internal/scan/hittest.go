package scan

import (
	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/platform"
)

// Hit-test sampling geometry. The rows and columns target the strips
// where toolkits that ignore search predicates put their interactive
// chrome: editor tab strips near the top, status bars along the bottom,
// tool windows at proportional heights, and sidebars hugging either edge.
const (
	hitStride       = 24
	tabRowUpper     = 45
	tabRowLower     = 75
	statusRowInner  = 12
	statusRowOuter  = 35
	sidebarInner    = 16
	sidebarOuter    = 40
)

// toolRowFractions places sample rows across tool-window territory.
var toolRowFractions = []float64{0.3, 0.5, 0.7}

// HitTest point-samples the screen and resolves each point to an element.
// It is the coverage net for toolkits whose trees are silent to both the
// search predicate and plain traversal.
type HitTest struct {
	AX platform.Accessibility
}

func (s *HitTest) Name() string { return "hit-test" }

func (s *HitTest) Scan(ctx *Context) []model.Element {
	seen := make(map[[4]int]bool)
	var out []model.Element
	for _, screen := range ctx.Screens {
		rows := []float64{
			screen.Y + tabRowUpper,
			screen.Y + tabRowLower,
			screen.Y + screen.H - statusRowInner,
			screen.Y + screen.H - statusRowOuter,
		}
		for _, f := range toolRowFractions {
			rows = append(rows, screen.Y+screen.H*f)
		}
		for _, y := range rows {
			s.scanRow(screen, y, seen, &out)
		}
		cols := []float64{
			screen.X + sidebarInner,
			screen.X + sidebarOuter,
			screen.X + screen.W - sidebarInner,
			screen.X + screen.W - sidebarOuter,
		}
		for _, x := range cols {
			s.scanColumn(screen, x, seen, &out)
		}
	}
	return out
}

// scanRow steps across one horizontal strip. For leaf elements the cursor
// jumps past the element's measured extent instead of re-sampling every
// stride inside it, which amortizes cost over wide contiguous controls;
// containers are stepped through normally since they may hide further
// distinct children.
func (s *HitTest) scanRow(screen platform.Rect, y float64, seen map[[4]int]bool, out *[]model.Element) {
	x := screen.X + hitStride/2
	for x < screen.X+screen.W {
		el, ok := s.sample(x, y, seen, out)
		if ok && isOpaqueLeaf(el) && el.Frame.X+el.Frame.W > x {
			x = el.Frame.X + el.Frame.W + 1
			continue
		}
		x += hitStride
	}
}

func (s *HitTest) scanColumn(screen platform.Rect, x float64, seen map[[4]int]bool, out *[]model.Element) {
	y := screen.Y + hitStride/2
	for y < screen.Y+screen.H {
		el, ok := s.sample(x, y, seen, out)
		if ok && isOpaqueLeaf(el) && el.Frame.Y+el.Frame.H > y {
			y = el.Frame.Y + el.Frame.H + 1
			continue
		}
		y += hitStride
	}
}

// sample resolves one point, records the element if it is new, and pulls
// in tab siblings so a single hit on a tab strip reveals the whole strip.
func (s *HitTest) sample(x, y float64, seen map[[4]int]bool, out *[]model.Element) (model.Element, bool) {
	h, ok := s.AX.ElementAt(x, y)
	if !ok {
		return model.Element{}, false
	}
	el, ok := resolve(h)
	if !ok || el.Frame.Empty() {
		return model.Element{}, false
	}
	if key := el.Key(); !seen[key] {
		seen[key] = true
		*out = append(*out, el)
		if el.Role == model.RoleRadioButton || el.Role == model.RoleTab {
			for _, sib := range tabSiblings(el) {
				if k := sib.Key(); !seen[k] {
					seen[k] = true
					*out = append(*out, sib)
				}
			}
		}
	}
	return el, true
}

// isOpaqueLeaf reports whether the element is a leaf role with no
// informative children, making its whole extent safe to skip.
func isOpaqueLeaf(el model.Element) bool {
	return model.LeafRoles[el.Role] && len(el.Handle.Children(1)) == 0
}

// tabSiblings asks the element's parent for sibling tabs, preferring the
// dedicated tab-group accessor and falling back to role-matching children.
func tabSiblings(el model.Element) []model.Element {
	parent, ok := el.Handle.Parent()
	if !ok {
		return nil
	}
	handles := parent.Tabs()
	if len(handles) == 0 {
		for _, c := range parent.Children(0) {
			if role, ok := c.Role(); ok && role == el.Role {
				handles = append(handles, c)
			}
		}
	}
	var out []model.Element
	for _, h := range handles {
		if sib, ok := resolve(h); ok && !sib.Frame.Empty() {
			out = append(out, sib)
		}
	}
	return out
}
