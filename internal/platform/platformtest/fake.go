// Package platformtest provides an in-memory accessibility service and an
// input recorder for tests. The fake mirrors the quirks the scanners are
// written against: nodes can hide their role or frame, search queries can
// be silent, and hit-testing resolves against the node tree.
package platformtest

import (
	"fmt"

	"github.com/yhao3/hinto/internal/platform"
)

// Node is a scriptable accessibility tree node.
type Node struct {
	RoleVal    string
	FrameVal   platform.Rect
	Disabled   bool
	NoRole     bool // attribute unavailable
	NoFrame    bool // attribute unavailable
	ChildNodes []*Node
	TabNodes   []*Node
	ParentNode *Node
}

// NewNode creates an enabled node with a role and frame.
func NewNode(role string, frame platform.Rect) *Node {
	return &Node{RoleVal: role, FrameVal: frame}
}

// Add appends children and wires their parent pointers.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.ParentNode = n
	}
	n.ChildNodes = append(n.ChildNodes, children...)
	return n
}

// SetTabs wires tab children reachable through the tab-group accessor.
func (n *Node) SetTabs(tabs ...*Node) *Node {
	for _, tb := range tabs {
		tb.ParentNode = n
	}
	n.TabNodes = tabs
	return n
}

func (n *Node) Role() (string, bool) {
	if n.NoRole {
		return "", false
	}
	return n.RoleVal, true
}

func (n *Node) Frame() (platform.Rect, bool) {
	if n.NoFrame {
		return platform.Rect{}, false
	}
	return n.FrameVal, true
}

func (n *Node) Enabled() bool { return !n.Disabled }

func (n *Node) Children(max int) []platform.UIElement {
	out := make([]platform.UIElement, 0, len(n.ChildNodes))
	for i, c := range n.ChildNodes {
		if max > 0 && i >= max {
			break
		}
		out = append(out, c)
	}
	return out
}

func (n *Node) Parent() (platform.UIElement, bool) {
	if n.ParentNode == nil {
		return nil, false
	}
	return n.ParentNode, true
}

func (n *Node) Tabs() []platform.UIElement {
	out := make([]platform.UIElement, 0, len(n.TabNodes))
	for _, tb := range n.TabNodes {
		out = append(out, tb)
	}
	return out
}

// Service is a fake platform.Accessibility backed by Node trees.
type Service struct {
	App          *Node
	Window       *Node
	Menu         *Node
	ScreenFrames []platform.Rect

	// SearchResults maps a category to the nodes a search query returns.
	// Categories with no entry return nothing, like a non-conforming
	// toolkit.
	SearchResults map[platform.SearchKey][]*Node

	// HitFunc, when set, fully scripts hit-testing. Otherwise HitNodes
	// are resolved in order, first node whose frame contains the point
	// wins, and when those are empty too, hit-testing walks the window
	// tree.
	HitFunc  func(x, y float64) (platform.UIElement, bool)
	HitNodes []*Node

	SearchCalls int
	HitCalls    int
}

func (s *Service) FrontApp() (platform.UIElement, error) {
	if s.App == nil {
		return nil, fmt.Errorf("no frontmost application")
	}
	return s.App, nil
}

func (s *Service) FocusedWindow(app platform.UIElement) (platform.UIElement, bool) {
	if s.Window == nil {
		return nil, false
	}
	return s.Window, true
}

func (s *Service) MenuBar(app platform.UIElement) (platform.UIElement, bool) {
	if s.Menu == nil {
		return nil, false
	}
	return s.Menu, true
}

func (s *Service) ElementAt(x, y float64) (platform.UIElement, bool) {
	s.HitCalls++
	if s.HitFunc != nil {
		return s.HitFunc(x, y)
	}
	for _, n := range s.HitNodes {
		if !n.NoFrame && n.FrameVal.Contains(x, y) {
			return n, true
		}
	}
	if len(s.HitNodes) == 0 && s.Window != nil {
		if n := deepestAt(s.Window, x, y); n != nil {
			return n, true
		}
	}
	return nil, false
}

// deepestAt returns the deepest node whose frame contains the point.
func deepestAt(n *Node, x, y float64) *Node {
	if n.NoFrame || !n.FrameVal.Contains(x, y) {
		return nil
	}
	for _, c := range n.ChildNodes {
		if hit := deepestAt(c, x, y); hit != nil {
			return hit
		}
	}
	return n
}

func (s *Service) Search(window platform.UIElement, key platform.SearchKey, max int) []platform.UIElement {
	s.SearchCalls++
	nodes := s.SearchResults[key]
	out := make([]platform.UIElement, 0, len(nodes))
	for i, n := range nodes {
		if max > 0 && i >= max {
			break
		}
		out = append(out, n)
	}
	return out
}

func (s *Service) Screens() []platform.Rect {
	if len(s.ScreenFrames) == 0 {
		return []platform.Rect{{X: 0, Y: 0, W: 1920, H: 1080}}
	}
	return s.ScreenFrames
}

// Click records one synthetic click.
type Click struct {
	X, Y   int
	Button platform.MouseButton
}

// Scroll records one synthetic scroll event.
type Scroll struct {
	Dx, Dy int
}

// Recorder is a fake platform.Inputter that records dispatched input.
type Recorder struct {
	Clicks  []Click
	Scrolls []Scroll
	Err     error
}

func (r *Recorder) Click(x, y int, button platform.MouseButton) error {
	if r.Err != nil {
		return r.Err
	}
	r.Clicks = append(r.Clicks, Click{X: x, Y: y, Button: button})
	return nil
}

func (r *Recorder) Scroll(dx, dy int) error {
	if r.Err != nil {
		return r.Err
	}
	r.Scrolls = append(r.Scrolls, Scroll{Dx: dx, Dy: dy})
	return nil
}
