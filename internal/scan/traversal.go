package scan

import (
	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/platform"
)

// Traversal bounds. Depth stops cycles and pathological recursion, the
// element cap stops unbounded work on huge trees, and the child cap
// bounds width per node. The user waits synchronously for labels, so the
// whole walk must stay within interactive latency.
const (
	maxTraversalDepth    = 15
	maxTraversalElements = 2000
	maxChildrenPerNode   = 60
)

// Traversal is the exhaustive fallback strategy: a bounded depth-first
// walk of the accessibility tree from the focused window. It is strictly
// more expensive than the search-predicate scanner and runs only when
// that scanner found nothing.
type Traversal struct{}

func (s *Traversal) Name() string { return "tree-traversal" }

func (s *Traversal) Scan(ctx *Context) []model.Element {
	if ctx.Window == nil {
		return nil
	}
	var out []model.Element
	s.walk(ctx.Window, 0, &out)
	return out
}

func (s *Traversal) walk(h platform.UIElement, depth int, out *[]model.Element) {
	if depth > maxTraversalDepth || len(*out) >= maxTraversalElements {
		return
	}
	if el, ok := resolve(h); ok && !el.Frame.Empty() {
		*out = append(*out, el)
	}
	for _, child := range h.Children(maxChildrenPerNode) {
		if len(*out) >= maxTraversalElements {
			return
		}
		s.walk(child, depth+1, out)
	}
}
