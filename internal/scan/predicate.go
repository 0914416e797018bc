package scan

import (
	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/platform"
)

// searchResultCap bounds the results accepted per category so one query
// against a pathological window cannot dominate discovery latency.
const searchResultCap = 200

// Predicate is the fast scanning strategy: one structured search query per
// element category against the focused window. Non-conforming toolkits
// (notably some Electron and custom-rendered UIs) answer these queries
// with silence, which is why the tree-traversal fallback exists.
type Predicate struct {
	AX platform.Accessibility
}

func (s *Predicate) Name() string { return "search-predicate" }

func (s *Predicate) Scan(ctx *Context) []model.Element {
	if ctx.Window == nil {
		return nil
	}
	var out []model.Element
	for _, key := range platform.AllSearchKeys {
		for _, h := range s.AX.Search(ctx.Window, key, searchResultCap) {
			el, ok := resolve(h)
			if !ok || el.Frame.Empty() {
				continue
			}
			out = append(out, el)
		}
	}
	return out
}
