package scan

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/platform"
)

// Builder orchestrates the scanners for one discovery cycle.
//
// Policy: the search-predicate scanner runs first; only when it returns
// nothing does the tree-traversal fallback run instead, never both, since
// traversal is strictly more expensive. The hit-test and menu-bar scanners
// run unconditionally and their results are unioned in. Overlapping
// discoveries across scanners are not reconciled here; the shared
// rounded-rectangle dedup in the clickability filter resolves them.
type Builder struct {
	ax     platform.Accessibility
	log    *slog.Logger
	timing bool
}

// NewBuilder creates a Builder. When timing is set every scanner is
// wrapped in the instrumentation decorator.
func NewBuilder(ax platform.Accessibility, log *slog.Logger, timing bool) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{ax: ax, log: log, timing: timing}
}

// Discover runs one full discovery cycle: scan, clickability filter,
// dedup, and the on-screen check. Zero discovered elements is a valid
// outcome, not an error.
func (b *Builder) Discover() ([]model.Element, error) {
	_, elements, err := b.DiscoverCycle()
	return elements, err
}

// DiscoverCycle is Discover plus the cycle identity, for callers that
// report it.
func (b *Builder) DiscoverCycle() (uuid.UUID, []model.Element, error) {
	ctx, err := NewContext(b.ax)
	if err != nil {
		return uuid.Nil, nil, err
	}

	elements := b.wrap(&Predicate{AX: b.ax}).Scan(ctx)
	if len(elements) == 0 {
		elements = b.wrap(&Traversal{}).Scan(ctx)
	}
	elements = append(elements, b.wrap(&HitTest{AX: b.ax}).Scan(ctx)...)
	elements = append(elements, b.wrap(&MenuBar{AX: b.ax}).Scan(ctx)...)

	clickable := model.FilterClickable(elements)

	visible := clickable[:0]
	for _, el := range clickable {
		if model.OnScreen(el.Frame, ctx.Screens) {
			visible = append(visible, el)
		}
	}

	b.log.Debug("discovery cycle complete",
		"cycle", ctx.Cycle,
		"scanned", len(elements),
		"labeled", len(visible),
	)
	return ctx.Cycle, visible, nil
}

func (b *Builder) wrap(s Scanner) Scanner {
	if !b.timing {
		return s
	}
	return &Timed{Inner: s, Log: b.log}
}
