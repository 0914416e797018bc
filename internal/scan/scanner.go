package scan

import (
	"log/slog"
	"time"

	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/platform"
)

// Scanner is one element discovery strategy. Scan never fails: toolkits
// that expose nothing yield an empty slice.
type Scanner interface {
	Name() string
	Scan(ctx *Context) []model.Element
}

// resolve snapshots a handle into an element. Nodes missing a role or
// frame attribute are unusable and dropped.
func resolve(h platform.UIElement) (model.Element, bool) {
	role, ok := h.Role()
	if !ok {
		return model.Element{}, false
	}
	frame, ok := h.Frame()
	if !ok {
		return model.Element{}, false
	}
	return model.Element{Role: role, Frame: frame, Enabled: h.Enabled(), Handle: h}, true
}

// Timed wraps a scanner with wall-clock instrumentation. It forwards
// results unchanged; when the timing flag is off the builder never
// constructs one, so instrumentation has zero behavioral effect.
type Timed struct {
	Inner Scanner
	Log   *slog.Logger
}

func (t *Timed) Name() string { return t.Inner.Name() }

func (t *Timed) Scan(ctx *Context) []model.Element {
	start := time.Now()
	elements := t.Inner.Scan(ctx)
	t.Log.Debug("scanner finished",
		"scanner", t.Inner.Name(),
		"elements", len(elements),
		"duration", time.Since(start),
	)
	return elements
}
