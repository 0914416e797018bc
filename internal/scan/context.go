package scan

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yhao3/hinto/internal/platform"
)

// Context carries the shared, read-only inputs of one discovery cycle.
// A context is valid only for the cycle that created it; handles reached
// through it must not be retained once the cycle ends.
type Context struct {
	Cycle       uuid.UUID
	App         platform.UIElement
	Window      platform.UIElement // nil when the app has no focused window
	WindowFrame *platform.Rect
	Screens     []platform.Rect
}

// NewContext snapshots the frontmost application, its focused window, and
// the display layout. A missing focused window is not an error: menu-bar
// and hit-test scanning still apply.
func NewContext(ax platform.Accessibility) (*Context, error) {
	app, err := ax.FrontApp()
	if err != nil {
		return nil, fmt.Errorf("resolve frontmost application: %w", err)
	}
	ctx := &Context{
		Cycle:   uuid.New(),
		App:     app,
		Screens: ax.Screens(),
	}
	if win, ok := ax.FocusedWindow(app); ok {
		ctx.Window = win
		if frame, ok := win.Frame(); ok {
			ctx.WindowFrame = &frame
		}
	}
	return ctx, nil
}
