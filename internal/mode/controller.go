package mode

import (
	"log/slog"
	"math"

	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/overlay"
	"github.com/yhao3/hinto/internal/platform"
)

// DiscoverFunc runs one discovery cycle and returns the labeled element
// set for the frontmost window.
type DiscoverFunc func() ([]model.Labeled, error)

// Controller owns the machine state and executes effects against the
// overlay and the input backend. All methods must be called from a single
// goroutine; the key monitor's dispatch loop satisfies that.
type Controller struct {
	cfg      Config
	log      *slog.Logger
	discover DiscoverFunc
	overlay  overlay.Overlay
	input    platform.Inputter

	state State
}

func NewController(cfg Config, log *slog.Logger, discover DiscoverFunc, ov overlay.Overlay, input platform.Inputter) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{cfg: cfg, log: log, discover: discover, overlay: ov, input: input}
}

// Active reports whether a mode other than idle is engaged, i.e. whether
// keystrokes should be routed to HandleKey.
func (c *Controller) Active() bool { return c.state.Phase != PhaseIdle }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.state.Phase }

// Toggle handles the activation hotkey.
func (c *Controller) Toggle() {
	c.dispatch(Toggled{})
}

// HandleKey routes one keystroke into the machine. It returns false when
// no mode is active and the key should pass through untouched.
func (c *Controller) HandleKey(k Key) bool {
	if !c.Active() {
		return false
	}
	c.dispatch(KeyPressed{Key: k})
	return true
}

func (c *Controller) dispatch(ev Event) {
	next, effects := Update(c.state, ev, c.cfg)
	c.state = next
	for _, eff := range effects {
		c.run(eff)
	}
}

func (c *Controller) run(eff Effect) {
	switch eff := eff.(type) {
	case Rediscover:
		labeled, err := c.discover()
		if err != nil {
			// Discovery failure is not fatal: enter click-select with an
			// empty set so escape still behaves normally.
			c.log.Warn("discovery failed", "error", err)
			labeled = nil
		}
		c.dispatch(Activated{Labeled: labeled})

	case ShowLabels:
		c.overlay.ShowLabels(eff.Labeled)

	case FilterLabels:
		c.overlay.FilterLabels(eff.Prefix)

	case HideOverlay:
		// Ordered before any click effect so the click lands on the
		// target, not on a label bubble.
		c.overlay.Hide()

	case ClickElement:
		cx, cy := eff.Element.Frame.Center()
		x, y := int(math.Round(cx)), int(math.Round(cy))
		if err := c.input.Click(x, y, eff.Button); err != nil {
			c.log.Error("click failed", "x", x, "y", y, "button", eff.Button, "error", err)
			return
		}
		c.log.Debug("clicked", "role", eff.Element.Role, "x", x, "y", y, "button", eff.Button)

	case ScrollBy:
		if err := c.input.Scroll(eff.Dx, eff.Dy); err != nil {
			c.log.Error("scroll failed", "dx", eff.Dx, "dy", eff.Dy, "error", err)
		}
	}
}
