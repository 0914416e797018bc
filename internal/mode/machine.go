package mode

import (
	"strings"

	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/platform"
)

// Phase is the active interaction mode.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseClickSelect
	PhaseScrollNav
)

func (p Phase) String() string {
	switch p {
	case PhaseClickSelect:
		return "click-select"
	case PhaseScrollNav:
		return "scroll-nav"
	default:
		return "idle"
	}
}

// State is the machine's complete state: the only cross-component mutable
// value in the core. The labeled set is discarded in its entirety on every
// return to idle.
type State struct {
	Phase   Phase
	Labeled []model.Labeled
	Typed   string
}

// Config is the per-process snapshot of the preferences the machine reads.
type Config struct {
	// AutoClick clicks immediately once typed input matches exactly one
	// label, without waiting for enter.
	AutoClick bool
}

// Event is an input to the transition function.
type Event interface{ isEvent() }

// Toggled is the activation hotkey: it starts discovery from idle and
// cancels from any active phase.
type Toggled struct{}

// Activated delivers a freshly discovered, labeled element set. An empty
// set still enters click-select so cancellation stays consistent.
type Activated struct{ Labeled []model.Labeled }

// KeyPressed is one forwarded keystroke.
type KeyPressed struct{ Key Key }

func (Toggled) isEvent()    {}
func (Activated) isEvent()  {}
func (KeyPressed) isEvent() {}

// Effect is an action the driver executes after a transition. Effects are
// ordered; the driver runs them in sequence.
type Effect interface{ isEffect() }

// Rediscover asks the driver to run a discovery cycle and feed the result
// back as an Activated event. Re-entering click-select always rediscovers:
// handles from a previous cycle may already be stale.
type Rediscover struct{}

// ShowLabels displays the labeled set on the overlay.
type ShowLabels struct{ Labeled []model.Labeled }

// FilterLabels dims labels that no longer match the typed prefix.
type FilterLabels struct{ Prefix string }

// HideOverlay clears the overlay.
type HideOverlay struct{}

// ClickElement dispatches a synthetic click at the element's center.
type ClickElement struct {
	Element model.Element
	Button  platform.MouseButton
}

// ScrollBy dispatches one scroll event in line units (positive dy up,
// positive dx left).
type ScrollBy struct{ Dx, Dy int }

func (Rediscover) isEffect()   {}
func (ShowLabels) isEffect()   {}
func (FilterLabels) isEffect() {}
func (HideOverlay) isEffect()  {}
func (ClickElement) isEffect() {}
func (ScrollBy) isEffect()     {}

// Scroll increments in line units.
const (
	scrollStep     = 5
	scrollStepFast = 25
	scrollHalfPage = 20
)

// Update is the pure transition function. It never performs I/O; the
// returned effects are executed by the Controller.
func Update(s State, ev Event, cfg Config) (State, []Effect) {
	switch ev := ev.(type) {
	case Toggled:
		if s.Phase == PhaseIdle {
			return s, []Effect{Rediscover{}}
		}
		// Activation is a toggle: hotkey while active cancels.
		return State{Phase: PhaseIdle}, []Effect{HideOverlay{}}

	case Activated:
		next := State{Phase: PhaseClickSelect, Labeled: ev.Labeled}
		return next, []Effect{ShowLabels{Labeled: ev.Labeled}}

	case KeyPressed:
		switch s.Phase {
		case PhaseClickSelect:
			return updateClickSelect(s, ev.Key, cfg)
		case PhaseScrollNav:
			return updateScrollNav(s, ev.Key)
		}
	}
	return s, nil
}

func updateClickSelect(s State, k Key, cfg Config) (State, []Effect) {
	switch k.Code {
	case CodeEscape:
		return State{Phase: PhaseIdle}, []Effect{HideOverlay{}}

	case CodeTab:
		// Scroll mode reuses nothing from the labeled set; it is dropped
		// here and rebuilt on the way back.
		return State{Phase: PhaseScrollNav}, []Effect{HideOverlay{}}

	case CodeEnter:
		button := platform.MouseLeft
		if k.Shift {
			button = platform.MouseRight
		}
		effects := []Effect{HideOverlay{}}
		if matches := model.MatchPrefix(s.Labeled, s.Typed); len(matches) == 1 {
			effects = append(effects, ClickElement{Element: matches[0].Element, Button: button})
		}
		return State{Phase: PhaseIdle}, effects

	case CodeChar:
		typed := s.Typed + string(k.Char)
		matches := model.MatchPrefix(s.Labeled, typed)
		if cfg.AutoClick && len(matches) == 1 && matches[0].Label == strings.ToUpper(typed) {
			return State{Phase: PhaseIdle}, []Effect{
				HideOverlay{},
				ClickElement{Element: matches[0].Element, Button: platform.MouseLeft},
			}
		}
		next := s
		next.Typed = typed
		return next, []Effect{FilterLabels{Prefix: typed}}
	}
	return s, nil
}

func updateScrollNav(s State, k Key) (State, []Effect) {
	switch k.Code {
	case CodeEscape:
		return State{Phase: PhaseIdle}, []Effect{HideOverlay{}}

	case CodeTab:
		// Back to selection: always rediscover rather than reuse the old
		// set, since the window may have scrolled or changed.
		return s, []Effect{Rediscover{}}

	case CodeChar:
		step := scrollStep
		if k.Shift {
			step = scrollStepFast
		}
		switch unicodeLower(k.Char) {
		case 'h':
			return s, []Effect{ScrollBy{Dx: step}}
		case 'l':
			return s, []Effect{ScrollBy{Dx: -step}}
		case 'j':
			return s, []Effect{ScrollBy{Dy: -step}}
		case 'k':
			return s, []Effect{ScrollBy{Dy: step}}
		case 'd':
			return s, []Effect{ScrollBy{Dy: -scrollHalfPage}}
		case 'u':
			return s, []Effect{ScrollBy{Dy: scrollHalfPage}}
		}
	}
	return s, nil
}

func unicodeLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
