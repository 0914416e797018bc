// Package hook runs the global key monitor: a low-level hook that watches
// every keystroke for the activation hotkey and, while a mode is engaged,
// forwards keys to the mode controller.
//
// The hook library is listen-only: consumed keys still reach the focused
// application. Activation hotkeys are chosen to be chords applications
// ignore, which keeps the limitation invisible in practice.
package hook

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	gohook "github.com/robotn/gohook"

	"github.com/yhao3/hinto/internal/mode"
)

// restartDelay paces reconnection when the OS tears the event hook down,
// e.g. after the process loses input-monitoring permission and regains it.
const restartDelay = 500 * time.Millisecond

// Monitor watches global key events. OnToggle fires on an exact hotkey
// match; OnKey receives every other keystroke while a mode is active and
// reports whether it was handled.
type Monitor struct {
	hotkey   Hotkey
	log      *slog.Logger
	onToggle func()
	onKey    func(mode.Key) bool

	bypass  atomic.Bool
	running atomic.Bool
	quit    chan struct{}
	done    chan struct{}

	// startHook and endHook default to the gohook functions; tests swap
	// them to drive the loop without an OS-level hook.
	startHook func() chan gohook.Event
	endHook   func()
}

func NewMonitor(hk Hotkey, log *slog.Logger, onToggle func(), onKey func(mode.Key) bool) *Monitor {
	if log == nil {
		log = slog.Default()
	}
	return &Monitor{
		hotkey:    hk,
		log:       log,
		onToggle:  onToggle,
		onKey:     onKey,
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
		startHook: gohook.Start,
		endHook:   gohook.End,
	}
}

// Start begins watching in a background goroutine.
func (m *Monitor) Start() error {
	if !m.running.CompareAndSwap(false, true) {
		return fmt.Errorf("monitor already running")
	}
	go m.loop()
	return nil
}

// Stop tears the hook down and waits for the loop to exit.
func (m *Monitor) Stop() {
	if !m.running.Load() {
		return
	}
	close(m.quit)
	m.endHook()
	<-m.done
	m.running.Store(false)
}

// IsRunning reports whether the monitor loop is alive.
func (m *Monitor) IsRunning() bool { return m.running.Load() }

// SetBypass suspends all handling while synthetic input is dispatched, so
// the monitor never reacts to events it caused itself.
func (m *Monitor) SetBypass(on bool) { m.bypass.Store(on) }

func (m *Monitor) loop() {
	defer close(m.done)

	pressed := make(map[uint16]bool)
	for {
		// Stop can land while the loop is between hooks, during the
		// restart sleep or before the very first start. Starting a fresh
		// hook after quit would leave nothing to end it.
		select {
		case <-m.quit:
			return
		default:
		}

		ch := m.startHook()
		if ch == nil {
			m.log.Error("key hook failed to start; check input monitoring permission")
			return
		}
		m.log.Debug("key hook started", "hotkey", m.hotkey.Spec)

		for ev := range ch {
			switch ev.Kind {
			case gohook.KeyDown, gohook.KeyHold:
				if isModifierCode(ev.Rawcode) {
					pressed[ev.Rawcode] = true
					continue
				}
				m.handleKeyDown(ev, pressed)
			case gohook.KeyUp:
				delete(pressed, ev.Rawcode)
			}
		}

		select {
		case <-m.quit:
			return
		default:
		}
		// The OS can force the hook closed; recover rather than leaving
		// the hotkey dead until restart.
		m.log.Warn("key hook channel closed; restarting")
		clear(pressed)
		time.Sleep(restartDelay)
	}
}

func (m *Monitor) handleKeyDown(ev gohook.Event, pressed map[uint16]bool) {
	if m.bypass.Load() {
		return
	}
	if inGroup(ev.Rawcode, m.hotkey.Key) && m.modifiersMatch(pressed) {
		m.onToggle()
		return
	}
	if k, ok := translate(ev.Rawcode, ev.Keychar, anyPressed(pressed, shiftCodes)); ok {
		m.onKey(k)
	}
}

// modifiersMatch reports an exact match: every required modifier is down
// and no modifier outside the combination is.
func (m *Monitor) modifiersMatch(pressed map[uint16]bool) bool {
	for _, group := range m.hotkey.Modifiers {
		if !anyPressed(pressed, group) {
			return false
		}
	}
	for code := range pressed {
		if !m.isRequiredModifier(code) {
			return false
		}
	}
	return true
}

func (m *Monitor) isRequiredModifier(code uint16) bool {
	for _, group := range m.hotkey.Modifiers {
		if inGroup(code, group) {
			return true
		}
	}
	return false
}

func anyPressed(pressed map[uint16]bool, group []uint16) bool {
	for _, c := range group {
		if pressed[c] {
			return true
		}
	}
	return false
}

// translate converts a raw key event to a mode keystroke.
func translate(raw uint16, keychar rune, shift bool) (mode.Key, bool) {
	switch raw {
	case 13:
		return mode.Key{Code: mode.CodeEnter, Shift: shift}, true
	case 27:
		return mode.Key{Code: mode.CodeEscape, Shift: shift}, true
	case 9:
		return mode.Key{Code: mode.CodeTab, Shift: shift}, true
	}
	if raw >= 'A' && raw <= 'Z' {
		ch := rune(raw)
		if !shift {
			ch = ch + ('a' - 'A')
		}
		return mode.Key{Code: mode.CodeChar, Char: ch, Shift: shift}, true
	}
	if raw >= '0' && raw <= '9' {
		return mode.Key{Code: mode.CodeChar, Char: rune(raw), Shift: shift}, true
	}
	if keychar >= ' ' && keychar < 0x7f {
		return mode.Key{Code: mode.CodeChar, Char: keychar, Shift: shift}, true
	}
	return mode.Key{}, false
}
