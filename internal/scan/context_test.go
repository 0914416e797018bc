package scan

import (
	"testing"

	"github.com/yhao3/hinto/internal/platform/platformtest"
)

func TestNewContext_CycleIdentity(t *testing.T) {
	svc, _ := newWindowService()
	first, err := NewContext(svc)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewContext(svc)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cycle == second.Cycle {
		t.Error("each discovery cycle must get a fresh identity")
	}
}

func TestNewContext_MissingWindowIsNotAnError(t *testing.T) {
	app := platformtest.NewNode("AXApplication", rect(0, 0, 1920, 1080))
	svc := &platformtest.Service{App: app}
	ctx, err := NewContext(svc)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Window != nil || ctx.WindowFrame != nil {
		t.Error("expected nil window when no window is focused")
	}
}

func TestNewContext_NoFrontAppFails(t *testing.T) {
	svc := &platformtest.Service{}
	if _, err := NewContext(svc); err == nil {
		t.Error("expected error when no application is frontmost")
	}
}

func TestNewContext_CapturesWindowFrame(t *testing.T) {
	svc, _ := newWindowService()
	ctx, err := NewContext(svc)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.WindowFrame == nil || ctx.WindowFrame.W != 800 {
		t.Errorf("window frame not captured: %+v", ctx.WindowFrame)
	}
}
