//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices
#include <CoreGraphics/CoreGraphics.h>

// Click at screen coordinates. button: 0=left, 1=right.
static int cg_click(float x, float y, int button) {
    CGPoint point = CGPointMake(x, y);

    CGEventType downType, upType;
    CGMouseButton cgButton;
    if (button == 1) {
        cgButton = kCGMouseButtonRight;
        downType = kCGEventRightMouseDown;
        upType = kCGEventRightMouseUp;
    } else {
        cgButton = kCGMouseButtonLeft;
        downType = kCGEventLeftMouseDown;
        upType = kCGEventLeftMouseUp;
    }

    CGEventRef down = CGEventCreateMouseEvent(NULL, downType, point, cgButton);
    CGEventRef up = CGEventCreateMouseEvent(NULL, upType, point, cgButton);
    if (!down || !up) {
        if (down) CFRelease(down);
        if (up) CFRelease(up);
        return -1;
    }
    CGEventPost(kCGHIDEventTap, down);
    CGEventPost(kCGHIDEventTap, up);
    CFRelease(down);
    CFRelease(up);
    return 0;
}

// Scroll in line units. dy positive = up, dx positive = left.
static int cg_scroll(int dy, int dx) {
    CGEventRef scroll = CGEventCreateScrollWheelEvent(
        NULL,
        kCGScrollEventUnitLine,
        2,
        dy,
        dx
    );
    if (!scroll) return -1;
    CGEventPost(kCGHIDEventTap, scroll);
    CFRelease(scroll);
    return 0;
}
*/
import "C"

import (
	"fmt"

	"github.com/yhao3/hinto/internal/platform"
)

// Inputter implements platform.Inputter via CGEvent synthesis.
type Inputter struct{}

func NewInputter() *Inputter {
	return &Inputter{}
}

func (inp *Inputter) Click(x, y int, button platform.MouseButton) error {
	cButton := C.int(0)
	if button == platform.MouseRight {
		cButton = 1
	}
	if C.cg_click(C.float(x), C.float(y), cButton) != 0 {
		return fmt.Errorf("failed to click at (%d, %d)", x, y)
	}
	return nil
}

func (inp *Inputter) Scroll(dx, dy int) error {
	if C.cg_scroll(C.int(dy), C.int(dx)) != 0 {
		return fmt.Errorf("failed to scroll by (%d, %d)", dx, dy)
	}
	return nil
}
