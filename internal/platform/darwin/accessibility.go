//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreGraphics -framework AppKit -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>
#import <AppKit/AppKit.h>

static int front_app_pid() {
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
    return app ? (int)app.processIdentifier : -1;
}

static AXUIElementRef ax_app_for_pid(int pid) {
    return AXUIElementCreateApplication((pid_t)pid);
}

static AXUIElementRef ax_copy_single(AXUIElementRef el, CFStringRef attr) {
    CFTypeRef value = NULL;
    if (AXUIElementCopyAttributeValue(el, attr, &value) != kAXErrorSuccess || value == NULL) {
        return NULL;
    }
    if (CFGetTypeID(value) != AXUIElementGetTypeID()) {
        CFRelease(value);
        return NULL;
    }
    return (AXUIElementRef)value;
}

static AXUIElementRef ax_focused_window(AXUIElementRef app) {
    return ax_copy_single(app, kAXFocusedWindowAttribute);
}

static AXUIElementRef ax_menu_bar(AXUIElementRef app) {
    return ax_copy_single(app, kAXMenuBarAttribute);
}

static AXUIElementRef ax_element_at(double x, double y) {
    static AXUIElementRef systemWide = NULL;
    if (systemWide == NULL) {
        systemWide = AXUIElementCreateSystemWide();
    }
    AXUIElementRef el = NULL;
    if (AXUIElementCopyElementAtPosition(systemWide, (float)x, (float)y, &el) != kAXErrorSuccess) {
        return NULL;
    }
    return el;
}

// ax_search runs the toolkit's parameterized search-predicate query
// against a window.
static CFArrayRef ax_search(AXUIElementRef window, CFStringRef searchKey, int limit) {
    CFNumberRef limitNum = CFNumberCreate(NULL, kCFNumberIntType, &limit);
    CFStringRef keys[3] = { CFSTR("AXSearchKey"), CFSTR("AXResultsLimit"), CFSTR("AXDirection") };
    CFTypeRef values[3] = { searchKey, limitNum, CFSTR("AXDirectionNext") };
    CFDictionaryRef params = CFDictionaryCreate(NULL,
        (const void **)keys, (const void **)values, 3,
        &kCFTypeDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);
    CFRelease(limitNum);

    CFTypeRef result = NULL;
    AXError err = AXUIElementCopyParameterizedAttributeValue(
        window, CFSTR("AXUIElementsForSearchPredicate"), params, &result);
    CFRelease(params);
    if (err != kAXErrorSuccess || result == NULL) {
        return NULL;
    }
    if (CFGetTypeID(result) != CFArrayGetTypeID()) {
        CFRelease(result);
        return NULL;
    }
    return (CFArrayRef)result;
}

static int display_count() {
    uint32_t count = 0;
    CGGetActiveDisplayList(0, NULL, &count);
    return (int)count;
}

static int display_bounds(int idx, double *x, double *y, double *w, double *h) {
    uint32_t count = 0;
    CGDirectDisplayID displays[16];
    CGGetActiveDisplayList(16, displays, &count);
    if (idx < 0 || idx >= (int)count) {
        return -1;
    }
    CGRect r = CGDisplayBounds(displays[idx]);
    *x = r.origin.x;
    *y = r.origin.y;
    *w = r.size.width;
    *h = r.size.height;
    return 0;
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/yhao3/hinto/internal/platform"
)

// Service implements platform.Accessibility on the macOS AX API.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) FrontApp() (platform.UIElement, error) {
	pid := int(C.front_app_pid())
	if pid <= 0 {
		return nil, fmt.Errorf("no frontmost application")
	}
	ref := C.ax_app_for_pid(C.int(pid))
	if unsafe.Pointer(ref) == nil {
		return nil, fmt.Errorf("create accessibility element for pid %d", pid)
	}
	return wrapElement(ref), nil
}

func (s *Service) FocusedWindow(app platform.UIElement) (platform.UIElement, bool) {
	el, ok := app.(*Element)
	if !ok {
		return nil, false
	}
	ref := C.ax_focused_window(el.ref)
	if unsafe.Pointer(ref) == nil {
		return nil, false
	}
	return wrapElement(ref), true
}

func (s *Service) MenuBar(app platform.UIElement) (platform.UIElement, bool) {
	el, ok := app.(*Element)
	if !ok {
		return nil, false
	}
	ref := C.ax_menu_bar(el.ref)
	if unsafe.Pointer(ref) == nil {
		return nil, false
	}
	return wrapElement(ref), true
}

func (s *Service) ElementAt(x, y float64) (platform.UIElement, bool) {
	ref := C.ax_element_at(C.double(x), C.double(y))
	if unsafe.Pointer(ref) == nil {
		return nil, false
	}
	return wrapElement(ref), true
}

func (s *Service) Search(window platform.UIElement, key platform.SearchKey, max int) []platform.UIElement {
	el, ok := window.(*Element)
	if !ok {
		return nil
	}
	cKey := cfStringCreate(string(key))
	defer C.CFRelease(C.CFTypeRef(cKey))

	arr := C.ax_search(el.ref, cKey, C.int(max))
	return elementsFromArray(arr, max)
}

func (s *Service) Screens() []platform.Rect {
	n := int(C.display_count())
	screens := make([]platform.Rect, 0, n)
	for i := 0; i < n; i++ {
		var x, y, w, h C.double
		if C.display_bounds(C.int(i), &x, &y, &w, &h) != 0 {
			continue
		}
		screens = append(screens, platform.Rect{
			X: float64(x), Y: float64(y), W: float64(w), H: float64(h),
		})
	}
	return screens
}

func cfStringCreate(s string) C.CFStringRef {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return C.CFStringCreateWithCString(nil, cs, C.kCFStringEncodingUTF8)
}
