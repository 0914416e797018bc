//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

static CFStringRef ax_copy_role(AXUIElementRef el) {
    CFTypeRef value = NULL;
    if (AXUIElementCopyAttributeValue(el, kAXRoleAttribute, &value) != kAXErrorSuccess || value == NULL) {
        return NULL;
    }
    if (CFGetTypeID(value) != CFStringGetTypeID()) {
        CFRelease(value);
        return NULL;
    }
    return (CFStringRef)value;
}

static int ax_copy_frame(AXUIElementRef el, double *x, double *y, double *w, double *h) {
    CFTypeRef posVal = NULL, sizeVal = NULL;
    CGPoint pos;
    CGSize size;
    if (AXUIElementCopyAttributeValue(el, kAXPositionAttribute, &posVal) != kAXErrorSuccess || posVal == NULL) {
        return -1;
    }
    if (AXUIElementCopyAttributeValue(el, kAXSizeAttribute, &sizeVal) != kAXErrorSuccess || sizeVal == NULL) {
        CFRelease(posVal);
        return -1;
    }
    int ok = AXValueGetValue((AXValueRef)posVal, kAXValueCGPointType, &pos) &&
             AXValueGetValue((AXValueRef)sizeVal, kAXValueCGSizeType, &size);
    CFRelease(posVal);
    CFRelease(sizeVal);
    if (!ok) {
        return -1;
    }
    *x = pos.x;
    *y = pos.y;
    *w = size.width;
    *h = size.height;
    return 0;
}

static int ax_enabled(AXUIElementRef el) {
    CFTypeRef value = NULL;
    if (AXUIElementCopyAttributeValue(el, kAXEnabledAttribute, &value) != kAXErrorSuccess || value == NULL) {
        // Elements without the attribute count as enabled.
        return 1;
    }
    int enabled = (value == kCFBooleanTrue);
    CFRelease(value);
    return enabled;
}

static CFArrayRef ax_copy_element_array(AXUIElementRef el, CFStringRef attr) {
    CFTypeRef value = NULL;
    if (AXUIElementCopyAttributeValue(el, attr, &value) != kAXErrorSuccess || value == NULL) {
        return NULL;
    }
    if (CFGetTypeID(value) != CFArrayGetTypeID()) {
        CFRelease(value);
        return NULL;
    }
    return (CFArrayRef)value;
}

static CFArrayRef ax_copy_children(AXUIElementRef el) {
    return ax_copy_element_array(el, kAXChildrenAttribute);
}

static CFArrayRef ax_copy_tabs(AXUIElementRef el) {
    return ax_copy_element_array(el, CFSTR("AXTabs"));
}

static AXUIElementRef ax_copy_parent(AXUIElementRef el) {
    CFTypeRef value = NULL;
    if (AXUIElementCopyAttributeValue(el, kAXParentAttribute, &value) != kAXErrorSuccess || value == NULL) {
        return NULL;
    }
    if (CFGetTypeID(value) != AXUIElementGetTypeID()) {
        CFRelease(value);
        return NULL;
    }
    return (AXUIElementRef)value;
}

static AXUIElementRef ax_array_element_at(CFArrayRef arr, int i) {
    AXUIElementRef el = (AXUIElementRef)CFArrayGetValueAtIndex(arr, i);
    CFRetain(el);
    return el;
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/yhao3/hinto/internal/platform"
)

// Element wraps one AXUIElementRef. The wrapper owns a retained reference
// released by a finalizer; refs are only valid while the source process
// keeps the element alive, so holders must treat them as ephemeral.
type Element struct {
	ref C.AXUIElementRef
}

// wrapElement takes ownership of an already-retained ref.
func wrapElement(ref C.AXUIElementRef) *Element {
	el := &Element{ref: ref}
	runtime.SetFinalizer(el, func(e *Element) {
		C.CFRelease(C.CFTypeRef(e.ref))
	})
	return el
}

func (e *Element) Role() (string, bool) {
	cstr := C.ax_copy_role(e.ref)
	if unsafe.Pointer(cstr) == nil {
		return "", false
	}
	defer C.CFRelease(C.CFTypeRef(cstr))
	return cfStringToGo(cstr), true
}

func (e *Element) Frame() (platform.Rect, bool) {
	var x, y, w, h C.double
	if C.ax_copy_frame(e.ref, &x, &y, &w, &h) != 0 {
		return platform.Rect{}, false
	}
	return platform.Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}, true
}

func (e *Element) Enabled() bool {
	return C.ax_enabled(e.ref) != 0
}

func (e *Element) Children(max int) []platform.UIElement {
	arr := C.ax_copy_children(e.ref)
	return elementsFromArray(arr, max)
}

func (e *Element) Parent() (platform.UIElement, bool) {
	ref := C.ax_copy_parent(e.ref)
	if unsafe.Pointer(ref) == nil {
		return nil, false
	}
	return wrapElement(ref), true
}

func (e *Element) Tabs() []platform.UIElement {
	arr := C.ax_copy_tabs(e.ref)
	return elementsFromArray(arr, 0)
}

// elementsFromArray converts and releases a CFArray of AXUIElementRefs.
// A max of 0 means no limit.
func elementsFromArray(arr C.CFArrayRef, max int) []platform.UIElement {
	if unsafe.Pointer(arr) == nil {
		return nil
	}
	defer C.CFRelease(C.CFTypeRef(arr))

	n := int(C.CFArrayGetCount(arr))
	if max > 0 && n > max {
		n = max
	}
	out := make([]platform.UIElement, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, wrapElement(C.ax_array_element_at(arr, C.int(i))))
	}
	return out
}

func cfStringToGo(s C.CFStringRef) string {
	if ptr := C.CFStringGetCStringPtr(s, C.kCFStringEncodingUTF8); ptr != nil {
		return C.GoString(ptr)
	}
	length := C.CFStringGetLength(s)
	bufLen := C.CFStringGetMaximumSizeForEncoding(length, C.kCFStringEncodingUTF8) + 1
	buf := make([]byte, int(bufLen))
	if C.CFStringGetCString(s, (*C.char)(unsafe.Pointer(&buf[0])), bufLen, C.kCFStringEncodingUTF8) == 0 {
		return ""
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
