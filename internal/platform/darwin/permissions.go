//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>

static int is_trusted() {
    return AXIsProcessTrusted();
}

static void prompt_trust() {
    CFStringRef keys[] = { kAXTrustedCheckOptionPrompt };
    CFTypeRef values[] = { kCFBooleanTrue };
    CFDictionaryRef options = CFDictionaryCreate(NULL,
        (const void **)keys, (const void **)values, 1,
        &kCFTypeDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);
    AXIsProcessTrustedWithOptions(options);
    CFRelease(options);
}
*/
import "C"
import "fmt"

// CheckAccessibilityPermission returns an error with instructions when the
// process lacks macOS accessibility permission.
func CheckAccessibilityPermission() error {
	if C.is_trusted() == 0 {
		return fmt.Errorf(
			"accessibility permission required\n\n" +
				"Grant permission at: System Settings > Privacy & Security > Accessibility\n" +
				"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command).\n" +
				"Then restart the terminal and try again.")
	}
	return nil
}

// RequestAccessibilityPermission triggers the system permission prompt if
// the process is not yet trusted.
func RequestAccessibilityPermission() {
	if C.is_trusted() == 0 {
		C.prompt_trust()
	}
}
