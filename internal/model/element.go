package model

import "github.com/yhao3/hinto/internal/platform"

// Element is an immutable snapshot of one accessibility node at scan time.
// The Handle is owned by the scan that produced it and must not outlive
// the discovery cycle: a changed focused window invalidates all handles.
type Element struct {
	Role    string
	Frame   platform.Rect
	Enabled bool
	Handle  platform.UIElement
}

// Key returns the element's rounded-rectangle identity used for
// deduplication across scanners.
func (e Element) Key() [4]int {
	return e.Frame.Key()
}

// Dedup removes elements whose rounded rectangles collide, keeping the
// first occurrence regardless of which scanner produced it.
func Dedup(elements []Element) []Element {
	seen := make(map[[4]int]bool, len(elements))
	result := make([]Element, 0, len(elements))
	for _, el := range elements {
		k := el.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, el)
	}
	return result
}
