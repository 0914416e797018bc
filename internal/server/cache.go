package server

import (
	"math"
	"sync"
	"time"

	"github.com/yhao3/hinto/internal/model"
)

// LabelPoint is the click target cached for one label. Only coordinates
// are kept: element handles from a finished discovery cycle must not be
// held across calls.
type LabelPoint struct {
	Label string
	Role  string
	X, Y  int
}

// ScanCache remembers the last discovery result for a short window so a
// discover call followed by a click does not rescan. A ttl of 0 disables
// caching entirely.
type ScanCache struct {
	mu     sync.Mutex
	points map[string]LabelPoint
	stamp  time.Time
	ttl    time.Duration
}

func NewScanCache(ttl time.Duration) *ScanCache {
	return &ScanCache{points: make(map[string]LabelPoint), ttl: ttl}
}

// Put replaces the cached set with a fresh discovery result.
func (c *ScanCache) Put(labeled []model.Labeled) {
	if c.ttl == 0 {
		return
	}
	points := make(map[string]LabelPoint, len(labeled))
	for _, l := range labeled {
		cx, cy := l.Element.Frame.Center()
		points[l.Label] = LabelPoint{
			Label: l.Label,
			Role:  l.Element.Role,
			X:     int(math.Round(cx)),
			Y:     int(math.Round(cy)),
		}
	}
	c.mu.Lock()
	c.points = points
	c.stamp = time.Now()
	c.mu.Unlock()
}

// Lookup returns the cached point for a label, missing when the entry is
// absent or the cache has expired.
func (c *ScanCache) Lookup(label string) (LabelPoint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ttl == 0 || time.Since(c.stamp) >= c.ttl {
		return LabelPoint{}, false
	}
	p, ok := c.points[label]
	return p, ok
}

// InvalidateAll clears the cache, e.g. after input that changed the UI.
func (c *ScanCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.points = make(map[string]LabelPoint)
	c.stamp = time.Time{}
}
