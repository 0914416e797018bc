// Package overlay defines the narrow interface the core uses to show and
// clear labels. Rendering proper (glyphs, bubbles, themes) lives outside
// this repository; the core only issues calls and never reads overlay
// state back.
package overlay

import (
	"log/slog"

	"github.com/yhao3/hinto/internal/model"
)

// Overlay renders labels and highlights on screen.
type Overlay interface {
	// ShowLabels displays a label bubble for every element.
	ShowLabels(labeled []model.Labeled)

	// FilterLabels shows labels matching the typed prefix at full opacity
	// and dims the rest.
	FilterLabels(prefix string)

	// HighlightElement emphasizes a single element, e.g. the unique match
	// about to be clicked.
	HighlightElement(el model.Element)

	// Hide clears everything the overlay is showing.
	Hide()
}

// Debug is an Overlay that logs calls instead of drawing. It keeps the
// full pipeline exercisable without a rendering layer attached.
type Debug struct {
	Log *slog.Logger
}

func (d *Debug) ShowLabels(labeled []model.Labeled) {
	d.Log.Debug("overlay: show labels", "count", len(labeled))
}

func (d *Debug) FilterLabels(prefix string) {
	d.Log.Debug("overlay: filter labels", "prefix", prefix)
}

func (d *Debug) HighlightElement(el model.Element) {
	d.Log.Debug("overlay: highlight", "role", el.Role, "frame", el.Frame)
}

func (d *Debug) Hide() {
	d.Log.Debug("overlay: hide")
}
