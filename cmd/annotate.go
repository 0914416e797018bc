package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/kbinani/screenshot"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/yhao3/hinto/internal/model"
)

// writeAnnotated captures the primary display, draws a box and label for
// every labeled element, and writes the result as PNG.
func writeAnnotated(path string, labeled []model.Labeled) error {
	if screenshot.NumActiveDisplays() == 0 {
		return fmt.Errorf("no active displays to capture")
	}
	img, err := screenshot.CaptureDisplay(0)
	if err != nil {
		return fmt.Errorf("capture display: %w", err)
	}

	displayBounds := screenshot.GetDisplayBounds(0)
	annotated := annotateLabels(img, labeled, displayBounds)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, annotated); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// annotateLabels draws bounding boxes and label text. Element frames are
// screen-absolute points; the scale ratio converts them to image pixels,
// which absorbs Retina 2x capture automatically.
func annotateLabels(img image.Image, labeled []model.Labeled, display image.Rectangle) *image.RGBA {
	rgba := imageToRGBA(img)

	imgBounds := img.Bounds()
	scaleX, scaleY := 1.0, 1.0
	if w := display.Dx(); w > 0 {
		scaleX = float64(imgBounds.Dx()) / float64(w)
	}
	if h := display.Dy(); h > 0 {
		scaleY = float64(imgBounds.Dy()) / float64(h)
	}

	boxColor := color.RGBA{R: 255, G: 200, B: 0, A: 255}
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor := color.RGBA{R: 0, G: 0, B: 0, A: 200}

	for _, l := range labeled {
		fr := l.Element.Frame
		x := int((fr.X - float64(display.Min.X)) * scaleX)
		y := int((fr.Y - float64(display.Min.Y)) * scaleY)
		w := int(fr.W * scaleX)
		h := int(fr.H * scaleY)

		drawRectangle(rgba, x, y, x+w, y+h, boxColor)
		drawTextWithOutline(rgba, l.Label, x+w/2, y+h/2, textColor, outlineColor)
	}
	return rgba
}

func imageToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func inBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline, clamped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		if inBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if inBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}
	for y := y1; y < y2; y++ {
		if inBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if inBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline draws text centered at (x, y) with a 1px outline.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13: 7px advance, 13px line height.
	offsetX := x - len(text)*7/2
	offsetY := y + 13/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(outlineColor),
				Face: basicfont.Face7x13,
				Dot: fixed.Point26_6{
					X: fixed.Int26_6((offsetX + dx) * 64),
					Y: fixed.Int26_6((offsetY + dy) * 64),
				},
			}
			d.DrawString(text)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(offsetX * 64),
			Y: fixed.Int26_6(offsetY * 64),
		},
	}
	d.DrawString(text)
}
