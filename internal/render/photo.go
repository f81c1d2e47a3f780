package render

import (
	"image"
	"math"

	imagepkg "github.com/youruser/agentcard/internal/image"
)

// Placeholder paints something in the photo circle when there is no photo.
// Coordinates are output pixels.
type Placeholder func(f *Frame, cx, cy, r float64)

// Photo composites the image at url into the design-space circle centered
// at (cx, cy). The load runs in the background; a failed load draws nothing.
func (f *Frame) Photo(url string, cx, cy, r float64) {
	f.PhotoOr(url, cx, cy, r, nil)
}

// PhotoOr is Photo with a placeholder drawn when url is empty or fails.
func (f *Frame) PhotoOr(url string, cx, cy, r float64, placeholder Placeholder) {
	ox, oy := f.m.Point(cx, cy)
	or := f.m.Len(r)

	if url == "" {
		f.report.Photo = PhotoNone
		if placeholder != nil {
			placeholder(f, ox, oy, or)
			f.report.Photo = PhotoPlaceholder
		}
		return
	}

	f.async(url, func(img image.Image, err error) {
		if err != nil {
			f.log.Warn("photo unavailable", map[string]interface{}{"url": url, "error": err.Error()})
			f.report.Photo = PhotoFailed
			if placeholder != nil {
				placeholder(f, ox, oy, or)
				f.report.Photo = PhotoPlaceholder
			}
			return
		}
		f.clipPhoto(img, ox, oy, or)
		f.report.Photo = PhotoDrawn
	})
}

// clipPhoto aspect-fills img into the circle (cx, cy, r) in output pixels.
func (f *Frame) clipPhoto(img image.Image, cx, cy, r float64) {
	d := int(math.Ceil(2 * r))
	if d <= 0 {
		return
	}
	filled := imagepkg.Cover(img, d, d)

	f.dc.Push()
	f.dc.DrawCircle(cx, cy, r)
	f.dc.Clip()
	f.dc.DrawImageAnchored(filled, int(math.Round(cx)), int(math.Round(cy)), 0.5, 0.5)
	f.dc.ResetClip()
	f.dc.Pop()
}
