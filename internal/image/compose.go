package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// CoverScale is the uniform factor that makes an iw x ih image fully cover a
// tw x th box.
func CoverScale(iw, ih, tw, th float64) float64 {
	if iw <= 0 || ih <= 0 {
		return 0
	}
	return math.Max(tw/iw, th/ih)
}

// Cover scales img uniformly until it covers w x h, then crops the excess
// evenly from both sides.
func Cover(img image.Image, w, h int) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return imaging.New(0, 0, color.Transparent)
	}
	b := img.Bounds()
	k := CoverScale(float64(b.Dx()), float64(b.Dy()), float64(w), float64(h))
	if k == 0 {
		return imaging.New(w, h, color.Transparent)
	}
	rw := max(int(math.Ceil(float64(b.Dx())*k)), w)
	rh := max(int(math.Ceil(float64(b.Dy())*k)), h)
	resized := imaging.Resize(img, rw, rh, imaging.Lanczos)
	return imaging.CropCenter(resized, w, h)
}
