package imagepkg

import (
	"bytes"
	"errors"
	"image"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Longest edge, in pixels, an SVG background is rasterized at. Backgrounds
// are cover-scaled afterwards so this only needs to exceed typical outputs.
const svgRasterSize = 2400

func rasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		return nil, errors.New("svg has no viewBox")
	}
	scale := float64(size) / math.Max(w, h)
	outW := int(math.Round(w * scale))
	outH := int(math.Round(h * scale))
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	icon.SetTarget(0, 0, float64(outW), float64(outH))
	img := image.NewRGBA(image.Rect(0, 0, outW, outH))
	scanner := rasterx.NewScannerGV(outW, outH, img, img.Bounds())
	raster := rasterx.NewDasher(outW, outH, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
