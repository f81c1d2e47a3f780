package render

import "math"

// Size is a width/height pair in design units.
type Size struct {
	W, H float64
}

// BusinessCard is the 3.5in x 2in card at 96 units per inch.
var BusinessCard = Size{W: 336, H: 192}

type Rect struct {
	X, Y, W, H float64
}

// Mapper converts a template's design-space layout to output pixels. The
// design space is scaled uniformly (never stretched) and centered.
type Mapper struct {
	design Size
	k      float64
	offX   float64
	offY   float64
}

func NewMapper(design Size, outW, outH int) Mapper {
	if design.W <= 0 || design.H <= 0 {
		return Mapper{design: design}
	}
	ow, oh := float64(outW), float64(outH)
	k := math.Min(ow/design.W, oh/design.H)
	return Mapper{
		design: design,
		k:      k,
		offX:   (ow - design.W*k) / 2,
		offY:   (oh - design.H*k) / 2,
	}
}

func (m Mapper) Map(x, y, w, h float64) Rect {
	return Rect{
		X: x*m.k + m.offX,
		Y: y*m.k + m.offY,
		W: w * m.k,
		H: h * m.k,
	}
}

func (m Mapper) Point(x, y float64) (float64, float64) {
	return x*m.k + m.offX, y*m.k + m.offY
}

// Unmap converts output pixels back to design units.
func (m Mapper) Unmap(x, y float64) (float64, float64) {
	if m.k == 0 {
		return 0, 0
	}
	return (x - m.offX) / m.k, (y - m.offY) / m.k
}

// Len scales a design length (font size, radius, stroke width).
func (m Mapper) Len(v float64) float64 { return v * m.k }

func (m Mapper) Scale() float64 { return m.k }

func (m Mapper) Offset() (float64, float64) { return m.offX, m.offY }

// Bounds is the whole design space in output pixels.
func (m Mapper) Bounds() Rect {
	return m.Map(0, 0, m.design.W, m.design.H)
}
