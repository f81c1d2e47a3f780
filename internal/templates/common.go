package templates

import (
	"image/color"
	"strings"
	"unicode"

	"github.com/fogleman/gg"

	"github.com/youruser/agentcard/internal/render"
)

var (
	white    = color.RGBA{255, 255, 255, 255}
	ink      = color.RGBA{28, 31, 38, 255}
	slate    = color.RGBA{96, 104, 117, 255}
	mist     = color.RGBA{226, 230, 236, 255}
	navy     = color.RGBA{16, 32, 64, 255}
	gold     = color.RGBA{201, 162, 77, 255}
	teal     = color.RGBA{20, 160, 150, 255}
	indigo   = color.RGBA{58, 46, 140, 255}
	charcoal = color.RGBA{34, 36, 40, 255}
	coral    = color.RGBA{240, 98, 76, 255}
)

// candidates lists the static files tried for a template side, in order.
func candidates(folder, side string, alternates ...string) []string {
	out := []string{
		folder + "/" + side + ".png",
		folder + "/" + side + ".jpg",
		folder + "/" + side + ".webp",
		folder + "/" + side + ".svg",
	}
	for _, a := range alternates {
		out = append(out, folder+"/"+a)
	}
	return out
}

// linearFill paints the whole canvas with a gradient from (x0,y0) to (x1,y1),
// given as fractions of the canvas size.
func linearFill(f *render.Frame, x0, y0, x1, y1 float64, from, to color.Color) {
	dc := f.DC()
	w, h := float64(f.Width()), float64(f.Height())
	grad := gg.NewLinearGradient(x0*w, y0*h, x1*w, y1*h)
	grad.AddColorStop(0, from)
	grad.AddColorStop(1, to)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

func initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for i, w := range words {
		if i != 0 && i != len(words)-1 {
			continue
		}
		r := []rune(w)
		b.WriteRune(unicode.ToUpper(r[0]))
	}
	return b.String()
}

// initialsPlaceholder fills the photo circle with a flat disc and the
// agent's initials.
func initialsPlaceholder(name string, disc, text color.Color) render.Placeholder {
	return func(f *render.Frame, cx, cy, r float64) {
		dc := f.DC()
		dc.SetColor(disc)
		dc.DrawCircle(cx, cy, r)
		dc.Fill()

		m := f.Mapper()
		x, y := m.Unmap(cx, cy)
		f.Text(initials(name), x, y, render.TextStyle{
			Font:    render.FontBold,
			Size:    r / m.Scale() * 0.8,
			Color:   text,
			AnchorX: 0.5,
			AnchorY: 0.35,
		})
	}
}

// ring strokes a band of the given width just outside the circle of radius
// r, so a photo clipped to r never covers it.
func ring(f *render.Frame, cx, cy, r, width float64, c color.Color) {
	m := f.Mapper()
	x, y := m.Point(cx, cy)
	dc := f.DC()
	dc.SetColor(c)
	dc.SetLineWidth(m.Len(width))
	dc.DrawCircle(x, y, m.Len(r+width/2))
	dc.Stroke()
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
