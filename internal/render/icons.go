package render

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/youruser/agentcard/internal/card"
)

type IconKind string

const (
	IconPhone IconKind = "phone"
	IconMail  IconKind = "mail"
	IconLink  IconKind = "link"
	IconMap   IconKind = "map"
)

const (
	// IconFrame is the edge of the local square every icon is drawn in.
	IconFrame = 28.0
	// stroke width in local units, shared by every icon
	iconStroke = 2.0
)

func IconFor(k card.ContactKind) IconKind {
	switch k {
	case card.ContactPhone:
		return IconPhone
	case card.ContactEmail:
		return IconMail
	case card.ContactWebsite:
		return IconLink
	default:
		return IconMap
	}
}

// DrawIcon strokes icon kind with its top-left corner at (x, y) in output
// pixels, scale output pixels per local unit.
func DrawIcon(dc *gg.Context, kind IconKind, x, y, scale float64, c color.Color) {
	dc.Push()
	defer dc.Pop()

	dc.Translate(x, y)
	dc.Scale(scale, scale)
	dc.SetColor(c)
	dc.SetLineWidth(iconStroke * scale)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)
	dc.NewSubPath()

	switch kind {
	case IconPhone:
		dc.DrawRoundedRectangle(8, 3, 12, 22, 2.5)
		dc.Stroke()
		dc.DrawLine(12, 20.5, 16, 20.5)
		dc.Stroke()
	case IconMail:
		dc.DrawRoundedRectangle(3, 7, 22, 14, 1.5)
		dc.Stroke()
		dc.MoveTo(4, 8)
		dc.LineTo(14, 15)
		dc.LineTo(24, 8)
		dc.Stroke()
	case IconLink:
		dc.Push()
		dc.RotateAbout(gg.Radians(-45), 14, 14)
		dc.DrawRoundedRectangle(3, 10, 13, 8, 4)
		dc.Stroke()
		dc.DrawRoundedRectangle(12, 10, 13, 8, 4)
		dc.Stroke()
		dc.Pop()
	case IconMap:
		// pin: arc over the top, tapering to the point at (14, 25)
		dc.MoveTo(14, 25)
		dc.LineTo(8.2, 15)
		dc.DrawArc(14, 11, 7, gg.Radians(146), gg.Radians(394))
		dc.LineTo(14, 25)
		dc.Stroke()
		dc.DrawCircle(14, 11, 2.5)
		dc.Stroke()
	}
}
