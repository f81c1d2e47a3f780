package templates

import (
	"github.com/youruser/agentcard/internal/card"
	"github.com/youruser/agentcard/internal/render"
)

// Classic is navy and gold. Both sides prefer the static artwork under
// classic/ and fall back to a framed navy card.
func Classic() render.Template {
	return render.Template{
		ID:     "classic",
		Name:   "Classic",
		Design: render.BusinessCard,
		Front: render.SideSpec{
			Draw:       classicFront,
			Candidates: candidates("classic", card.Front.String()),
			Background: classicBackground,
		},
		Back: render.SideSpec{
			Draw:       classicBack,
			Candidates: candidates("classic", card.Back.String()),
			Background: classicBackground,
		},
	}
}

func classicBackground(f *render.Frame) {
	f.Fill(navy)
	m := f.Mapper()
	r := m.Map(8, 8, 320, 176)
	dc := f.DC()
	dc.SetColor(gold)
	dc.SetLineWidth(m.Len(1.25))
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Stroke()
}

func classicFront(f *render.Frame, d card.AgentCardData) error {
	f.Backdrop()

	f.Text(d.FullName, 24, 30, render.TextStyle{
		Font: render.FontBold, Size: 18, Color: white, MaxWidth: 200,
	})
	f.Text(d.RoleLabel, 24, 54, render.TextStyle{
		Font: render.FontItalic, Size: 10, Color: gold, MaxWidth: 200,
	})
	f.Line(24, 72, 84, 72, 1, gold)

	style := render.ContactStyle{
		Text:      render.TextStyle{Font: render.FontRegular, Size: 9, Color: white, MaxWidth: 190},
		IconColor: gold,
		IconSize:  11,
		Gap:       6,
	}
	for i, line := range card.ContactLines(d) {
		f.Contact(line, 24, 84+float64(i)*21, style)
	}

	f.PhotoOr(d.PhotoURL, 274, 70, 38, initialsPlaceholder(d.FullName, gold, navy))
	ring(f, 274, 70, 38, 1.5, gold)
	return nil
}

func classicBack(f *render.Frame, d card.AgentCardData) error {
	f.Backdrop()

	f.Text(d.FullName, 168, 70, render.TextStyle{
		Font: render.FontBold, Size: 20, Color: gold, AnchorX: 0.5, AnchorY: 0.5, MaxWidth: 280,
	})
	f.Text(d.RoleLabel, 168, 96, render.TextStyle{
		Font: render.FontRegular, Size: 10, Color: white, AnchorX: 0.5, AnchorY: 0.5, MaxWidth: 280,
	})
	if d.Website != "" {
		f.Text(card.DisplayWebsite(d.Website), 168, 150, render.TextStyle{
			Font: render.FontMedium, Size: 10, Color: gold, AnchorX: 0.5, AnchorY: 0.5, MaxWidth: 280,
		})
	}
	return nil
}
