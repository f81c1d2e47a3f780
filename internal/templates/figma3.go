package templates

import (
	"github.com/youruser/agentcard/internal/card"
	"github.com/youruser/agentcard/internal/render"
)

var figma3Design = render.Size{W: 700, H: 400}

// Figma3 uses the exported design artwork when present and a teal to
// indigo gradient otherwise.
func Figma3() render.Template {
	return render.Template{
		ID:     "figma3",
		Name:   "Figma 3",
		Design: figma3Design,
		Front: render.SideSpec{
			Draw:       figma3Front,
			Candidates: candidates("figma3", card.Front.String(), "card-front.png", "card-front.jpg"),
			Background: func(f *render.Frame) { linearFill(f, 0, 0, 1, 1, teal, indigo) },
		},
		Back: render.SideSpec{
			Draw:       figma3Back,
			Candidates: candidates("figma3", card.Back.String(), "card-back.png", "card-back.jpg"),
			Background: func(f *render.Frame) { linearFill(f, 1, 0, 0, 1, teal, indigo) },
		},
	}
}

func figma3Front(f *render.Frame, d card.AgentCardData) error {
	f.Backdrop()

	// translucent panel keeps the text legible on any artwork
	f.Rect(300, 0, 400, 400, withAlpha(ink, 72))

	f.PhotoOr(d.PhotoURL, 150, 200, 96, initialsPlaceholder(d.FullName, withAlpha(white, 48), white))
	ring(f, 150, 200, 96, 6, white)

	f.Text(d.FullName, 340, 64, render.TextStyle{
		Font: render.FontBold, Size: 36, Color: white, MaxWidth: 330,
	})
	f.Text(d.RoleLabel, 340, 116, render.TextStyle{
		Font: render.FontMedium, Size: 18, Color: mist, MaxWidth: 330,
	})

	style := render.ContactStyle{
		Text:      render.TextStyle{Font: render.FontRegular, Size: 17, Color: white, MaxWidth: 290},
		IconColor: white,
		IconSize:  24,
		Gap:       14,
	}
	for i, line := range card.ContactLines(d) {
		f.Contact(line, 340, 176+float64(i)*48, style)
	}
	return nil
}

func figma3Back(f *render.Frame, d card.AgentCardData) error {
	f.Backdrop()

	m := f.Mapper()
	cx, cy := m.Point(350, 150)
	dc := f.DC()
	dc.SetColor(withAlpha(white, 40))
	dc.DrawCircle(cx, cy, m.Len(86))
	dc.Fill()
	ring(f, 350, 150, 86, 4, white)

	f.Text(initials(d.FullName), 350, 150, render.TextStyle{
		Font: render.FontBold, Size: 64, Color: white, AnchorX: 0.5, AnchorY: 0.35,
	})
	f.Text(d.FullName, 350, 286, render.TextStyle{
		Font: render.FontBold, Size: 28, Color: white, AnchorX: 0.5, AnchorY: 0.5, MaxWidth: 600,
	})
	f.Text(d.RoleLabel, 350, 326, render.TextStyle{
		Font: render.FontRegular, Size: 16, Color: mist, AnchorX: 0.5, AnchorY: 0.5, MaxWidth: 600,
	})
	if d.Website != "" {
		f.Text(card.DisplayWebsite(d.Website), 350, 362, render.TextStyle{
			Font: render.FontMedium, Size: 15, Color: white, AnchorX: 0.5, AnchorY: 0.5, MaxWidth: 600,
		})
	}
	return nil
}
