package templates

import (
	"github.com/youruser/agentcard/internal/card"
	"github.com/youruser/agentcard/internal/render"
)

// Minimal is a white card with a coral accent. It ships no raster assets.
func Minimal() render.Template {
	return render.Template{
		ID:     "minimal",
		Name:   "Minimal",
		Design: render.BusinessCard,
		Front: render.SideSpec{
			Draw:       minimalFront,
			Background: minimalFrontBackground,
		},
		Back: render.SideSpec{
			Draw:       minimalBack,
			Background: minimalBackBackground,
		},
	}
}

func minimalFrontBackground(f *render.Frame) {
	f.Fill(white)
	m := f.Mapper()
	b := m.Bounds()
	// accent bar runs the full canvas height on the left edge
	f.DC().SetColor(coral)
	f.DC().DrawRectangle(0, 0, b.X+m.Len(6), float64(f.Height()))
	f.DC().Fill()
}

func minimalFront(f *render.Frame, d card.AgentCardData) error {
	f.Backdrop()

	f.PhotoOr(d.PhotoURL, 62, 96, 40, initialsPlaceholder(d.FullName, mist, slate))

	f.Text(d.FullName, 120, 36, render.TextStyle{
		Font: render.FontBold, Size: 19, Color: ink, MaxWidth: 196,
	})
	f.Text(d.RoleLabel, 120, 60, render.TextStyle{
		Font: render.FontRegular, Size: 10, Color: coral, MaxWidth: 196,
	})
	f.Line(120, 76, 316, 76, 0.75, mist)

	style := render.ContactStyle{
		Text:      render.TextStyle{Font: render.FontRegular, Size: 9, Color: ink, MaxWidth: 178},
		IconColor: coral,
		IconSize:  12,
		Gap:       6,
	}
	for i, line := range card.ContactLines(d) {
		f.Contact(line, 120, 86+float64(i)*22, style)
	}
	return nil
}

func minimalBackBackground(f *render.Frame) {
	f.Fill(coral)
}

func minimalBack(f *render.Frame, d card.AgentCardData) error {
	f.Backdrop()

	f.Text(d.FullName, 24, 64, render.TextStyle{
		Font: render.FontBold, Size: 22, Color: white, MaxWidth: 190,
	})
	f.Text(d.RoleLabel, 24, 94, render.TextStyle{
		Font: render.FontRegular, Size: 11, Color: white, MaxWidth: 190,
	})
	if d.Website != "" {
		f.Text(card.DisplayWebsite(d.Website), 24, 150, render.TextStyle{
			Font: render.FontMedium, Size: 10, Color: white, MaxWidth: 190,
		})
	}

	f.Rect(220, 48, 96, 96, white)
	f.QRCode(card.VCard(d), 226, 54, 84, ink, white)
	return nil
}
