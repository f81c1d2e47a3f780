package templates

import (
	"github.com/youruser/agentcard/internal/card"
	"github.com/youruser/agentcard/internal/render"
)

// Compact is a dense, front-only card with contacts in a two-column grid.
func Compact() render.Template {
	return render.Template{
		ID:     "compact",
		Name:   "Compact",
		Design: render.BusinessCard,
		Front: render.SideSpec{
			Draw:       compactFront,
			Candidates: candidates("compact", card.Front.String()),
			Background: compactBackground,
		},
	}
}

func compactBackground(f *render.Frame) {
	f.Fill(charcoal)
	f.Rect(0, 150, 336, 42, ink)
}

func compactFront(f *render.Frame, d card.AgentCardData) error {
	f.Backdrop()

	f.PhotoOr(d.PhotoURL, 44, 50, 28, initialsPlaceholder(d.FullName, teal, white))

	f.Text(d.FullName, 86, 30, render.TextStyle{
		Font: render.FontBold, Size: 17, Color: white, MaxWidth: 230,
	})
	f.Text(d.RoleLabel, 86, 54, render.TextStyle{
		Font: render.FontMedium, Size: 9, Color: teal, MaxWidth: 230,
	})

	style := render.ContactStyle{
		Text:      render.TextStyle{Font: render.FontRegular, Size: 8, Color: mist, MaxWidth: 126},
		IconColor: teal,
		IconSize:  10,
		Gap:       5,
	}
	for i, line := range card.ContactLines(d) {
		col, row := float64(i%2), float64(i/2)
		f.Contact(line, 16+col*160, 100+row*24, style)
	}
	return nil
}
