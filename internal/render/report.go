package render

import "github.com/youruser/agentcard/internal/card"

type PhotoStatus string

const (
	PhotoNone        PhotoStatus = "none"
	PhotoDrawn       PhotoStatus = "drawn"
	PhotoFailed      PhotoStatus = "failed"
	PhotoPlaceholder PhotoStatus = "placeholder"
)

// Report describes what a render actually put on the surface.
type Report struct {
	Template string
	Side     card.Side

	// BackgroundAttempts lists candidate paths in the order they were tried.
	BackgroundAttempts []string
	// Background is the candidate that was drawn, empty when the
	// procedural background was used.
	Background           string
	ProceduralBackground bool

	Texts        []string
	ContactLines []card.ContactKind
	Icons        []IconKind
	Photo        PhotoStatus
	QRCode       bool
}

func (r Report) clone() Report {
	out := r
	out.BackgroundAttempts = append([]string(nil), r.BackgroundAttempts...)
	out.Texts = append([]string(nil), r.Texts...)
	out.ContactLines = append([]card.ContactKind(nil), r.ContactLines...)
	out.Icons = append([]IconKind(nil), r.Icons...)
	return out
}

func (r Report) HasText(s string) bool {
	for _, t := range r.Texts {
		if t == s {
			return true
		}
	}
	return false
}
