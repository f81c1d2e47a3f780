package templates

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/agentcard/internal/card"
	imagepkg "github.com/youruser/agentcard/internal/image"
	"github.com/youruser/agentcard/internal/logger"
	"github.com/youruser/agentcard/internal/render"
)

const photoURL = "https://cdn.example.com/jordan.jpg"

func fullAgent() card.AgentCardData {
	return card.AgentCardData{
		FullName: "Jordan Avery",
		Phone:    "+1 555 0100",
		Email:    "jordan@example.com",
		Website:  "https://jordan.example.com",
		Address:  "12 Harbor Rd, Portland",
		PhotoURL: photoURL,
	}
}

// photoOnly serves the agent photo and reports every other path missing.
type photoOnly struct {
	mu    sync.Mutex
	calls []string
}

func (s *photoOnly) Load(_ context.Context, path string) (image.Image, error) {
	s.mu.Lock()
	s.calls = append(s.calls, path)
	s.mu.Unlock()
	if path == photoURL {
		return imaging.New(64, 64, color.RGBA{200, 120, 80, 255}), nil
	}
	return nil, fmt.Errorf("%w: %s", imagepkg.ErrNotFound, path)
}

func renderCard(t *testing.T, src imagepkg.Source, tmpl string, side card.Side, d card.AgentCardData) *render.Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	o := render.NewOrchestrator(Default(), src, logger.NewTestLogger(t))
	res, err := o.Render(ctx, render.Input{Agent: d, TemplateID: tmpl, Side: side, Width: 1050, Height: 600})
	require.NoError(t, err)
	return res
}

func TestDefault_AllSidesReachReady(t *testing.T) {
	for _, tmpl := range Default().List() {
		for _, side := range tmpl.Sides() {
			t.Run(tmpl.ID+"/"+side.String(), func(t *testing.T) {
				res := renderCard(t, &photoOnly{}, tmpl.ID, side, fullAgent())
				assert.True(t, res.Ready())
				img, err := res.Image()
				require.NoError(t, err)
				assert.Equal(t, image.Rect(0, 0, 1050, 600), img.Bounds())
				assert.True(t, res.Report().HasText("Jordan Avery"))
			})
		}
	}
}

func TestDefault_Templates(t *testing.T) {
	assert.Equal(t, []string{"classic", "compact", "figma3", "minimal"}, Default().IDs())
	assert.Same(t, Default(), Default())
}

func TestMinimalFront_FullData(t *testing.T) {
	res := renderCard(t, &photoOnly{}, "minimal", card.Front, fullAgent())
	rep := res.Report()

	assert.Equal(t, []card.ContactKind{card.ContactPhone, card.ContactEmail, card.ContactWebsite, card.ContactAddress}, rep.ContactLines)
	assert.Equal(t, []render.IconKind{render.IconPhone, render.IconMail, render.IconLink, render.IconMap}, rep.Icons)
	assert.Equal(t, render.PhotoDrawn, rep.Photo)
	assert.True(t, rep.ProceduralBackground)
	assert.Empty(t, rep.BackgroundAttempts)
}

func TestMinimalBack_HasQRCode(t *testing.T) {
	res := renderCard(t, &photoOnly{}, "minimal", card.Back, fullAgent())
	rep := res.Report()
	assert.True(t, rep.QRCode)
	assert.True(t, rep.HasText("jordan.example.com"))
}

func TestFigma3Front_AllAssetsMissing(t *testing.T) {
	src := &photoOnly{}
	d := fullAgent()
	d.PhotoURL = "https://cdn.example.com/missing.jpg"
	res := renderCard(t, src, "figma3", card.Front, d)
	rep := res.Report()

	assert.True(t, rep.ProceduralBackground)
	assert.Equal(t, Figma3().BackgroundCandidates(card.Front), rep.BackgroundAttempts)
	assert.Contains(t, rep.BackgroundAttempts, "figma3/card-front.png")
	assert.True(t, rep.HasText("Jordan Avery"))
	assert.Equal(t, render.PhotoPlaceholder, rep.Photo)
	assert.True(t, rep.HasText("JA"))
}

func TestEmailOnly_SingleContactLine(t *testing.T) {
	d := card.AgentCardData{FullName: "Jordan Avery", Email: "jordan@example.com"}
	for _, id := range Default().IDs() {
		t.Run(id, func(t *testing.T) {
			rep := renderCard(t, &photoOnly{}, id, card.Front, d).Report()
			assert.Equal(t, []card.ContactKind{card.ContactEmail}, rep.ContactLines)
			assert.Equal(t, []render.IconKind{render.IconMail}, rep.Icons)
			assert.True(t, rep.HasText("jordan@example.com"))
		})
	}
}

func TestOmissionInvariance(t *testing.T) {
	full := fullAgent()
	partial := full
	partial.Phone = "   "
	partial.Website = ""

	for _, id := range Default().IDs() {
		t.Run(id, func(t *testing.T) {
			rep := renderCard(t, &photoOnly{}, id, card.Front, partial).Report()
			assert.Equal(t, []card.ContactKind{card.ContactEmail, card.ContactAddress}, rep.ContactLines)
			for _, s := range rep.Texts {
				assert.NotContains(t, s, "555")
				assert.NotContains(t, s, "jordan.example.com")
			}
		})
	}
}

func TestCompactBack_Unsupported(t *testing.T) {
	o := render.NewOrchestrator(Default(), &photoOnly{}, logger.NewTestLogger(t))
	_, err := o.Update(context.Background(), render.Input{
		Agent: fullAgent(), TemplateID: "compact", Side: card.Back, Width: 1050, Height: 600,
	})
	assert.ErrorIs(t, err, render.ErrUnsupportedSide)
	assert.Equal(t, render.StateIdle, o.State())
}

func TestClassic_UsesStaticArtwork(t *testing.T) {
	src := imagepkg.SourceFunc(func(_ context.Context, path string) (image.Image, error) {
		if path == "classic/front.jpg" {
			return imaging.New(350, 200, color.RGBA{10, 10, 10, 255}), nil
		}
		return nil, fmt.Errorf("%w: %s", imagepkg.ErrNotFound, path)
	})
	rep := renderCard(t, src, "classic", card.Front, fullAgent()).Report()
	assert.Equal(t, []string{"classic/front.png", "classic/front.jpg"}, rep.BackgroundAttempts)
	assert.Equal(t, "classic/front.jpg", rep.Background)
	assert.False(t, rep.ProceduralBackground)
}

func TestFigma3Front_RingSurroundsPhoto(t *testing.T) {
	res := renderCard(t, &photoOnly{}, "figma3", card.Front, fullAgent())
	img, err := res.Image()
	require.NoError(t, err)

	// 1050x600 over a 700x400 design: photo at (225, 300) with radius 144px,
	// ring 9px wide outside it
	isWhite := func(x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r > 0xf000 && g > 0xf000 && b > 0xf000
	}
	assert.False(t, isWhite(225+138, 300), "photo")
	for _, dx := range []int{146, 149, 151} {
		assert.True(t, isWhite(225+dx, 300), "ring at %d", dx)
		assert.True(t, isWhite(225-dx, 300), "ring at -%d", dx)
	}
	assert.False(t, isWhite(225+160, 300), "background")
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Jordan Avery":           "JA",
		"jordan":                 "J",
		"Mary-Kate van der Berg": "MB",
		"":                       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, initials(in), in)
	}
}
