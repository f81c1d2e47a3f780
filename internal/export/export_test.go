package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/agentcard/internal/card"
	imagepkg "github.com/youruser/agentcard/internal/image"
	"github.com/youruser/agentcard/internal/logger"
	"github.com/youruser/agentcard/internal/render"
)

var green = color.RGBA{0, 200, 0, 255}

func greenCard() render.Template {
	return render.Template{
		ID:     "flat",
		Design: render.BusinessCard,
		Front: render.SideSpec{
			Draw: func(f *render.Frame, d card.AgentCardData) error {
				f.Backdrop()
				return nil
			},
			Background: func(f *render.Frame) { f.Fill(green) },
		},
	}
}

func noAssets() imagepkg.Source {
	return imagepkg.SourceFunc(func(context.Context, string) (image.Image, error) {
		return nil, imagepkg.ErrNotFound
	})
}

func readyResult(t *testing.T) *render.Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	o := render.NewOrchestrator(render.MustNewRegistry(greenCard()), noAssets(), logger.NewTestLogger(t))
	res, err := o.Render(ctx, render.Input{
		Agent:      card.AgentCardData{FullName: "Jordan Avery"},
		TemplateID: "flat",
		Side:       card.Front,
		Width:      336,
		Height:     192,
	})
	require.NoError(t, err)
	return res
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "jordan-avery-visiting-card-figma3-back.png",
		Filename(Parts{AgentName: "Jordan Avery", TemplateID: "figma3", Side: card.Back}, PNG))
	assert.Equal(t, "agent-visiting-card-minimal-front.jpg",
		Filename(Parts{AgentName: "  ", TemplateID: "minimal"}, JPEG))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": PNG, "PNG": PNG, "jpg": JPEG, "jpeg": JPEG} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("svg")
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestExport_PNGIsUnchanged(t *testing.T) {
	res := readyResult(t)
	art, err := Export(res, PartsOf(res), PNG)
	require.NoError(t, err)

	assert.Equal(t, "jordan-avery-visiting-card-flat-front.png", art.Filename)
	assert.Equal(t, "image/png", art.ContentType)

	decoded, err := png.Decode(bytes.NewReader(art.Data))
	require.NoError(t, err)
	src, err := res.Image()
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), decoded.Bounds())
	for _, p := range []image.Point{{0, 0}, {100, 50}, {335, 191}} {
		assert.Equal(t, color.RGBAModel.Convert(src.At(p.X, p.Y)), color.RGBAModel.Convert(decoded.At(p.X, p.Y)))
	}
}

func TestExport_JPEG(t *testing.T) {
	res := readyResult(t)
	art, err := Export(res, PartsOf(res), JPEG)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", art.ContentType)
	assert.Equal(t, "jordan-avery-visiting-card-flat-front.jpg", art.Filename)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(art.Data))
	require.NoError(t, err)
	assert.Equal(t, 336, cfg.Width)
	assert.Equal(t, 192, cfg.Height)
}

func TestExport_RefusesUnfinished(t *testing.T) {
	_, err := Export(nil, Parts{}, PNG)
	assert.ErrorIs(t, err, ErrNotReady)

	reg := render.MustNewRegistry(render.Template{
		ID:     "broken",
		Design: render.BusinessCard,
		Front: render.SideSpec{
			Draw:       func(*render.Frame, card.AgentCardData) error { panic("layout") },
			Background: func(*render.Frame) {},
		},
	})
	o := render.NewOrchestrator(reg, noAssets(), logger.NewTestLogger(t))
	res, err := o.Render(context.Background(), render.Input{
		Agent: card.AgentCardData{FullName: "A"}, TemplateID: "broken", Side: card.Front, Width: 10, Height: 10,
	})
	require.Error(t, err)
	_, err = Export(res, PartsOf(res), PNG)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestArtifact_WriteFile(t *testing.T) {
	res := readyResult(t)
	art, err := Export(res, PartsOf(res), PNG)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	path, err := art.WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, art.Filename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, art.Data, data)
}

func TestManifest(t *testing.T) {
	got := Manifest("batch", []*Artifact{
		{Filename: "b-visiting-card-minimal-front.png"},
		nil,
		{Filename: "a-visiting-card-minimal-front.png"},
	})
	assert.Equal(t, "# batch\na-visiting-card-minimal-front.png\nb-visiting-card-minimal-front.png\n", got)
}
