package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type FontName string

const (
	FontRegular FontName = "regular"
	FontMedium  FontName = "medium"
	FontBold    FontName = "bold"
	FontItalic  FontName = "italic"
)

var fontData = map[FontName][]byte{
	FontRegular: goregular.TTF,
	FontMedium:  gomedium.TTF,
	FontBold:    gobold.TTF,
	FontItalic:  goitalic.TTF,
}

var parsedFonts = sync.OnceValues(func() (map[FontName]*opentype.Font, error) {
	out := make(map[FontName]*opentype.Font, len(fontData))
	for name, data := range fontData {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", name, err)
		}
		out[name] = f
	}
	return out, nil
})

// faceCache holds the faces of one render. opentype faces keep scratch
// buffers, so they are never shared between renders.
type faceCache struct {
	faces map[faceKey]font.Face
}

type faceKey struct {
	name FontName
	size float64
}

func newFaceCache() *faceCache {
	return &faceCache{faces: make(map[faceKey]font.Face)}
}

// face returns name at px pixels (72 DPI, so points == pixels).
func (c *faceCache) face(name FontName, px float64) (font.Face, error) {
	key := faceKey{name, px}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	fonts, err := parsedFonts()
	if err != nil {
		return nil, err
	}
	parsed, ok := fonts[name]
	if !ok {
		parsed = fonts[FontRegular]
	}
	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face at %.1fpx: %w", px, err)
	}
	c.faces[key] = f
	return f, nil
}

func (c *faceCache) close() {
	for _, f := range c.faces {
		_ = f.Close()
	}
}
