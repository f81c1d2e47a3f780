package render

import (
	"context"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/agentcard/internal/card"
	imagepkg "github.com/youruser/agentcard/internal/image"
	"github.com/youruser/agentcard/internal/logger"
)

// Frame is the drawing surface handed to a template strategy. All drawing
// happens on the goroutine running the strategy; asset loads run in the
// background and their continuations are applied by settle, in the order
// they were started.
type Frame struct {
	ctx    context.Context
	dc     *gg.Context
	m      Mapper
	spec   SideSpec
	assets imagepkg.Source
	log    logger.Logger
	faces  *faceCache
	report *Report

	pending []*pendingLoad
	current func() bool
}

type pendingLoad struct {
	path  string
	done  chan struct{}
	img   image.Image
	err   error
	apply func(img image.Image, err error)
}

func newFrame(ctx context.Context, w, h int, design Size, spec SideSpec, assets imagepkg.Source, log logger.Logger, report *Report, current func() bool) *Frame {
	if current == nil {
		current = func() bool { return true }
	}
	return &Frame{
		ctx:     ctx,
		dc:      gg.NewContext(w, h),
		m:       NewMapper(design, w, h),
		spec:    spec,
		assets:  assets,
		log:     log,
		faces:   newFaceCache(),
		report:  report,
		current: current,
	}
}

// DC exposes the underlying gg context for procedural drawing.
func (f *Frame) DC() *gg.Context { return f.dc }

func (f *Frame) Mapper() Mapper { return f.m }

func (f *Frame) Width() int  { return f.dc.Width() }
func (f *Frame) Height() int { return f.dc.Height() }

func (f *Frame) Logger() logger.Logger { return f.log }

// async starts loading path and queues apply to run once the strategy's
// synchronous drawing is done.
func (f *Frame) async(path string, apply func(image.Image, error)) {
	p := &pendingLoad{path: path, done: make(chan struct{}), apply: apply}
	go func() {
		defer close(p.done)
		p.img, p.err = f.assets.Load(f.ctx, path)
	}()
	f.pending = append(f.pending, p)
}

// settle waits for every queued load and applies its continuation,
// checking before each one that this render is still the current request.
func (f *Frame) settle() error {
	for len(f.pending) > 0 {
		p := f.pending[0]
		f.pending = f.pending[1:]
		select {
		case <-p.done:
		case <-f.ctx.Done():
		}
		if err := f.ctx.Err(); err != nil {
			return err
		}
		if !f.current() {
			return ErrSuperseded
		}
		p.apply(p.img, p.err)
	}
	return nil
}

func (f *Frame) release() {
	f.faces.close()
}

// Fill paints the whole canvas with c.
func (f *Frame) Fill(c color.Color) {
	f.dc.SetColor(c)
	f.dc.DrawRectangle(0, 0, float64(f.Width()), float64(f.Height()))
	f.dc.Fill()
}

// Rect fills a design-space rectangle.
func (f *Frame) Rect(x, y, w, h float64, c color.Color) {
	r := f.m.Map(x, y, w, h)
	f.dc.SetColor(c)
	f.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	f.dc.Fill()
}

// Line strokes a design-space segment.
func (f *Frame) Line(x1, y1, x2, y2, width float64, c color.Color) {
	ax, ay := f.m.Point(x1, y1)
	bx, by := f.m.Point(x2, y2)
	f.dc.SetColor(c)
	f.dc.SetLineWidth(f.m.Len(width))
	f.dc.DrawLine(ax, ay, bx, by)
	f.dc.Stroke()
}

type TextStyle struct {
	Font  FontName
	Size  float64 // design units
	Color color.Color
	// AnchorX/AnchorY follow gg.DrawStringAnchored: 0,0 is top-left of the
	// text box, 0.5,0.5 its center.
	AnchorX, AnchorY float64
	// MaxWidth in design units; 0 means unbounded.
	MaxWidth float64
}

// minFit is the smallest fraction of the requested size text is shrunk to
// before it gets ellipsized.
const minFit = 0.7

// Text draws s at design point (x, y). Text wider than MaxWidth is shrunk,
// then truncated with an ellipsis. Blank text draws nothing.
func (f *Frame) Text(s string, x, y float64, st TextStyle) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	px := f.m.Len(st.Size)
	if !f.setFont(st.Font, px) {
		return
	}
	if st.MaxWidth > 0 {
		maxPx := f.m.Len(st.MaxWidth)
		if w, _ := f.dc.MeasureString(s); w > maxPx {
			shrunk := math.Max(px*maxPx/w, px*minFit)
			if !f.setFont(st.Font, shrunk) {
				return
			}
			s = f.ellipsize(s, maxPx)
		}
	}
	if st.Color != nil {
		f.dc.SetColor(st.Color)
	}
	ox, oy := f.m.Point(x, y)
	f.dc.DrawStringAnchored(s, ox, oy, st.AnchorX, st.AnchorY)
	f.report.Texts = append(f.report.Texts, s)
}

func (f *Frame) setFont(name FontName, px float64) bool {
	face, err := f.faces.face(name, math.Round(px*100)/100)
	if err != nil {
		f.log.Error("font unavailable", map[string]interface{}{"font": string(name), "error": err.Error()})
		return false
	}
	f.dc.SetFontFace(face)
	return true
}

func (f *Frame) ellipsize(s string, maxPx float64) string {
	if w, _ := f.dc.MeasureString(s); w <= maxPx {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		t := strings.TrimRight(string(runes[:n]), " ") + "…"
		if w, _ := f.dc.MeasureString(t); w <= maxPx {
			return t
		}
	}
	return "…"
}

type ContactStyle struct {
	Text      TextStyle
	IconColor color.Color
	IconSize  float64 // design units
	Gap       float64 // between icon and text, design units
}

// Contact draws one contact line: icon with its top-left at (x, y) and the
// text vertically centered on it.
func (f *Frame) Contact(line card.ContactLine, x, y float64, st ContactStyle) {
	kind := IconFor(line.Kind)
	ix, iy := f.m.Point(x, y)
	DrawIcon(f.dc, kind, ix, iy, f.m.Len(st.IconSize)/IconFrame, st.IconColor)
	f.report.Icons = append(f.report.Icons, kind)

	text := line.Text
	if line.Kind == card.ContactWebsite {
		text = card.DisplayWebsite(text)
	}
	ts := st.Text
	ts.AnchorX, ts.AnchorY = 0, 0.35
	f.Text(text, x+st.IconSize+st.Gap, y+st.IconSize/2, ts)
	f.report.ContactLines = append(f.report.ContactLines, line.Kind)
}

// QRCode draws a QR code for text into the design-space square at (x, y).
// Encoding failures are logged and leave the square empty.
func (f *Frame) QRCode(text string, x, y, size float64, fg, bg color.Color) {
	r := f.m.Map(x, y, size, size)
	px := int(math.Round(r.W))
	if px <= 0 {
		return
	}
	q, err := imagepkg.GenerateQRImage(text, px, fg, bg)
	if err != nil {
		f.log.Warn("qr code skipped", map[string]interface{}{"error": err.Error()})
		return
	}
	if q.Bounds().Dx() != px {
		q = imaging.Resize(q, px, px, imaging.NearestNeighbor)
	}
	f.dc.DrawImage(q, int(math.Round(r.X)), int(math.Round(r.Y)))
	f.report.QRCode = true
}
