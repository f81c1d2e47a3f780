// Package export turns a finished render into a downloadable file.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/youruser/agentcard/internal/card"
	"github.com/youruser/agentcard/internal/metrics"
	"github.com/youruser/agentcard/internal/render"
	"github.com/youruser/agentcard/internal/util"
)

var (
	// ErrNotReady is returned for a result that has not reached the ready state.
	ErrNotReady  = errors.New("export: card is not ready")
	ErrBadFormat = errors.New("export: unsupported format")
)

type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
)

// jpegQuality applies to JPEG exports only.
const jpegQuality = 92

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadFormat, s)
}

func (f Format) Ext() string {
	if f == JPEG {
		return "jpg"
	}
	return "png"
}

func (f Format) ContentType() string {
	if f == JPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Parts are the pieces the download filename is built from.
type Parts struct {
	AgentName  string
	TemplateID string
	Side       card.Side
}

// PartsOf takes the filename parts from the render's own input.
func PartsOf(res *render.Result) Parts {
	in := res.Input()
	return Parts{AgentName: in.Agent.FullName, TemplateID: in.TemplateID, Side: in.Side}
}

// Filename is {agent-slug}-visiting-card-{template}-{side}.{ext}.
func Filename(p Parts, f Format) string {
	side := p.Side
	if side == "" {
		side = card.Front
	}
	return fmt.Sprintf("%s-visiting-card-%s-%s.%s", card.Slug(p.AgentName), p.TemplateID, side, f.Ext())
}

// Artifact is an encoded card ready to be sent or saved.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export encodes the finished surface unchanged. Results that are still
// rendering, failed, or were superseded are refused with ErrNotReady.
func Export(res *render.Result, p Parts, f Format) (*Artifact, error) {
	if res == nil || !res.Ready() {
		return nil, ErrNotReady
	}
	img, err := res.Image()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotReady, err)
	}

	imgFormat := imaging.PNG
	var opts []imaging.EncodeOption
	switch f {
	case PNG, "":
		f = PNG
	case JPEG:
		imgFormat = imaging.JPEG
		opts = append(opts, imaging.JPEGQuality(jpegQuality))
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, f)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imgFormat, opts...); err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}
	metrics.ExportsTotal.WithLabelValues(string(f)).Inc()

	return &Artifact{
		Filename:    Filename(p, f),
		ContentType: f.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

// WriteFile saves the artifact under dir and returns the full path.
func (a *Artifact) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, a.Filename)
	if err := util.WriteFileAtomic(path, a.Data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
