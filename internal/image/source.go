package imagepkg

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"strings"

	"github.com/youruser/agentcard/internal/metrics"
)

var (
	// ErrNotFound means the asset does not exist at the requested location.
	ErrNotFound = errors.New("imagepkg: asset not found")
	// ErrDecode means the asset was fetched but is not a decodable image.
	ErrDecode = errors.New("imagepkg: asset could not be decoded")
)

// Source loads and decodes an image asset. Implementations must be safe for
// concurrent use; the render engine starts several loads at once.
type Source interface {
	Load(ctx context.Context, path string) (image.Image, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context, path string) (image.Image, error)

func (f SourceFunc) Load(ctx context.Context, path string) (image.Image, error) {
	return f(ctx, path)
}

// FileSource serves template assets from a static tree laid out as
// {template}/front.*, {template}/back.*.
type FileSource struct {
	fsys fs.FS
}

func NewFileSource(fsys fs.FS) *FileSource {
	return &FileSource{fsys: fsys}
}

func (s *FileSource) Load(ctx context.Context, p string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := path.Clean(strings.TrimPrefix(p, "/"))
	if !fs.ValidPath(name) {
		metrics.AssetLoads.WithLabelValues("file", metrics.OutcomeMiss).Inc()
		return nil, fmt.Errorf("%w: invalid path %q", ErrNotFound, p)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		metrics.AssetLoads.WithLabelValues("file", metrics.OutcomeMiss).Inc()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	img, err := Decode(data, name)
	if err != nil {
		metrics.AssetLoads.WithLabelValues("file", metrics.OutcomeMiss).Inc()
		return nil, err
	}
	metrics.AssetLoads.WithLabelValues("file", metrics.OutcomeHit).Inc()
	return img, nil
}

// Router sends http(s) URLs to Remote and everything else to Files.
type Router struct {
	Files  Source
	Remote Source
}

func (r Router) Load(ctx context.Context, p string) (image.Image, error) {
	if IsRemote(p) {
		if r.Remote == nil {
			return nil, fmt.Errorf("%w: no remote source for %s", ErrNotFound, p)
		}
		return r.Remote.Load(ctx, p)
	}
	if r.Files == nil {
		return nil, fmt.Errorf("%w: no file source for %s", ErrNotFound, p)
	}
	return r.Files.Load(ctx, p)
}

func IsRemote(p string) bool {
	l := strings.ToLower(p)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
