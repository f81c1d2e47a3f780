package render

import (
	imagepkg "github.com/youruser/agentcard/internal/image"
)

// Background tries candidates in order and draws the first one that loads,
// cover-scaled over the whole canvas. It reports false, without error, when
// every candidate failed. Candidates are never retried.
func (f *Frame) Background(candidates []string) bool {
	for _, path := range candidates {
		f.report.BackgroundAttempts = append(f.report.BackgroundAttempts, path)
		img, err := f.assets.Load(f.ctx, path)
		if err != nil {
			f.log.Debug("background candidate unavailable", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			if f.ctx.Err() != nil {
				return false
			}
			continue
		}
		f.dc.DrawImage(imagepkg.Cover(img, f.Width(), f.Height()), 0, 0)
		f.report.Background = path
		return true
	}
	return false
}

// Backdrop draws the side's background: the first raster candidate that
// loads, otherwise the side's procedural painter.
func (f *Frame) Backdrop() {
	if len(f.spec.Candidates) > 0 && f.Background(f.spec.Candidates) {
		return
	}
	// registry validation guarantees a painter for every supported side
	f.spec.Background(f)
	f.report.ProceduralBackground = true
}
