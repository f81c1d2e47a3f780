package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/youruser/agentcard/internal/card"
	"github.com/youruser/agentcard/internal/export"
	imagepkg "github.com/youruser/agentcard/internal/image"
	"github.com/youruser/agentcard/internal/logger"
	"github.com/youruser/agentcard/internal/render"
	"github.com/youruser/agentcard/internal/util"
)

const manifestName = "manifest.txt"

type batch struct {
	reg      *render.Registry
	assets   imagepkg.Source
	log      logger.Logger
	template string
	width    int
	height   int
	format   export.Format
	outDir   string
}

// run renders every supported side of the template for each agent and
// writes the files plus a manifest. A failed card is logged and counted;
// configuration errors abort the batch.
func (b batch) run(ctx context.Context, agents []card.AgentCardData) (failed int, err error) {
	tmpl, err := b.reg.Get(b.template)
	if err != nil {
		return 0, err
	}
	if err := util.EnsureDir(b.outDir); err != nil {
		return 0, fmt.Errorf("create %s: %w", b.outDir, err)
	}

	o := render.NewOrchestrator(b.reg, b.assets, b.log)
	var written []*export.Artifact
	for _, agent := range agents {
		for _, side := range tmpl.Sides() {
			art, err := b.renderOne(ctx, o, agent, side)
			if errors.Is(err, render.ErrInvalidSize) {
				return failed, err
			}
			if err != nil {
				failed++
				b.log.WithError(err).Warn("card skipped", map[string]interface{}{
					"agent": agent.FullName,
					"side":  side.String(),
				})
				continue
			}
			written = append(written, art)
		}
	}

	manifest := export.Manifest(fmt.Sprintf("%s %dx%d", b.template, b.width, b.height), written)
	if err := util.WriteFileAtomic(filepath.Join(b.outDir, manifestName), []byte(manifest)); err != nil {
		return failed, fmt.Errorf("write manifest: %w", err)
	}
	b.log.Info("batch finished", map[string]interface{}{
		"template": b.template,
		"written":  len(written),
		"failed":   failed,
		"out":      b.outDir,
	})
	return failed, nil
}

func (b batch) renderOne(ctx context.Context, o *render.Orchestrator, agent card.AgentCardData, side card.Side) (*export.Artifact, error) {
	res, err := o.Render(ctx, render.Input{
		Agent:      agent,
		TemplateID: b.template,
		Side:       side,
		Width:      b.width,
		Height:     b.height,
	})
	if err != nil {
		return nil, err
	}
	art, err := export.Export(res, export.PartsOf(res), b.format)
	if err != nil {
		return nil, err
	}
	path, err := art.WriteFile(b.outDir)
	if err != nil {
		return nil, err
	}
	b.log.Debug("card written", map[string]interface{}{"path": path})
	return art, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
