// Command cardgen renders a card for every agent in a CSV file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/youruser/agentcard/internal/app"
	"github.com/youruser/agentcard/internal/card"
	"github.com/youruser/agentcard/internal/config"
	"github.com/youruser/agentcard/internal/export"
	"github.com/youruser/agentcard/internal/logger"
	"github.com/youruser/agentcard/internal/templates"
)

func main() {
	var (
		csvPath    = flag.String("csv", "data/agents.csv", "agents CSV file")
		outDir     = flag.String("out", "out", "output directory")
		templateID = flag.String("template", "", "template id (default from config)")
		width      = flag.Int("width", 0, "output width in pixels (default from config)")
		height     = flag.Int("height", 0, "output height in pixels (default from config)")
		format     = flag.String("format", "png", "png or jpeg")
		configPath = flag.String("config", "", "config file (default configs/config.yaml)")
		match      = flag.String("match", "", "only agents whose details contain every word")
		withPhoto  = flag.Bool("with-photo", false, "only agents with a photo")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zl := logger.New(cfg.Logging.Level, "console")
	defer func() { _ = zl.Sync() }()
	log := logger.NewZapAdapter(zl)

	f, err := export.ParseFormat(*format)
	if err != nil {
		log.WithError(err).Error("invalid flags", nil)
		os.Exit(2)
	}
	job := batch{
		reg:      templates.Default(),
		log:      log,
		template: firstNonEmpty(*templateID, cfg.Render.DefaultTemplate),
		width:    firstPositive(*width, cfg.Render.Width),
		height:   firstPositive(*height, cfg.Render.Height),
		format:   f,
		outDir:   *outDir,
	}

	agents, err := card.LoadAgentsCSV(*csvPath)
	if err != nil {
		log.WithError(err).Error("failed to load agents", map[string]interface{}{"csv": *csvPath})
		os.Exit(1)
	}
	agents = card.Filter(agents, card.FilterOptions{FreeWords: *match, WithPhoto: *withPhoto})

	ctx := context.Background()
	assets, closeAssets := app.Assets(ctx, cfg, log)
	job.assets = assets

	failed, err := job.run(ctx, agents)
	closeAssets()
	if err != nil {
		log.WithError(err).Error("batch aborted", nil)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}
