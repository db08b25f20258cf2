package main

import (
	"fmt"
	"os"

	"github.com/cellgrid/go-lifeview/ui"
	"github.com/cellgrid/go-lifeview/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	cfg, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		cfg = utils.DefaultConfig()
	}

	logger := newLogger(cfg.Debug)

	app := ui.New(cfg, logger)
	if err := app.Run(); err != nil {
		logger.Error("visualizer exited with error", "err", err)
		os.Exit(1)
	}
}
