package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"seatmap/app"
	"seatmap/config"
	"seatmap/logger"
)

func main() {
	var (
		configPath string
		seed       int64
		noAudio    bool
		logPath    string
	)

	flag.StringVar(&configPath, "config", "", "Path to YAML config file")
	flag.Int64Var(&seed, "seed", 0, "Venue generation seed (0 = config value)")
	flag.BoolVar(&noAudio, "no-audio", false, "Disable selection sound cues")
	flag.StringVar(&logPath, "log", "", "Log file path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if seed != 0 {
		cfg.Venue.Seed = seed
	}
	if noAudio {
		cfg.Audio = false
	}
	if logPath != "" {
		cfg.Log.File = logPath
	}

	log, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	a, err := app.New(cfg, screen, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	a.Run()
}
