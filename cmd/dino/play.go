package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/engine"
	"github.com/vovakirdan/tui-dino/internal/platform/imgexport"
	"github.com/vovakirdan/tui-dino/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start the runner in the terminal.

Controls (defaults, see 'dino config'):
  Space/Up/W/K  - Jump
  Enter/R       - Start or restart a run
  Ctrl+S        - Save a screenshot (text and PNG)
  Q/Esc/Ctrl+C  - Quit

Examples:
  dino play
  dino play --seed 7 --log-level debug
  dino play --config ./my-dino.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, logger, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	// Follow edits to the config file while playing
	var reloads <-chan config.Reload
	if source != "embedded" && source != "builtin" {
		watcher, watchErr := config.Watch(source)
		if watchErr != nil {
			logger.Warn("config changes will not be picked up", "error", watchErr)
		} else {
			defer watcher.Close()
			reloads = watcher.Updates()
		}
	}

	// Get terminal size early so the first frame is already sized
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var opts []engine.Option
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	eng := engine.New(opts...)

	logger.Info("session started", "cols", width, "rows", height, "seed", cfg.Seed)

	runErr := tui.Run(eng, tui.Options{
		Config:   cfg,
		Logger:   logger,
		Sprites:  tui.NewSpriteRegistry(),
		Exporter: imgexport.NewRenderer(imgexport.NewRegistry(), cfg.Screenshot.PNGScale),
		Width:    width,
		Height:   height,
		Reloads:  reloads,
	})

	logger.Info("session ended", "max_score", eng.MaxScore())
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
