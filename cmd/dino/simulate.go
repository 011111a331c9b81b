package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dino/internal/engine"
	"github.com/vovakirdan/tui-dino/internal/platform/imgexport"
)

var (
	flagSimWidth     float64
	flagSimHeight    float64
	flagSimTicks     int
	flagSimJumpEvery int
	flagSimStart     bool
	flagSimFormat    string
	flagSimPNG       string
	flagSimRealtime  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless",
	Long: `Run the simulation without a terminal UI and print the final snapshot.

Ticks are stepped as fast as possible unless --realtime is given, in which
case the engine runs on its own frame clock for the same number of frames.

Examples:
  dino simulate --ticks 240
  dino simulate --start --jump-every 25 --ticks 1000 --seed 3
  dino simulate --start --format yaml --png final.png`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSimWidth, "width", 640, "Canvas width in world units")
	simulateCmd.Flags().Float64Var(&flagSimHeight, "height", 384, "Canvas height in world units")
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 240, "Number of ticks to run")
	simulateCmd.Flags().IntVar(&flagSimJumpEvery, "jump-every", 0, "Request a jump every N ticks (0 = never)")
	simulateCmd.Flags().BoolVar(&flagSimStart, "start", false, "Start a run before the first tick")
	simulateCmd.Flags().StringVar(&flagSimFormat, "format", "text", "Output format: text, yaml")
	simulateCmd.Flags().StringVar(&flagSimPNG, "png", "", "Also render the final frame to this PNG file")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Tick on the frame clock instead of as fast as possible")
}

// simulation describes one headless run.
type simulation struct {
	Width     float64
	Height    float64
	Ticks     int
	JumpEvery int
	Start     bool
	Seed      int64
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagSimFormat != "text" && flagSimFormat != "yaml" {
		return fmt.Errorf("unknown format %q (expected text or yaml)", flagSimFormat)
	}
	if flagSimTicks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", flagSimTicks)
	}

	cfg, _, logger, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	sim := simulation{
		Width:     flagSimWidth,
		Height:    flagSimHeight,
		Ticks:     flagSimTicks,
		JumpEvery: flagSimJumpEvery,
		Start:     flagSimStart,
		Seed:      cfg.Seed,
	}

	var snap engine.Snapshot
	if flagSimRealtime {
		snap, err = sim.runRealtime(cmd.Context(), logger)
	} else {
		snap = sim.run(logger)
	}
	if err != nil {
		return err
	}

	if flagSimPNG != "" {
		r := imgexport.NewRenderer(imgexport.NewRegistry(), cfg.Screenshot.PNGScale)
		if err := r.SavePNG(flagSimPNG, snap); err != nil {
			return err
		}
		logger.Info("frame saved", "path", flagSimPNG)

		if w := cfg.Screenshot.ThumbWidth; w > 0 {
			thumb := strings.TrimSuffix(flagSimPNG, filepath.Ext(flagSimPNG)) + "_thumb.png"
			if err := r.SaveThumbnail(thumb, snap, w); err != nil {
				return err
			}
		}
	}

	out := cmd.OutOrStdout()
	if flagSimFormat == "yaml" {
		return writeYAML(out, snap)
	}
	return writeText(out, snap)
}

// newEngine creates a sized engine that logs every crash. onTick, if set,
// sees every snapshot published after setup.
func (s simulation) newEngine(logger *log.Logger, onTick func(engine.Snapshot)) *engine.Engine {
	var (
		wasPlaying bool
		ready      bool
	)
	opts := []engine.Option{
		engine.WithObserver(func(snap engine.Snapshot) {
			if wasPlaying && !snap.IsPlaying {
				logger.Info("run crashed", "score", snap.Score, "max_score", snap.MaxScore, "ticks", snap.Tick)
			}
			wasPlaying = snap.IsPlaying
			if ready && onTick != nil {
				onTick(snap)
			}
		}),
	}
	if s.Seed != 0 {
		opts = append(opts, engine.WithSeed(s.Seed))
	}

	eng := engine.New(opts...)
	eng.Resize(s.Width, s.Height)
	if s.Start {
		eng.RequestStart()
		logger.Info("run started", "width", s.Width, "height", s.Height)
	}
	ready = true
	return eng
}

// run steps the engine Ticks times without waiting.
func (s simulation) run(logger *log.Logger) engine.Snapshot {
	eng := s.newEngine(logger, nil)
	for i := 1; i <= s.Ticks; i++ {
		if s.JumpEvery > 0 && i%s.JumpEvery == 0 {
			eng.RequestJump()
		}
		eng.Tick()
	}
	return eng.Snapshot()
}

// runRealtime lets the engine drive itself on FramePeriod until Ticks
// frames have elapsed or ctx is cancelled.
func (s simulation) runRealtime(ctx context.Context, logger *log.Logger) (engine.Snapshot, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eng   *engine.Engine
		ticks int
	)
	// The observer runs on the Run goroutine after the engine lock is released.
	eng = s.newEngine(logger, func(engine.Snapshot) {
		ticks++
		if ticks >= s.Ticks {
			cancel()
			return
		}
		if s.JumpEvery > 0 && (ticks+1)%s.JumpEvery == 0 {
			eng.RequestJump()
		}
	})
	if s.Ticks == 0 {
		return eng.Snapshot(), nil
	}

	start := time.Now()
	err := eng.Run(runCtx)
	if ctx.Err() != nil {
		return eng.Snapshot(), ctx.Err()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return eng.Snapshot(), err
	}
	logger.Debug("realtime run finished", "ticks", ticks, "elapsed", time.Since(start))
	return eng.Snapshot(), nil
}

func writeYAML(w io.Writer, snap engine.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}

func writeText(w io.Writer, snap engine.Snapshot) error {
	c := snap.Character
	lines := []string{
		fmt.Sprintf("tick:       %d", snap.Tick),
		fmt.Sprintf("canvas:     %.0fx%.0f (ground %.1f)", snap.Size.Width, snap.Size.Height, snap.GroundY),
		fmt.Sprintf("playing:    %t", snap.IsPlaying),
		fmt.Sprintf("score:      %d (live %d, max %d)", snap.Score, snap.LiveScore, snap.MaxScore),
		fmt.Sprintf("character:  %s/%s at (%.1f, %.1f)", c.State, c.Avatar, c.Left, c.Top),
	}
	for i, o := range snap.Obstacles {
		lines = append(lines, fmt.Sprintf("obstacle %d: %s at (%.1f, %.1f)", i, o.Type, o.Left, o.Top))
	}
	for i, d := range snap.Decorations {
		kind := d.Type.String()
		if d.IsBird {
			kind = "bird"
		}
		lines = append(lines, fmt.Sprintf("decor %d:    %s at (%.1f, %.1f)", i, kind, d.Left, d.Top))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
