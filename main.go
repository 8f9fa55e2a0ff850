package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/gui"
	"github.com/pthm-cable/ecosim/input"
	"github.com/pthm-cable/ecosim/input/rlinput"
	"github.com/pthm-cable/ecosim/render"
	"github.com/pthm-cable/ecosim/sim"
	"github.com/pthm-cable/ecosim/stats"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats samples via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV stats and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	out, err := stats.NewOutput(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "dir", *outputDir, "error", err)
		os.Exit(1)
	}
	if out != nil {
		slog.Info("writing stats output", "dir", out.Dir())
	}

	opts := sim.Options{
		Seed:     rngSeed,
		Output:   out,
		LogStats: *logStats,
	}

	if *headless {
		err = runHeadless(cfg, opts, int64(*maxTicks))
	} else {
		err = runWindowed(cfg, opts, int64(*maxTicks))
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless steps the simulation as fast as possible until maxTicks or an
// interrupt.
func runHeadless(cfg *config.Config, opts sim.Options, maxTicks int64) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := sim.New(cfg, opts)
	slog.Info("starting headless simulation", "seed", opts.Seed, "max_ticks", maxTicks)

	// Each frame asks for the most steps the clock allows
	frameDelta := cfg.Physics.DT * float64(cfg.Physics.MaxStepsPerFrame)
	none := &input.Set{}
	start := time.Now()

	for ctx.Err() == nil {
		s.Frame(frameDelta, none)
		if maxTicks > 0 && s.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", s.Tick())
			break
		}
	}

	slog.Info("simulation finished",
		"tick", s.Tick(),
		"sim_time", s.SimTime(),
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	return s.Finish()
}

// runWindowed opens the raylib window and runs one simulation frame per
// rendered frame.
func runWindowed(cfg *config.Config, opts sim.Options, maxTicks int64) error {
	palette, err := render.PaletteFromConfig(cfg.Colors)
	if err != nil {
		return err
	}

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))
	rl.SetExitKey(rl.KeyEscape)

	sheet := render.NewSheet(cfg.Assets)
	defer sheet.Unload()
	opts.Assets = sheet

	s := sim.New(cfg, opts)
	renderer := render.New(sheet, palette)
	overlay := gui.NewOverlay(cfg.Window.Title, palette.Boid, palette.Predator, palette.Food)

	for !rl.WindowShouldClose() {
		in := rlinput.Window{PointerCaptured: overlay.OverSettings(s)}
		if in.JustPressed(input.KeyF11) {
			rl.ToggleFullscreen()
		}
		if cam := s.Camera(); cam != nil {
			cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		}

		s.Frame(float64(rl.GetFrameTime()), in)

		rl.BeginDrawing()
		renderer.Clear()
		if cam := s.Camera(); cam != nil {
			rl.BeginMode2D(render.Camera2D(cam))
			renderer.DrawWorld(s)
			if s.Settings.EnableGizmos {
				gui.DrawGizmos(s)
			}
			rl.EndMode2D()
		}
		overlay.Draw(s)
		rl.EndDrawing()

		if maxTicks > 0 && s.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", s.Tick())
			break
		}
	}

	return s.Finish()
}
