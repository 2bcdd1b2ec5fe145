package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"evodungeon/pkg/engine/terminal"
	"evodungeon/pkg/game/config"
	"evodungeon/pkg/game/devtools"
	"evodungeon/pkg/game/generator"
	"evodungeon/pkg/game/i18n"
	"evodungeon/pkg/game/logging"
	"evodungeon/pkg/game/renderer"
	ebitenrenderer "evodungeon/pkg/game/renderer/ebiten"
	"evodungeon/pkg/game/renderer/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, generates one dungeon and renders it. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := config.NewFlagSet("evodungeon")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	path, err := fs.GetString("config")
	if err != nil {
		fmt.Fprintln(stderr, i18n.T("CONFIG_ERROR", err))
		return 2
	}
	cfg, err := config.Load(path, fs)
	if err != nil {
		fmt.Fprintln(stderr, i18n.T("CONFIG_ERROR", err))
		return 2
	}

	i18n.Init(cfg.Lang)
	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	// A zero seed is replaced so the run can be reproduced from the log or dump
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("seed selected", zap.Int64("seed", seed))

	var last generator.GenerationReport
	gen := generator.NewEvolutionary(
		generator.WithSeed(seed),
		generator.WithPopulationSize(cfg.Population),
		generator.WithMaxRepairAttempts(cfg.MaxRepairAttempts),
		generator.WithMaxGenerations(cfg.MaxGenerations),
		generator.WithMaxDoorAttempts(cfg.MaxDoorAttempts),
		generator.WithLogger(logger),
		generator.WithObserver(func(r generator.GenerationReport) {
			last = r
			fmt.Fprintln(stderr, i18n.T("GENERATION", r.Generation, r.Best, r.Worst, r.Target))
		}),
	)

	fmt.Fprintln(stderr, i18n.T("GENERATING", cfg.Dimension, cfg.Dimension, cfg.Rooms))
	grid, err := gen.Generate(cfg.Dimension, cfg.Rooms)
	if err != nil {
		fmt.Fprintln(stderr, describeError(err))
		logger.Error("generation failed", zap.Error(err))
		return 1
	}
	fmt.Fprintln(stderr, i18n.T("DONE", grid.Score, last.Generation))

	if cfg.Doors {
		if err := gen.PlaceDoors(grid); err != nil {
			fmt.Fprintln(stderr, i18n.T("DOOR_FAILED", err))
			logger.Error("door placement failed", zap.Error(err))
			return 1
		}
	}

	if cfg.Dump != "" {
		dumped, err := devtools.DumpMapToFile(cfg.Dump, grid, devtools.Metadata{
			Seed:           seed,
			RequestedRooms: cfg.Rooms,
			PopulationSize: gen.PopulationSize(),
			Generation:     last.Generation,
			TargetScore:    last.Target,
		})
		if err != nil {
			fmt.Fprintln(stderr, i18n.T("ERROR", err))
			return 1
		}
		fmt.Fprintln(stderr, i18n.T("MAP_DUMPED", dumped))
	}

	if cfg.GUI {
		renderer.SetRenderer(ebitenrenderer.New())
	} else {
		t := tui.New()
		t.Color = cfg.Color
		t.Debug = cfg.Debug
		if !t.FitsTerminal(grid) {
			logger.Warn("dungeon wider than terminal", zap.Int("dimension", grid.Dimension()))
			fmt.Fprintln(stderr, i18n.T("TERMINAL_TOO_NARROW", terminal.GetWidth(), grid.Dimension()))
		}
		renderer.SetRenderer(t)
	}

	if err := renderer.Render(stdout, grid); err != nil {
		fmt.Fprintln(stderr, i18n.T("ERROR", err))
		return 1
	}
	return 0
}

// describeError maps generator errors to a localized message
func describeError(err error) string {
	var small *generator.DimensionTooSmallError
	switch {
	case errors.As(err, &small):
		return i18n.T("DIMENSION_TOO_SMALL", small.Minimum)
	case errors.Is(err, generator.ErrPlacementExhausted):
		return i18n.T("PLACEMENT_EXHAUSTED", err)
	case errors.Is(err, generator.ErrGenerationLimit):
		return i18n.T("GENERATION_LIMIT", err)
	default:
		return i18n.T("ERROR", err)
	}
}
