package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/cckdebug/config"
	"github.com/plus3/cckdebug/debugui/term"
	"github.com/plus3/cckdebug/handlers"
	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
	"github.com/plus3/cckdebug/world"
)

func main() {
	configPath := flag.String("config", "cckdebug.toml", "Path to the TOML configuration file.")
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	players := flag.Int("players", 16, "The number of players in the instance.")
	spawnables := flag.Int("spawnables", 32, "The number of spawnables in the instance.")
	rate := flag.Float64("rate", 0.3, "Chance per frame that a telemetry value changes.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed.")
	preview := flag.Bool("preview", false, "Print the final panel state.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	logger.Info("starting overlay stress test")

	// 1. Populate the instance
	rng := rand.New(rand.NewPCG(*seed, *seed>>1))
	registry := world.NewRegistry()
	world.Populate(registry, rng, *players, *spawnables)
	logger.Info("population complete", slog.Int("players", *players), slog.Int("spawnables", *spawnables))

	// 2. Build the menu and the loop
	tree := ui.NewTree()
	anchor := tree.New(tree.Root(), "QuickMenu", ui.KindPanel)
	panel := ui.NewDebuggerPanel(tree, anchor)
	panel.Width = cfg.Panel.Width
	commands := overlay.NewCommands(tree)

	opts := cfg.MenuOptions()
	opts.Logger = logger
	opts.Players = registry.Players()
	opts.Avatars = registry.AvatarNames()
	opts.Spawnables = registry.SpawnableNames()
	menu, err := overlay.NewMenu(tree, panel, commands, opts)
	if err != nil {
		logger.Error("failed to build menu", slog.Any("error", err))
		os.Exit(1)
	}
	registry.OnRemove(menu.ForgetVisualizers)

	loop := overlay.NewLoop(commands)
	user := &User{Menu: menu, Rand: rng}
	loop.Register(&world.Simulator{Registry: registry, Rand: rng, Rate: *rate})
	loop.Register(user)
	loop.Register(menu)

	menu.Register(handlers.NewAvatar(registry))
	menu.Register(handlers.NewSpawnable(registry))
	menu.Register(handlers.NewMisc(loop))
	menu.Start()
	menu.SetQuickMenuOpen(true)

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Players:        *players,
		Spawnables:     *spawnables,
		Rate:           *rate,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", slog.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			loop.Once(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Cache = menu.Cache().Stats()
	report.Systems = loop.Stats().Systems
	report.PageSwitches = user.PageSwitches
	report.SubPageSwitches = user.SubPageSwitches
	report.ToggleFlips = user.ToggleFlips
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")

	if *preview {
		fmt.Println(term.Render(menu))
	}

	logger.Info("stress test complete")
}
