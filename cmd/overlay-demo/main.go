package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/cckdebug/config"
	"github.com/plus3/cckdebug/debugui"
	debugui_ebiten "github.com/plus3/cckdebug/debugui/ebiten"
	"github.com/plus3/cckdebug/handlers"
	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
	"github.com/plus3/cckdebug/world"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Game implements ebiten.Game. Tab opens and closes the quick menu, J and L
// make players join and leave.
type Game struct {
	loop     *overlay.Loop
	menu     *overlay.Menu
	registry *world.Registry
	rng      *rand.Rand
	imgui    *debugui.System
	backend  *debugui_ebiten.ImguiBackend
	dt       float64

	quickMenuOpen bool
}

func main() {
	configPath := flag.String("config", "cckdebug.toml", "Path to the TOML configuration file.")
	players := flag.Int("players", 4, "The number of players in the instance.")
	spawnables := flag.Int("spawnables", 6, "The number of spawnables in the instance.")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	backend := debugui_ebiten.NewBackend("CCK Debugger", ScreenWidth, ScreenHeight)
	ebiten.SetTPS(cfg.Loop.TickRate)

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	registry := world.NewRegistry()
	world.Populate(registry, rng, *players, *spawnables)

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
	imguiSystem := &debugui.System{}
	loop.Register(&world.Simulator{Registry: registry, Rand: rng, Rate: 0.2})
	loop.Register(menu)
	loop.Register(imguiSystem)
	imguiSystem.Items = []debugui.Renderer{
		debugui.NewPanel(menu),
		debugui.NewPerformanceStats(loop, menu.Cache(), 120),
	}

	menu.Register(handlers.NewAvatar(registry))
	menu.Register(handlers.NewSpawnable(registry))
	menu.Register(handlers.NewMisc(loop))
	menu.Start()

	game := &Game{
		loop:          loop,
		menu:          menu,
		registry:      registry,
		rng:           rng,
		imgui:         imguiSystem,
		backend:       backend,
		dt:            1 / float64(cfg.Loop.TickRate),
		quickMenuOpen: true,
	}
	menu.SetQuickMenuOpen(game.quickMenuOpen)

	logger.Info("starting overlay demo", slog.Int("players", *players), slog.Int("spawnables", *spawnables))
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !g.imgui.InputState.WantCaptureKeyboard {
		g.handleInput()
	}

	g.backend.BeginFrame()
	g.loop.Once(g.dt)
	g.backend.EndFrame()
	return nil
}

func (g *Game) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.quickMenuOpen = !g.quickMenuOpen
		g.menu.SetQuickMenuOpen(g.quickMenuOpen)
	case inpututil.IsKeyJustPressed(ebiten.KeyJ):
		world.Populate(g.registry, g.rng, 1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		if avatars := g.registry.Avatars(); len(avatars) > 0 {
			g.registry.Leave(avatars[len(avatars)-1].PlayerID)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
