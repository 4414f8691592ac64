package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"mazelott/pkg/engine/input"
	"mazelott/pkg/engine/terminal"
	"mazelott/pkg/game/config"
	"mazelott/pkg/game/gameplay"
	"mazelott/pkg/game/hints"
	"mazelott/pkg/game/overworld"
	"mazelott/pkg/game/renderer"
	ebitenrenderer "mazelott/pkg/game/renderer/ebiten"
	"mazelott/pkg/game/renderer/tui"
	"mazelott/pkg/server"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	hints.Configure(cfg.LocaleDir, cfg.Locale)

	if cfg.DevMode {
		logBindings()
	}

	switch cfg.Mode {
	case config.ModeServe:
		serve(cfg)
	case config.ModeGUI:
		runGUI(cfg)
	default:
		runTUI(cfg)
	}
}

// logBindings lists every action with the keys bound to it
func logBindings() {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	slices.Sort(actions)
	for _, a := range actions {
		log.Printf("[APP] [INFO] %-14s %s", input.ActionName(a), strings.Join(byAction[a], ", "))
	}
}

func gameOptions(cfg config.Config) gameplay.Options {
	return gameplay.Options{
		Width:                   cfg.Width,
		Height:                  cfg.Height,
		Seed:                    cfg.Seed,
		ReofferDeclinedTreasure: cfg.ReofferDeclinedTreasure,
		AdvisoryDuration:        cfg.AdvisoryDuration,
	}
}

func serve(cfg config.Config) {
	router := server.NewRouter(server.Config{
		Addr:     cfg.Addr,
		BaseURL:  "/api",
		GinMode:  cfg.GinMode,
		Defaults: gameOptions(cfg),
	})
	if err := router.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("[SERVER] [FATAL] %v", err)
	}
}

func runTUI(cfg config.Config) {
	renderer.SetRenderer(tui.New())
	renderer.Init()

	if !terminal.Fits(cfg.Width, cfg.Height, tui.ViewportSideMargin*2, tui.ViewportTopMargin) {
		log.Printf("[APP] [INFO] %dx%d maze is larger than the terminal, the view will scroll", cfg.Width, cfg.Height)
	}

	play(cfg)
	fmt.Println()
}

// runGUI runs the game loop on its own goroutine while Ebiten owns the main
// thread, as the window system requires.
func runGUI(cfg config.Config) {
	r := ebitenrenderer.New()
	renderer.SetRenderer(r)
	renderer.Init()

	go func() {
		play(cfg)
		r.Stop()
	}()

	if err := r.Run(); err != nil {
		log.Fatalf("[GUI] [FATAL] %v", err)
	}
}

// play runs the kingdom map (unless skipped) and then the maze until the
// player quits.
func play(cfg config.Config) {
	if !cfg.SkipOverworld {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		kingdom := &gameplay.Kingdom{Map: overworld.New(rand.New(rand.NewSource(seed)))}
		for !kingdom.Done() {
			renderer.Clear()
			renderer.RenderOverworld(renderer.OverworldViewOf(kingdom.Map, kingdom.Messages))
			gameplay.ProcessOverworldIntent(kingdom, renderer.GetInput())
		}
		if kingdom.Quit {
			return
		}
	}

	g := gameplay.BuildGame(gameOptions(cfg))
	if gameplay.IsConfigurationError(g.PlaceErr) {
		log.Printf("[APP] [ERROR] maze placement: %v", g.PlaceErr)
		renderer.ShowMessage(hints.Textf(hints.MazeSizeTooSmall, g.Grid.Width(), g.Grid.Height()))
		// wait for a key so the message can be read before the window closes
		renderer.GetInput()
		return
	}
	if g.PlaceErr != nil {
		log.Printf("[APP] [INFO] maze placement: %v", g.PlaceErr)
	}
	if cfg.DevMode {
		renderer.ShowMessage(fmt.Sprintf("maze %dx%d seed %d", g.Grid.Width(), g.Grid.Height(), g.Seed))
	}

	for !g.QuitRequested {
		renderer.Clear()
		renderer.RenderFrame(g.Snapshot(time.Now()))
		gameplay.ProcessIntent(g, renderer.GetInput())
	}
}
