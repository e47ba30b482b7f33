package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/automoto/canyon/assets"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/fonts"
	"github.com/automoto/canyon/scenes"
	"github.com/automoto/canyon/session"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
	cfg   *config.Config
}

func NewGame(cfg *config.Config, scene scenes.Scene) *Game {
	return &Game{
		scene: scene,
		cfg:   cfg,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func loadLevel(name, dir string) (*leveldata.Description, error) {
	if dir != "" {
		return assets.LoadLevelFS(os.DirFS(dir), ".", name)
	}
	return assets.LoadLevel(name)
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding the default tuning")
	levelName := flag.String("level", assets.DefaultLevel, "level to play")
	levelDir := flag.String("level-dir", "", "load levels from this directory instead of the embedded set")
	fontPath := flag.String("font", "", "TrueType font for the HUD")
	headless := flag.Duration("headless", 0, "run without a window for this long, then exit")
	flag.Parse()

	cfg := config.C
	if *configPath != "" {
		c, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = &c
	}

	desc, err := loadLevel(*levelName, *levelDir)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if *headless > 0 {
		s, err := session.New(cfg, desc)
		if err != nil {
			log.Fatal(err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), *headless)
		defer cancel()
		if err := session.NewLoop(s, 60).Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			log.Fatal(err)
		}
		return
	}

	if *fontPath != "" {
		if err := fonts.LoadFile(*fontPath); err != nil {
			log.Printf("Warning: Could not load font, using the built-in face: %v", err)
		}
	}
	fonts.LoadDefaults()

	scene, err := scenes.NewWorldScene(cfg, desc)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(scene.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(cfg, scene)); err != nil {
		log.Fatal(err)
	}
}
