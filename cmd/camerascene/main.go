package main

import (
	"flag"
	"log"

	"chosenoffset.com/camerascene/internal/config"
	"chosenoffset.com/camerascene/internal/game"
	ebitenrender "chosenoffset.com/camerascene/internal/render/ebiten"
	"chosenoffset.com/camerascene/internal/scene"
	"chosenoffset.com/camerascene/internal/ui/hud"
)

func main() {
	configPath := flag.String("config", "camerascene.json", "path to the JSON config file")
	scale := flag.Float64("scale", 1, "camera scale in world units per logical pixel")
	playerX := flag.Float64("player-x", 320, "player spawn x in world units")
	playerY := flag.Float64("player-y", 240, "player spawn y in world units")
	variant := flag.String("variant", scene.VariantCombined.String(), "label layout: combined, split or resize")
	trigger := flag.String("trigger", scene.TriggerEveryTick.String(), "report trigger: every_tick or pointer_motion")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags given on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			cfg.Camera.Scale = float32(*scale)
		case "player-x":
			cfg.Player.Position.X = float32(*playerX)
		case "player-y":
			cfg.Player.Position.Y = float32(*playerY)
		case "variant":
			cfg.Overlay.Variant = *variant
		case "trigger":
			cfg.Overlay.Trigger = *trigger
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	opts, err := cfg.SceneOptions()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	s, err := scene.New(opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}
	log.Printf("Scene ready: variant=%s trigger=%s camera scale=%v", opts.Variant, opts.Trigger, opts.CameraScale)

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer(cfg.Overlay.FontSize)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	overlay := hud.New(&cfg.Overlay.HUD, renderer, cfg.Window.Width, cfg.Window.Height)

	g := game.New(s, renderer, inputMgr, overlay, cfg.Window.Width, cfg.Window.Height, engine.DeviceScaleFactor())

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
	log.Println("Game exited")
}
