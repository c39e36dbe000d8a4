package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/fonts"
	"github.com/automoto/dungeon-crawler/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(start string) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewDungeonScene(start),
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
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding built-in settings")
	start := flag.String("room", scenes.HubRoom, "Room to start in")
	flag.Parse()

	if *configPath != "" {
		o, err := config.LoadOverrides(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		o.Apply()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Dungeon")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(*start)); err != nil {
		log.Fatal(err)
	}
}
