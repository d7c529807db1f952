package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/charmotion/common"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

func main() {
	debug := flag.Bool("debug", false, "start with the debug HUD visible")
	levelName := flag.String("level", "level.yaml", "level prefab under prefabs/")
	watch := flag.Bool("watch", true, "hot reload prefabs/ and prefabs/scripts/ from disk")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("charmotion")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(GameOptions{
		Level: *levelName,
		Debug: *debug,
		Watch: *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
