package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	physics := flag.Bool("physics", true, "move actors on the Chipmunk floor instead of direct integration")
	watch := flag.Bool("watch", true, "hot reload prefabs/ and prefabs/scripts/ on change")
	mute := flag.Bool("mute", false, "disable boss audio")
	volume := flag.Float64("volume", 0.6, "boss audio volume (0-1)")
	appName := flag.String("app", "slimeboss", "data directory name for encounter records")
	flag.Parse()

	game, err := NewGame(options{
		physics: *physics,
		watch:   *watch,
		mute:    *mute,
		volume:  *volume,
		appName: *appName,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("slimeboss")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
