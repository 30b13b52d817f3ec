package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional) or a path")
	discrete := flag.Bool("discrete", false, "integrate each tick in one step (fast movers can tunnel)")
	launchScript := flag.String("launch-script", "", "tengo launch script in prefabs/scripts (overrides launch.yaml)")
	watch := flag.Bool("watch", true, "reload prefabs when files under prefabs/ change")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(gameOptions{
		Level:        *levelName,
		Debug:        *debug,
		Discrete:     *discrete,
		LaunchScript: *launchScript,
		Watch:        *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("blocklaunch")
	ebiten.SetTPS(game.TickRate())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
