package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/icmeyer/boing/common"
	"github.com/icmeyer/boing/ecs/system"
)

func main() {
	sceneName := flag.String("scene", "default", "scene name in prefabs/ (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "draw vertices, normals and step stats")
	paused := flag.Bool("paused", false, "start paused")
	mute := flag.Bool("mute", false, "disable the collision sound")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("boing")
	ebiten.SetTPS(system.TickRate)

	game, err := NewGame(*sceneName, *debug, *paused, *mute)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
