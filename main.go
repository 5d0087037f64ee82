package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skybrawl/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and entity state")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "level.yaml", "level prefab under prefabs/")
	seed := flag.Uint64("seed", 0, "spawn placement seed; 0 picks one from the clock")
	watch := flag.Bool("watch", false, "hot reload prefabs/ while running")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("skybrawl")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Options{
		Level: *levelName,
		Seed:  *seed,
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
