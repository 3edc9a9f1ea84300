package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/nodebreak/common"
	"github.com/milk9111/nodebreak/logging"
	"github.com/milk9111/nodebreak/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "outline collision shapes and contact normals")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	patternName := flag.String("pattern", "", "override the level's brick pattern (prefabs/patterns basename)")
	watch := flag.Bool("watch", false, "watch prefabs/ on disk and reload edits on restart")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(spec.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(logger, prefabs.Dir, prefabs.Dir+"/patterns")
		if err != nil {
			logger.Warn("prefab watcher disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("nodebreak")

	game, err := NewGame(*levelName, *patternName, *debug, watcher, logger)
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
