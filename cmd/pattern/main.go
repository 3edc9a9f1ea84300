package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/milk9111/nodebreak/breakout"
	"github.com/milk9111/nodebreak/levels"
	"github.com/milk9111/nodebreak/pattern"
	"github.com/milk9111/nodebreak/prefabs"
)

func main() {
	levelName := flag.String("level", "", "take the pattern and classes from this level")
	patternName := flag.String("pattern", "", "pattern script to render (overrides the level's)")
	classes := flag.String("classes", "", "comma separated node classes, one per row (overrides the level's)")
	cols := flag.Int("cols", 100, "preview width in characters")
	timeout := flag.Duration("timeout", 2*time.Second, "script time limit")
	list := flag.Bool("list", false, "list bundled patterns and exit")
	flag.Parse()

	if *list {
		for _, name := range prefabs.PatternNames() {
			fmt.Println(name)
		}
		return
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := breakout.ConfigFromSpec(spec)
	if err != nil {
		log.Fatal(err)
	}
	lvl, err := levels.Load(*levelName)
	if err != nil {
		log.Fatal(err)
	}
	if *patternName != "" {
		lvl.Pattern = *patternName
	}
	if *classes != "" {
		lvl.Classes = strings.Split(*classes, ",")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	bricks, err := breakout.Layout(ctx, cfg, lvl.Pattern, lvl.Classes)
	if err != nil {
		log.Fatal(err)
	}

	field := breakout.NewField(cfg.Field)
	fmt.Printf("%s: %d bricks\n", lvl.Pattern, len(bricks))
	fmt.Print(pattern.ASCII(bricks, field.Bounds(), *cols))
}
