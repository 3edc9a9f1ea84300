package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/nodebreak/breakout"
	"github.com/milk9111/nodebreak/common"
	"github.com/milk9111/nodebreak/ecs"
	"github.com/milk9111/nodebreak/ecs/system"
	"github.com/milk9111/nodebreak/geom"
	"github.com/milk9111/nodebreak/levels"
	"github.com/milk9111/nodebreak/prefabs"
)

var screenOrigin = geom.V(8, 14)

type Game struct {
	logger *zap.Logger

	level   string
	pattern string
	debug   bool

	round    *breakout.Game
	renderer *system.RenderSystem
	watcher  *prefabs.Watcher

	paused  bool
	overlay *ebitenui.UI
	// stale is set when a watched prefab changed; the next restart reloads it.
	stale bool
	quit  bool
}

func NewGame(level, pattern string, debug bool, watcher *prefabs.Watcher, logger *zap.Logger) (*Game, error) {
	g := &Game{
		logger:  logger,
		level:   level,
		pattern: pattern,
		debug:   debug,
		watcher: watcher,
	}
	if err := g.load(level); err != nil {
		return nil, err
	}
	return g, nil
}

// load reads the spec and the level from prefabs and starts a new round.
func (g *Game) load(level string) error {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}
	lvl, err := levels.Load(level)
	if err != nil {
		return err
	}
	if g.pattern != "" {
		lvl.Pattern = g.pattern
	}

	round, err := breakout.NewFromLevel(context.Background(), spec, lvl, g.logger)
	if err != nil {
		return err
	}
	if err := round.Initialize(); err != nil {
		return err
	}
	if err := round.Start(); err != nil {
		return err
	}

	g.level = lvl.Name
	g.round = round
	g.renderer = system.NewRenderSystem(screenOrigin)
	g.renderer.Debug = g.debug
	g.overlay = nil
	g.paused = false
	g.stale = false
	return nil
}

func (g *Game) restart(level string) {
	if err := g.load(level); err != nil {
		g.logger.Error("failed to load level", zap.String("level", level), zap.Error(err))
		g.showMessage("Could not load "+level, err.Error())
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
		g.renderer.Debug = g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart(g.level)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.round.Running() {
		g.paused = !g.paused
		if g.paused {
			g.showPause()
		} else {
			g.overlay = nil
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
		return nil
	}

	x, _ := ebiten.CursorPosition()
	outcome, err := g.round.Step(breakout.Input{
		TargetX:   float64(x) - screenOrigin.X,
		HasTarget: true,
		Pause:     g.paused,
	})
	if errors.Is(err, breakout.ErrNotRunning) {
		return nil
	}
	if err != nil {
		return err
	}
	g.renderer.Observe(g.round.LastEvents())

	switch outcome {
	case breakout.GameWon:
		g.showWon()
	case breakout.GameLost:
		g.showLost()
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes():
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Info("prefab changed, reloading on restart", zap.String("path", change.Path))
			g.stale = true
		default:
			return
		}
	}
}

func (g *Game) showPause() {
	g.overlay = NewOverlayUI("Paused", g.staleNote(),
		overlayButton{label: "Resume", onClick: func() {
			g.paused = false
			g.overlay = nil
		}},
		overlayButton{label: "Restart", onClick: func() { g.restart(g.level) }},
		overlayButton{label: "Quit", onClick: func() { g.quit = true }},
	)
}

func (g *Game) showWon() {
	next, ok, err := levels.Next(g.level)
	if err != nil {
		g.logger.Warn("level order unavailable", zap.Error(err))
	}
	buttons := []overlayButton{{label: "Play again", onClick: func() { g.restart(g.level) }}}
	if ok {
		buttons = append([]overlayButton{{label: "Next level", onClick: func() { g.restart(next) }}}, buttons...)
	}
	buttons = append(buttons, overlayButton{label: "Quit", onClick: func() { g.quit = true }})
	g.overlay = NewOverlayUI("Field cleared", fmt.Sprintf("%d ticks", g.round.Tick()), buttons...)
}

func (g *Game) showLost() {
	g.overlay = NewOverlayUI("Ball lost", fmt.Sprintf("%d bricks left", g.round.LiveBricks()),
		overlayButton{label: "Retry", onClick: func() { g.restart(g.level) }},
		overlayButton{label: "Quit", onClick: func() { g.quit = true }},
	)
}

func (g *Game) showMessage(title, detail string) {
	g.overlay = NewOverlayUI(title, detail,
		overlayButton{label: "Quit", onClick: func() { g.quit = true }},
	)
}

func (g *Game) staleNote() string {
	if g.stale {
		return "prefabs changed: restart to apply"
	}
	return ""
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff})

	if g.round != nil {
		g.round.View(func(w *ecs.World) {
			g.renderer.Draw(w, screen)
		})
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s    bricks: %d    tick: %d    FPS: %.2f",
			g.level, g.round.LiveBricks(), g.round.Tick(), ebiten.ActualFPS()))
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
