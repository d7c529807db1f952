package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/charmotion/common"
	"github.com/milk9111/charmotion/motion"
	"github.com/milk9111/charmotion/prefabs"
	"github.com/milk9111/charmotion/scene"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
	"gopkg.in/yaml.v3"
)

var backgroundColor = color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}

type GameOptions struct {
	Level string
	Debug bool
	Watch bool
}

type Game struct {
	frames int
	opts   GameOptions

	scene   *scene.Scene
	watcher *prefabs.Watcher

	debug      bool
	paused     bool
	swapLocked bool
	pauseUI    *ebitenui.UI
	hudFace    text.Face
	clipboard  bool
	status     string
}

func NewGame(opts GameOptions) (*Game, error) {
	sc, err := scene.New(scene.Options{Level: opts.Level, DebugExplosion: opts.Debug})
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:    opts,
		scene:   sc,
		debug:   opts.Debug,
		hudFace: text.NewGoXFace(basicfont.Face7x13),
	}
	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: prefab hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.reloadTuning()
	}
	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyState()
	}
	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.scene.Queue(motion.Intent{Kind: motion.IntentInterrupt})
	}
	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.swapLocked = !g.swapLocked
		kind := motion.IntentSwapUnlock
		if g.swapLocked {
			kind = motion.IntentSwapLock
		}
		g.scene.Queue(motion.Intent{Kind: kind})
	}

	g.frames++
	g.scene.Step()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Pending() {
		if prefabs.AffectsPlayer(name) {
			g.reloadTuning()
		}
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("game: prefab watcher: %v", err)
	default:
	}
}

func (g *Game) reloadTuning() {
	if err := g.scene.ReloadTuning(); err != nil {
		log.Printf("game: keeping current tuning: %v", err)
		g.status = "reload failed: " + err.Error()
		return
	}
	g.status = fmt.Sprintf("tuning reloaded at frame %d", g.frames)
}

// stateDump is the debug snapshot copied to the clipboard.
type stateDump struct {
	Frame    int          `yaml:"frame"`
	Position [2]float64   `yaml:"position"`
	Velocity [2]float64   `yaml:"velocity"`
	Dashing  bool         `yaml:"dashing"`
	State    motion.State `yaml:"state"`
}

func (g *Game) snapshot() (stateDump, error) {
	ctrl := g.scene.Controller()
	if ctrl == nil {
		return stateDump{}, errors.New("player has no controller yet")
	}
	dump := stateDump{Frame: g.frames, Dashing: ctrl.Dashing(), State: ctrl.State()}
	if t, ok := g.scene.PlayerTransform(); ok {
		dump.Position = [2]float64{t.X, t.Y}
	}
	if v, ok := g.scene.PlayerVelocity(); ok {
		dump.Velocity = [2]float64{v.X, v.Y}
	}
	return dump, nil
}

func (g *Game) copyState() {
	if !g.clipboard {
		g.status = "clipboard unavailable"
		return
	}
	dump, err := g.snapshot()
	if err != nil {
		g.status = err.Error()
		return
	}
	data, err := yaml.Marshal(dump)
	if err != nil {
		log.Printf("game: marshal state: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.status = fmt.Sprintf("state at frame %d copied", g.frames)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.scene.Render.Draw(g.scene.World, screen)

	if g.debug {
		g.drawHUD(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := fmt.Sprintf("frames: %d  fps: %.1f", g.frames, ebiten.ActualFPS())
	if dump, err := g.snapshot(); err == nil {
		s := dump.State
		lines += fmt.Sprintf("\npos: (%.2f, %.2f)  vel: (%.2f, %.2f)", dump.Position[0], dump.Position[1], dump.Velocity[0], dump.Velocity[1])
		lines += fmt.Sprintf("\njumps: %d  canJump: %t  canDash: %t  dashing: %t", s.JumpsRemaining, s.CanJump, s.CanDash, dump.Dashing)
		lines += fmt.Sprintf("\nfacing: %s  fallFaster: %t  airborne: %t  swap: %t", s.Facing, s.FallFaster, s.Airborne, s.WantsToSwap)
	}
	if g.status != "" {
		lines += "\n" + g.status
	}
	lines += "\n[A/D] move  [Space] jump  [Shift/K] dash  [E] interact  [Q] swap  [F5] reload  [C] copy  [X] interrupt  [L] swap lock  [Esc] pause"

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, lines, g.hudFace, op)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
