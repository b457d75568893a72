//go:build ebiten

package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/sim"
)

// Game adapts a simulator to the ebiten.Game interface.
type Game struct {
	sim   *sim.Simulator
	opts  Options
	timer *FixedStep

	img *ebiten.Image
	buf []byte

	running bool
}

func NewGame(s *sim.Simulator, opts Options) *Game {
	opts = opts.withDefaults()
	g := s.Grid()
	return &Game{
		sim:     s,
		opts:    opts,
		timer:   NewFixedStep(opts.Delay),
		img:     ebiten.NewImage(max(g.Cols(), 1), max(g.Rows(), 1)),
		buf:     make([]byte, 4*g.Len()),
		running: opts.Running,
	}
}

// Update handles input and advances the simulation. Engine errors end the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.running = !g.running
		g.timer.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.running {
		return g.sim.Step()
	}

	if g.opts.Generations > 0 && g.sim.Generation() >= g.opts.Generations {
		g.running = false
	}
	if g.running && g.timer.ShouldStep() {
		return g.sim.Step()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.sim.Grid()
	if grid.Empty() {
		return
	}
	FillRGBA(g.buf, grid, life.Neighbors(grid), g.opts.Palette)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opts.Scale), float64(g.opts.Scale))
	screen.DrawImage(g.img, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.sim.Grid()
	return max(grid.Cols(), 1) * g.opts.Scale, max(grid.Rows(), 1) * g.opts.Scale
}

// Run opens a window and blocks until it is closed or the engine fails.
func Run(s *sim.Simulator, opts Options) error {
	game := NewGame(s, opts)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(game.opts.Title)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
