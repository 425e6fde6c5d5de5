package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sheikhrachel/go-life-sdl/model"
	"github.com/sheikhrachel/go-life-sdl/utils"
)

/*
Game owns all simulation state: the board, the window/renderer pair, the
colors and the user-tunable parameters. Nothing in this package lives in
package-level variables.
*/
type Game struct {
	config utils.Config
	board  *model.Board
	stats  *utils.Stats
	rng    *rand.Rand

	window   *sdl.Window
	renderer *sdl.Renderer

	generation int
	lastStep   time.Time
	tickRate   int
	paused     bool
	fullscreen bool
	quit       bool

	cellColor       sdl.Color
	backgroundColor sdl.Color
}

// New creates the window/renderer pair and a randomly seeded board.
// The caller owns the returned game and must Close it.
func New(config utils.Config) (*Game, error) {
	config = config.Clamped()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	board := model.NewBoard(config.BoardSide, config.BoardSide)
	board.Randomize(config.SeedDensity, rng)

	g := &Game{
		config:          config,
		board:           board,
		stats:           utils.NewStats(),
		rng:             rng,
		lastStep:        time.Now(),
		tickRate:        config.TickRate,
		cellColor:       toSDLColor(config.CellColor),
		backgroundColor: toSDLColor(config.BackgroundCol),
	}

	if err := g.initDisplay(); err != nil {
		return nil, err
	}

	return g, nil
}

// Stats exposes the run statistics for the shutdown report.
func (g *Game) Stats() *utils.Stats {
	return g.stats
}

// Run drives the synchronous frame loop on the calling goroutine:
// poll input, step unless paused, render, sleep out the frame.
// It returns when the user quits or the context is cancelled.
func (g *Game) Run(ctx context.Context) {
	for !g.quit {
		select {
		case <-ctx.Done():
			return
		default:
		}

		g.pollEvents()
		g.update()
		g.render()

		time.Sleep(time.Second / time.Duration(g.tickRate))
	}
}

// update advances the board by one generation. Pausing suppresses only this
// step; input and rendering keep running every frame.
func (g *Game) update() {
	if g.paused {
		return
	}

	g.board.Step()
	g.generation++
	g.stats.Update(g.generation, g.board.Population(), time.Since(g.lastStep))
	g.lastStep = time.Now()
}

func toSDLColor(c utils.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
