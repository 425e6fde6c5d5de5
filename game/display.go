package game

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sheikhrachel/go-life-sdl/model"
)

// initDisplay brings up SDL and creates the window/renderer pair.
// Any failure here is fatal for the process.
func (g *Game) initDisplay() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "[initDisplay] failed to initialize SDL")
	}

	span := int32(g.config.BoardSide * g.config.PixelSize)

	window, err := sdl.CreateWindow(g.config.WindowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		span, span, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return errors.Wrap(err, "[initDisplay] failed to create window")
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return errors.Wrap(err, "[initDisplay] failed to create renderer")
	}

	g.window = window
	g.renderer = renderer
	return nil
}

// Close releases the renderer, the window and SDL itself.
func (g *Game) Close() {
	if g.renderer != nil {
		g.renderer.Destroy()
	}
	if g.window != nil {
		g.window.Destroy()
	}
	sdl.Quit()
}

// render draws one frame: background, grid lines, then a filled square per
// live cell, and presents it.
func (g *Game) render() {
	g.renderer.SetDrawColor(g.backgroundColor.R, g.backgroundColor.G,
		g.backgroundColor.B, g.backgroundColor.A)
	g.renderer.Clear()

	g.renderer.SetDrawColor(g.cellColor.R, g.cellColor.G,
		g.cellColor.B, g.cellColor.A)

	var (
		pixel = int32(g.config.PixelSize)
		span  = int32(g.config.BoardSide) * pixel
	)

	for line := int32(0); line < span; line += pixel {
		g.renderer.DrawLine(0, line, span, line)
		g.renderer.DrawLine(line, 0, line, span)
	}

	rect := sdl.Rect{W: pixel, H: pixel}
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if g.board.Get(x, y) == model.Alive {
				rect.X = int32(x) * pixel
				rect.Y = int32(y) * pixel
				g.renderer.FillRect(&rect)
			}
		}
	}

	g.renderer.Present()
}

// toggleFullscreen flips the window between desktop fullscreen and windowed.
func (g *Game) toggleFullscreen() {
	g.fullscreen = !g.fullscreen
	if g.window == nil {
		return
	}

	if g.fullscreen {
		g.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		g.window.SetFullscreen(0)
	}
}
