package game

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sheikhrachel/go-life-sdl/utils"
)

// pollEvents drains the SDL event queue and applies each event to the
// simulation parameters. Runs every frame, paused or not.
func (g *Game) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			g.quit = true

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				g.handleKey(e.Keysym.Sym)
			}

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				g.handleClick(e.Button)
				// Show the new color immediately, even while paused.
				g.render()
			}
		}
	}
}

func (g *Game) handleKey(key sdl.Keycode) {
	switch key {
	case sdl.K_ESCAPE, sdl.K_q:
		g.quit = true

	case sdl.K_p:
		g.togglePause()

	case sdl.K_MINUS, sdl.K_KP_MINUS:
		g.tickRate = utils.ClampTickRate(g.tickRate - 1)

	case sdl.K_PLUS, sdl.K_KP_PLUS:
		g.tickRate = utils.ClampTickRate(g.tickRate + 1)

	case sdl.K_F11:
		g.toggleFullscreen()
	}
}

// handleClick randomizes the live-cell color on a left click and the
// background color on any other button; middle clicks deliberately behave
// like right clicks rather than being ignored.
func (g *Game) handleClick(button uint8) {
	if button == sdl.BUTTON_LEFT {
		g.cellColor = g.randomColor()
	} else {
		g.backgroundColor = g.randomColor()
	}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	fmt.Printf("Pause: %v\n", g.paused)
}

func (g *Game) randomColor() sdl.Color {
	return sdl.Color{
		R: uint8(g.rng.Intn(256)),
		G: uint8(g.rng.Intn(256)),
		B: uint8(g.rng.Intn(256)),
		A: 255,
	}
}
