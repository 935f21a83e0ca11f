// Package opengl shows swarm simulations in an interactive OpenGL window.
//
// In the window, space pauses and resumes the simulation. While paused, the
// right arrow performs a single step. Scrolling zooms around the cursor, R
// restores the default viewport and N starts over from a new random swarm.
// Esc or closing the window quits.
//
// Building with the nogl tag removes OpenGL support altogether.
package opengl

import (
	"time"

	"github.com/birromer/essaim"
)

// Config holds the parameters of the OpenGL driver.
type Config struct {
	Step       func()        // go to next step
	Reset      func()        // start over, may be nil
	ForcePause bool          // step manually only?
	Pause      time.Duration // delay between frames

	// Bounds of default viewport.
	Bounds essaim.Bounds
}

// A viewport is a rectangle delimiting the area of simulation space shown on screen.
// The first point is the bottom left corner, the second point is the top right corner.
type viewport [2]struct{ X, Y float32 }

func newViewport(b essaim.Bounds) viewport {
	var vp viewport
	vp[0].X, vp[0].Y = float32(b.Xmin), float32(b.Ymin)
	vp[1].X, vp[1].Y = float32(b.Xmax), float32(b.Ymax)
	return vp
}
