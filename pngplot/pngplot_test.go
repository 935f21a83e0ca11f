package pngplot

import (
	"bytes"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/birromer/essaim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/vg"
)

func TestCanvasWritesPNG(t *testing.T) {
	c := New(essaim.DefaultBounds)
	essaim.Draw(c, essaim.New(essaim.DefaultSwarmSize, essaim.DefaultSeed).State)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf, 2*vg.Inch, 2*vg.Inch))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.InDelta(t, 2*DPI, cfg.Width, 1)
	assert.InDelta(t, 2*DPI, cfg.Height, 1)
}

func TestCanvasReportsNonFiniteState(t *testing.T) {
	c := New(essaim.DefaultBounds)
	c.DrawTank(essaim.Tank{Pos: r2.Vec{X: math.NaN()}}, essaim.TankColor, 1)
	c.DrawSegment(r2.Vec{}, r2.Vec{X: 1}, essaim.LinkColor, 1)

	assert.Error(t, c.Render(io.Discard, vg.Inch, vg.Inch))

	// a new frame starts clean
	c.Clear()
	assert.NoError(t, c.Render(io.Discard, vg.Inch, vg.Inch))
}

func TestRunWritesEveryFrame(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	s := essaim.New(essaim.DefaultSwarmSize, essaim.DefaultSeed)

	err := Run(s, &Config{
		Output:   dir,
		Steps:    3,
		Step:     func() { s.Step() },
		Bounds:   essaim.DefaultBounds,
		Width:    vg.Inch,
		Height:   vg.Inch,
		Progress: io.Discard,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Frame)

	for k := 0; k < 3; k++ {
		f, err := os.Open(filepath.Join(dir, FrameName(k)))
		require.NoError(t, err)
		_, err = png.DecodeConfig(f)
		f.Close()
		assert.NoError(t, err, "frame %d", k)
	}
	_, err = os.Stat(filepath.Join(dir, FrameName(3)))
	assert.True(t, os.IsNotExist(err))
}
