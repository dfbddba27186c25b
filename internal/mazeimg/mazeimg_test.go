package mazeimg

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzegla/maze-carver/internal/maze"
)

func buildGrid(t *testing.T, rows, cols int) *maze.Grid {
	t.Helper()
	g, err := maze.New(rows, cols, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return g
}

func rgba(c color.Color) (r, g, b, a uint32) {
	return c.RGBA()
}

func TestBounds(t *testing.T) {
	pic := New(buildGrid(t, 3, 5))
	bounds := pic.Bounds()
	assert.Equal(t, 5*CellPixels, bounds.Dx())
	assert.Equal(t, 3*CellPixels, bounds.Dy())
}

func TestOutOfBoundsIsTransparent(t *testing.T) {
	pic := New(buildGrid(t, 2, 2))
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {2 * CellPixels, 0}, {0, 2 * CellPixels}} {
		_, _, _, a := rgba(pic.At(pt[0], pt[1]))
		assert.Zero(t, a, "pixel (%d,%d) should be transparent", pt[0], pt[1])
	}
}

func TestBorderWallsAreDrawn(t *testing.T) {
	g := buildGrid(t, 2, 2)
	g.Run()
	pic := New(g)

	// The outer border is never carved, so every border pixel is wall.
	max := 2 * CellPixels
	for i := 0; i < max; i++ {
		for _, pt := range [][2]int{{i, 0}, {i, max - 1}, {0, i}, {max - 1, i}} {
			r, gg, b, _ := rgba(pic.At(pt[0], pt[1]))
			assert.Equal(t, uint32(0), r+gg+b,
				"border pixel (%d,%d) should be wall", pt[0], pt[1])
		}
	}
}

func TestCarvedWallIsOpen(t *testing.T) {
	g := buildGrid(t, 1, 2)
	g.Run()
	pic := New(g)

	// A 1x2 maze has a single interior wall and it must be carved; the
	// pixel column between the two cells is open at mid height.
	r, gg, b, _ := rgba(pic.At(CellPixels-1, CellPixels/2))
	assert.NotEqual(t, uint32(0), r+gg+b)

	// The current cell renders red, the other visited cell white.
	cur := g.CurrentCell()
	curX := cur.Col*CellPixels + CellPixels/2
	r, gg, b, _ = rgba(pic.At(curX, CellPixels/2))
	assert.Greater(t, r, gg)
	assert.Greater(t, r, b)

	otherX := (1-cur.Col)*CellPixels + CellPixels/2
	r, gg, b, _ = rgba(pic.At(otherX, CellPixels/2))
	assert.Equal(t, r, gg)
	assert.Equal(t, gg, b)
}
