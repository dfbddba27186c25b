// Package mazeimg rasterizes a maze grid as an image.Image, one fixed-size
// square of pixels per cell, suitable for PNG export.
package mazeimg

import (
	"image"
	"image/color"

	"github.com/mzegla/maze-carver/internal/maze"
)

// CellPixels is the width and height of one cell, in pixels.
const CellPixels = 9

var (
	wallColor      = color.Black
	visitedColor   = color.White
	unvisitedColor = color.RGBA{R: 210, G: 210, B: 210, A: 255}
	currentColor   = color.RGBA{R: 230, G: 20, B: 20, A: 255}
)

// Image adapts a maze.Grid to image.Image. It reads the grid lazily, so the
// same Image value renders whatever state the grid is in when it is encoded.
// The grid must not be stepped concurrently with encoding.
type Image struct {
	g *maze.Grid
}

func New(g *maze.Grid) *Image {
	return &Image{g: g}
}

func (p *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.g.Cols()*CellPixels, p.g.Rows()*CellPixels)
}

// cornerSet reports whether the corner pixel of a cell should be drawn as
// wall. A corner is clear only when both walls adjacent to it are gone.
func cornerSet(c maze.Cell, left, top bool) bool {
	switch {
	case left && top:
		return c.Left || c.Top
	case !left && top:
		return c.Top || c.Right
	case left && !top:
		return c.Bottom || c.Left
	default:
		return c.Right || c.Bottom
	}
}

func (p *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= p.g.Cols()*CellPixels || y >= p.g.Rows()*CellPixels {
		return color.Transparent
	}

	row := y / CellPixels
	col := x / CellPixels
	cell, _ := p.g.Cell(row, col)

	xx := x % CellPixels
	yy := y % CellPixels
	onLeft := xx == 0
	onRight := xx == CellPixels-1
	onTop := yy == 0
	onBottom := yy == CellPixels-1

	if (onLeft || onRight) && (onTop || onBottom) {
		if cornerSet(cell, onLeft, onTop) {
			return wallColor
		}
	} else if (onLeft && cell.Left) || (onRight && cell.Right) ||
		(onTop && cell.Top) || (onBottom && cell.Bottom) {
		return wallColor
	}

	cur := p.g.CurrentCell()
	switch {
	case cell.Row == cur.Row && cell.Col == cur.Col:
		return currentColor
	case cell.Visited:
		return visitedColor
	default:
		return unvisitedColor
	}
}
