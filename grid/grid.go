// Package grid holds the tile board, its label populations, and the shuffle
// engine that re-labels vacated tiles without creating typing ambiguities
package grid

import (
	"github.com/lixenwraith/tilechase/vmath"
)

// Grid is a square board of cells stored row-major
type Grid struct {
	width int
	cells []Cell
}

func New(width int) *Grid {
	g := &Grid{
		width: width,
		cells: make([]Cell, width*width),
	}
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x].Pos = vmath.P(x, y)
		}
	}
	return g
}

func (g *Grid) Width() int { return g.width }

// At returns the cell at p; p must be in bounds
func (g *Grid) At(p vmath.Pos) *Cell {
	return &g.cells[p.Y*g.width+p.X]
}

// Cells returns every cell in row-major order
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	for i := range g.cells {
		out[i] = &g.cells[i]
	}
	return out
}

// Clear blanks every cell and resets categories to Plain
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Vacate()
		g.cells[i].Category = Plain
	}
}

// Adjacent returns the cells in the (2r+1)² box around p that lie inside the
// grid and are not blocked. The centre cell is included when unblocked
func (g *Grid) Adjacent(p vmath.Pos, radius int) []*Cell {
	x0, x1 := max(0, p.X-radius), min(g.width, p.X+radius+1)
	y0, y1 := max(0, p.Y-radius), min(g.width, p.Y+radius+1)

	out := make([]*Cell, 0, (x1-x0)*(y1-y0))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := &g.cells[y*g.width+x]
			if c.Blocked() {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

// IsAgentOccupied reports whether the cell shows a player or agent glyph
func (g *Grid) IsAgentOccupied(c *Cell) bool {
	return c.Category.IsCharacter()
}

// Free reports whether p is inside the grid and not blocked
func (g *Grid) Free(p vmath.Pos) bool {
	return p.InBounds(g.width) && !g.At(p).Blocked()
}
