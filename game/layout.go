package game

import "github.com/lixenwraith/limbo/constants"

// Layout places the grid on a render surface
// Units are whatever the surface uses: pixels for the canonical surface, character cells in a terminal
type Layout struct {
	OriginX, OriginY      int
	CellWidth, CellHeight int
}

// PixelLayout is the canonical 800x600 surface with a centered 500x500 square
func PixelLayout() Layout {
	cell := constants.SquareSize / Rows
	return Layout{
		OriginX:    (constants.SurfaceWidth - constants.SquareSize) / 2,
		OriginY:    (constants.SurfaceHeight - constants.SquareSize) / 2,
		CellWidth:  cell,
		CellHeight: cell,
	}
}

// Width returns the grid width in surface units
func (l Layout) Width() int { return l.CellWidth * Cols }

// Height returns the grid height in surface units
func (l Layout) Height() int { return l.CellHeight * Rows }

// CellOrigin returns the top-left surface coordinate of a cell
func (l Layout) CellOrigin(c Cell) (x, y int) {
	return l.OriginX + c.Col*l.CellWidth, l.OriginY + c.Row*l.CellHeight
}

// Shifted returns the layout moved by the given offset
func (l Layout) Shifted(dx, dy int) Layout {
	l.OriginX += dx
	l.OriginY += dy
	return l
}

// CellAt maps a surface point to a grid cell
// Division floors; points left of or above the origin are out of grid
func (l Layout) CellAt(x, y int) (Cell, bool) {
	if l.CellWidth <= 0 || l.CellHeight <= 0 {
		return Cell{}, false
	}
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return Cell{}, false
	}
	c := Cell{Row: dy / l.CellHeight, Col: dx / l.CellWidth}
	if !c.InGrid() {
		return Cell{}, false
	}
	return c, true
}
