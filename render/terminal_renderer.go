package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/limbo/game"
)

// TerminalRenderer draws frames onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	layout game.Layout
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the grid layout for a new terminal size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.layout = FitLayout(width, height)
}

// Layout returns the canonical (unshaken) grid placement, used for click mapping
func (r *TerminalRenderer) Layout() game.Layout {
	return r.layout
}

// RenderFrame draws the baseline grid, the highlighted cell and the score, then shows the screen
func (r *TerminalRenderer) RenderFrame(f game.Frame) {
	r.screen.Fill(' ', styleBackground)

	l := r.layout.Shifted(f.OffsetX, f.OffsetY)

	switch f.Highlight {
	case game.HighlightFlash:
		r.fillCell(l, f.Cell, styleFlash)
	case game.HighlightInput:
		r.fillCell(l, f.Cell, styleInput)
	}

	r.drawGrid(l)
	r.drawScore(f.Score)

	r.screen.Show()
}

// fillCell paints a cell's interior, leaving its lines intact
func (r *TerminalRenderer) fillCell(l game.Layout, c game.Cell, style tcell.Style) {
	if !c.InGrid() {
		return
	}
	x0, y0 := l.CellOrigin(c)
	for y := y0 + 1; y < y0+l.CellHeight; y++ {
		for x := x0 + 1; x < x0+l.CellWidth; x++ {
			r.set(x, y, ' ', style)
		}
	}
}

func (r *TerminalRenderer) drawGrid(l game.Layout) {
	right := l.OriginX + l.Width()
	bottom := l.OriginY + l.Height()

	// Horizontal lines
	for row := 0; row <= game.Rows; row++ {
		y := l.OriginY + row*l.CellHeight
		ch, style := '─', styleLine
		if row == 0 || row == game.Rows {
			ch, style = '━', styleBorder
		}
		for x := l.OriginX + 1; x < right; x++ {
			r.set(x, y, ch, style)
		}
	}

	// Vertical lines
	for col := 0; col <= game.Cols; col++ {
		x := l.OriginX + col*l.CellWidth
		ch, style := '│', styleLine
		if col == 0 || col == game.Cols {
			ch, style = '┃', styleBorder
		}
		for y := l.OriginY + 1; y < bottom; y++ {
			r.set(x, y, ch, style)
		}
	}

	// Intersections
	for row := 0; row <= game.Rows; row++ {
		for col := 0; col <= game.Cols; col++ {
			x := l.OriginX + col*l.CellWidth
			y := l.OriginY + row*l.CellHeight
			style := styleLine
			if row == 0 || row == game.Rows || col == 0 || col == game.Cols {
				style = styleBorder
			}
			r.set(x, y, junction(row, col), style)
		}
	}
}

// junction picks the box-drawing rune where grid lines meet; the border is heavy, interior light
func junction(row, col int) rune {
	top, bottom := row == 0, row == game.Rows
	left, right := col == 0, col == game.Cols

	switch {
	case top && left:
		return '┏'
	case top && right:
		return '┓'
	case bottom && left:
		return '┗'
	case bottom && right:
		return '┛'
	case top:
		return '┯'
	case bottom:
		return '┷'
	case left:
		return '┠'
	case right:
		return '┨'
	default:
		return '┼'
	}
}

func (r *TerminalRenderer) drawScore(score int) {
	text := fmt.Sprintf("Score: %d", score)
	x := (r.width - len(text)) / 2
	for i, ch := range text {
		r.set(x+i, 0, ch, styleScore)
	}
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
