package render

import "github.com/lixenwraith/limbo/game"

// Terminal layout limits
const (
	// ScoreRows is the space reserved above the grid for the score line
	ScoreRows = 2

	MinCellWidth  = 3
	MinCellHeight = 2
)

// FitLayout sizes the grid to a width x height terminal
// Cells keep a 2:1 column to row ratio so they look roughly square; the grid is centered
// below the score line. Lines are drawn on each cell's first column and row, plus one
// closing column and row, so the grid spans CellWidth*Cols+1 columns
func FitLayout(width, height int) game.Layout {
	availW := width - 1
	availH := height - ScoreRows - 1

	cellH := availH / game.Rows
	cellW := cellH * 2
	if cellW*game.Cols > availW {
		cellW = availW / game.Cols
		cellH = cellW / 2
	}
	cellW = max(cellW, MinCellWidth)
	cellH = max(cellH, MinCellHeight)

	gridW := cellW*game.Cols + 1
	gridH := cellH*game.Rows + 1

	return game.Layout{
		OriginX:    max((width-gridW)/2, 0),
		OriginY:    ScoreRows + max((height-ScoreRows-gridH)/2, 0),
		CellWidth:  cellW,
		CellHeight: cellH,
	}
}
