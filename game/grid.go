package game

import "fmt"

// Grid dimensions, fixed for the life of the program
const (
	Rows = 4
	Cols = 4
)

// Cell identifies a grid cell by 0-indexed row and column
type Cell struct {
	Row, Col int
}

// InGrid reports whether the cell lies within [0,Rows)x[0,Cols)
func (c Cell) InGrid() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// Index returns the row-major index of the cell
func (c Cell) Index() int {
	return c.Row*Cols + c.Col
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
