package clock

import "github.com/vovakirdan/tui-wordclock/internal/core"

// GridSize is the number of rows and columns of the letter grid.
const GridSize = 10

// Surface receives every cell color change. The engine never reads it back.
type Surface interface {
	SetCellColor(row, col int, c core.Color)
}

// Cell is one letter position. Text and position are fixed; color and the
// active flag change as words fade.
type Cell struct {
	row, col int
	text     string
	color    core.Color
	active   bool
	surface  Surface
}

// Text returns the letter(s) printed in this cell.
func (c *Cell) Text() string { return c.text }

// Row returns the cell's row.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column.
func (c *Cell) Col() int { return c.col }

// Color returns the last color written to the cell.
func (c *Cell) Color() core.Color { return c.color }

// SetColor overwrites the color and forwards it to the surface.
func (c *Cell) SetColor(color core.Color) {
	c.color = color
	if c.surface != nil {
		c.surface.SetCellColor(c.row, c.col, color)
	}
}

// SetActive stores the logical activity flag.
func (c *Cell) SetActive(active bool) { c.active = active }

// Active reports whether the cell belongs to the displayed phrase.
func (c *Cell) Active() bool { return c.active }

// Grid owns all cells. Words only hold references into it, and several
// words may reference the same cell.
type Grid struct {
	cells [GridSize][GridSize]*Cell
}

// NewGrid creates the grid from letter rows and paints every cell in the
// baseline color on the surface.
func NewGrid(letters [GridSize][GridSize]string, surface Surface) *Grid {
	g := &Grid{}
	for r := range letters {
		for c := range letters[r] {
			cell := &Cell{
				row:     r,
				col:     c,
				text:    letters[r][c],
				surface: surface,
			}
			cell.SetColor(core.ColorBaseline)
			g.cells[r][c] = cell
		}
	}
	return g
}

// At returns the cell at (row, col), or nil if out of range.
func (g *Grid) At(row, col int) *Cell {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return nil
	}
	return g.cells[row][col]
}

// ActiveCells returns every active cell in row-major order.
func (g *Grid) ActiveCells() []*Cell {
	var out []*Cell
	for r := range g.cells {
		for _, cell := range g.cells[r] {
			if cell.active {
				out = append(out, cell)
			}
		}
	}
	return out
}
