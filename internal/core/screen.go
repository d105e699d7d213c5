package core

import "sync"

// Cell is one letter position on the screen: fixed text plus its current color.
type Cell struct {
	Text  string
	Color Color
}

// Screen is the letter grid as seen by the display.
// The clock engine writes colors from its own goroutine while the UI reads
// snapshots, so every access goes through the mutex.
type Screen struct {
	mu      sync.RWMutex
	rows    int
	cols    int
	cells   [][]Cell
	version uint64
}

// NewScreen creates a rows×cols screen with every cell blank in the baseline color.
func NewScreen(rows, cols int) *Screen {
	s := &Screen{
		rows: rows,
		cols: cols,
	}
	s.cells = make([][]Cell, rows)
	for r := range s.cells {
		s.cells[r] = make([]Cell, cols)
		for c := range s.cells[r] {
			s.cells[r][c] = Cell{Text: " ", Color: ColorBaseline}
		}
	}
	return s
}

// Rows returns the number of rows.
func (s *Screen) Rows() int {
	return s.rows
}

// Cols returns the number of columns.
func (s *Screen) Cols() int {
	return s.cols
}

// SetText places the letter text of a cell.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetText(row, col int, text string) {
	if !s.inBounds(row, col) {
		return
	}
	s.mu.Lock()
	s.cells[row][col].Text = text
	s.version++
	s.mu.Unlock()
}

// SetCellColor overwrites the color of a cell.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCellColor(row, col int, c Color) {
	if !s.inBounds(row, col) {
		return
	}
	s.mu.Lock()
	s.cells[row][col].Color = c
	s.version++
	s.mu.Unlock()
}

// Get returns the cell at the given position.
// Returns a blank baseline cell for out-of-bounds coordinates.
func (s *Screen) Get(row, col int) Cell {
	if !s.inBounds(row, col) {
		return Cell{Text: " ", Color: ColorBaseline}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cells[row][col]
}

// Snapshot returns a copy of all cells together with the change counter.
func (s *Screen) Snapshot() ([][]Cell, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]Cell, s.rows)
	for r := range s.cells {
		out[r] = make([]Cell, s.cols)
		copy(out[r], s.cells[r])
	}
	return out, s.version
}

// Version returns a counter that increases on every mutation.
func (s *Screen) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Screen) inBounds(row, col int) bool {
	return row >= 0 && row < s.rows && col >= 0 && col < s.cols
}
