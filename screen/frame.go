package screen

import "fmt"

// Frame is a fixed-size grid of cells for one screen update. Storage is
// column-major: the cell at (row, col) lives at buffer[col*rows+row].
// Logical access is always by (row, col); the storage order only leaks
// through prevRowCol.
//
// rows*cols must not overflow int; behavior on overflow is undefined.
type Frame struct {
	rows   int
	cols   int
	buffer []Cell
}

// NewFrame returns a blank frame of the given dimensions.
func NewFrame(rows, cols int) *Frame {
	f := &Frame{}
	f.Reset(rows, cols)
	return f
}

// Reset clears the contents and resets the dimensions, producing an
// entirely blank grid. Storage is reallocated only when capacity is
// insufficient, so per-frame resets are allocation-free at steady state.
func (f *Frame) Reset(rows, cols int) {
	size := rows * cols
	if cap(f.buffer) < size {
		f.buffer = make([]Cell, size)
	} else {
		f.buffer = f.buffer[:size]
	}
	f.rows = rows
	f.cols = cols

	if size == 0 {
		return
	}
	// Exponential copy fill
	f.buffer[0] = DefaultCell
	for filled := 1; filled < size; filled *= 2 {
		copy(f.buffer[filled:], f.buffer[:filled])
	}
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	return f.rows
}

// Columns returns the number of columns.
func (f *Frame) Columns() int {
	return f.cols
}

// dims is shorthand for comparing sizes between frames.
func (f *Frame) dims() (int, int) {
	return f.rows, f.cols
}

// Set writes a cell. Panics if row or col is out of bounds.
func (f *Frame) Set(row, col int, c Cell) {
	f.checkBounds(row, col)
	f.buffer[col*f.rows+row] = c
}

// Get returns a copy of the cell at (row, col). Panics if row or col is
// out of bounds.
func (f *Frame) Get(row, col int) Cell {
	f.checkBounds(row, col)
	return f.buffer[col*f.rows+row]
}

// prevRowCol returns the column-major storage predecessor of (row, col).
// The origin has none; column 0 wraps to the end of the previous row.
func (f *Frame) prevRowCol(row, col int) (int, int, bool) {
	if row == 0 && col == 0 {
		return 0, 0, false
	}
	if col == 0 {
		return row - 1, f.cols - 1, true
	}
	return row, col - 1, true
}

func (f *Frame) checkBounds(row, col int) {
	if row < 0 || row >= f.rows {
		panic(fmt.Sprintf("screen: row %d out of bounds (rows: %d)", row, f.rows))
	}
	if col < 0 || col >= f.cols {
		panic(fmt.Sprintf("screen: column %d out of bounds (columns: %d)", col, f.cols))
	}
}
