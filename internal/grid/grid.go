// Package grid sizes the watch grid for a given number of channels.
package grid

// Breakpoint is a display width class.
type Breakpoint int

const (
	Base Breakpoint = iota
	Medium
	Large
)

// Terminal widths, in cells, at which the wider breakpoints start.
const (
	MediumWidth = 100
	LargeWidth  = 160
)

// BreakpointFor classifies a terminal width. Unknown widths (<= 0) count as
// Large so that piped output shows the full layout.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width <= 0 || width >= LargeWidth:
		return Large
	case width >= MediumWidth:
		return Medium
	default:
		return Base
	}
}

// Columns is the column count at each breakpoint.
type Columns struct {
	Base   int
	Medium int
	Large  int
}

// At returns the column count for bp.
func (c Columns) At(bp Breakpoint) int {
	switch bp {
	case Medium:
		return c.Medium
	case Large:
		return c.Large
	default:
		return c.Base
	}
}

// ColumnsFor returns the column layout for n channels.
func ColumnsFor(n int) Columns {
	switch {
	case n <= 1:
		return Columns{1, 1, 1}
	case n == 2:
		return Columns{1, 2, 2}
	case n == 3:
		return Columns{1, 3, 3}
	case n == 4:
		return Columns{1, 2, 2}
	case n <= 6:
		return Columns{1, 2, 3}
	case n <= 8:
		return Columns{1, 2, 4}
	default:
		return Columns{1, 3, 4}
	}
}

// RowsFor returns the nominal row count for n channels.
func RowsFor(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

// Arrange lays out n cells row-major in the given number of columns and
// returns the cell indexes of each row. The last row may be short.
func Arrange(n, columns int) [][]int {
	if n <= 0 {
		return nil
	}
	if columns < 1 {
		columns = 1
	}
	rows := make([][]int, 0, (n+columns-1)/columns)
	for start := 0; start < n; start += columns {
		end := min(start+columns, n)
		row := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, i)
		}
		rows = append(rows, row)
	}
	return rows
}
