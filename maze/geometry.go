package maze

// Dimensions holds the size of a maze in cell units. It is immutable once a
// maze has been created and is shared by value with every component that
// addresses the grid.
type Dimensions struct {
	Width  int // Number of columns
	Height int // Number of rows
}

// Cells returns the total number of cells in the grid.
func (d Dimensions) Cells() int {
	return d.Width * d.Height
}

// RowCol decomposes a linear cell index into its row and column.
func RowCol(dims Dimensions, idx int) (int, int) {
	return idx / dims.Width, idx % dims.Width
}

// TaxicabDistance returns the Manhattan distance between two cells.
func TaxicabDistance(dims Dimensions, from, to int) int {
	fromRow, fromCol := RowCol(dims, from)
	toRow, toCol := RowCol(dims, to)
	return abs(fromRow-toRow) + abs(fromCol-toCol)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
