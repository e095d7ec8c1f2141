package maze

import "strings"

// Grid owns the ordered collection of cells for one maze, length
// Width*Height in row-major order. Algorithms receive the cell slice for
// the duration of a single step call and must not retain it.
type Grid struct {
	dims  Dimensions
	cells []Cell
}

// NewGrid creates a fully walled grid of the given dimensions.
func NewGrid(dims Dimensions) *Grid {
	g := &Grid{dims: dims}
	g.Reset()
	return g
}

// Dimensions returns the grid dimensions.
func (g *Grid) Dimensions() Dimensions {
	return g.dims
}

// Cells returns the mutable cell slice.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Reset restores every cell to its initial fully walled state.
func (g *Grid) Reset() {
	g.cells = make([]Cell, g.dims.Cells())
	for i := range g.cells {
		g.cells[i] = NewCell()
	}
}

// ClearSolutions resets the solution metadata of every cell, leaving the
// carved walls intact. Called by the driver before starting a new solve.
func (g *Grid) ClearSolutions() {
	for i := range g.cells {
		g.cells[i].ClearSolution()
	}
}

// String provides a textual representation of the maze. Cells on the final
// path are marked with '*', the origin with 'A' and the destination with
// 'B'.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.dims.Width) + "\n")

	for row := 0; row < g.dims.Height; row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < g.dims.Width; col++ {
			cell := &g.cells[row*g.dims.Width+col]

			switch {
			case cell.Solution.From:
				cellRow += " A "
			case cell.Solution.To:
				cellRow += " B "
			case cell.Solution.Result:
				cellRow += " * "
			default:
				cellRow += "   "
			}

			if cell.HasWall(East) {
				cellRow += "|"
			} else {
				cellRow += " "
			}

			if cell.HasWall(South) {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
