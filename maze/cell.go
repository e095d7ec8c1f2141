package maze

// Sentinel values for optional cell metadata.
const (
	// NoWalk marks a cell no generator walk has reached yet.
	NoWalk = -1

	// NoPrevious marks a cell with no recorded back-pointer.
	NoPrevious = -1
)

// Solution holds the per-cell pathfinding metadata. It is mutated only by
// solvers; generators never touch it.
type Solution struct {
	From     bool // From indicates the cell is the search origin.
	To       bool // To indicates the cell is the search destination.
	Previous int  // Previous is the back-pointer to the prior cell on the explored path, or NoPrevious.
	Result   bool // Result indicates the cell lies on the final reported path.
}

// HasPrevious returns true if a back-pointer has been recorded.
func (s *Solution) HasPrevious() bool {
	return s.Previous != NoPrevious
}

// Cell represents a single position in a maze grid: a four-bit wall mask,
// the generation-time walk tag, and the solution metadata.
type Cell struct {
	walls uint8
	walk  int

	Solution Solution
}

// NewCell returns a fully walled cell with no walk tag and no solution
// metadata, the initial state of every grid position.
func NewCell() Cell {
	var walls uint8
	for _, d := range Directions {
		walls |= uint8(d)
	}
	return Cell{
		walls: walls,
		walk:  NoWalk,
		Solution: Solution{
			Previous: NoPrevious,
		},
	}
}

// HasWall returns true if the wall in direction d is present.
func (c *Cell) HasWall(d Direction) bool {
	return c.walls&uint8(d) != 0
}

// RemoveWall removes the wall in direction d.
func (c *Cell) RemoveWall(d Direction) {
	c.walls &^= uint8(d)
}

// Walls returns the raw wall mask.
func (c *Cell) Walls() uint8 {
	return c.walls
}

// Visited returns true if any generator walk has tagged the cell.
func (c *Cell) Visited() bool {
	return c.walk != NoWalk
}

// Walk returns the walk tag, or NoWalk.
func (c *Cell) Walk() int {
	return c.walk
}

// SetWalk tags the cell as belonging to the given walk.
func (c *Cell) SetWalk(walk int) {
	c.walk = walk
}

// ClearWalk removes the walk tag. Used during loop erasure.
func (c *Cell) ClearWalk() {
	c.walk = NoWalk
}

// ClearSolution resets all solution metadata, leaving walls and the walk
// tag untouched.
func (c *Cell) ClearSolution() {
	c.Solution = Solution{Previous: NoPrevious}
}
