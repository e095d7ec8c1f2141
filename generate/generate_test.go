package generate

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/maze-lab/maze"
	"github.com/stretchr/testify/assert"
)

// runToCompletion drives a generator until Step reports false, with a cap so
// a broken generator cannot hang the test.
func runToCompletion(t *testing.T, g Generator, grid *maze.Grid) int {
	t.Helper()

	limit := 100 * grid.Dimensions().Cells()
	steps := 0
	for g.Step(grid.Dimensions(), grid.Cells()) {
		steps++
		if steps > limit {
			t.Fatalf("generator did not finish within %d steps", limit)
		}
	}
	return steps
}

// countPassages counts the carved passages of the maze, each shared wall
// opening counted once.
func countPassages(t *testing.T, grid *maze.Grid) int {
	t.Helper()

	dims := grid.Dimensions()
	cells := grid.Cells()
	passages := 0
	for cell := range cells {
		for _, direction := range []maze.Direction{maze.East, maze.South} {
			neighbour, ok := direction.Neighbour(dims, cell)
			if !ok {
				continue
			}
			if !cells[cell].HasWall(direction) {
				// both sides of a carved wall must agree
				assert.False(t, cells[neighbour].HasWall(direction.Opposite()))
				passages++
			}
		}
	}
	return passages
}

// reachableFrom walks the carved passages from cell 0 and returns how many
// cells it can reach.
func reachableFrom(grid *maze.Grid) int {
	dims := grid.Dimensions()
	cells := grid.Cells()
	seen := make([]bool, len(cells))
	queue := []int{0}
	seen[0] = true
	reached := 0
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		reached++
		for _, direction := range maze.Directions {
			neighbour, ok := direction.Neighbour(dims, cell)
			if !ok || cells[cell].HasWall(direction) || seen[neighbour] {
				continue
			}
			seen[neighbour] = true
			queue = append(queue, neighbour)
		}
	}
	return reached
}

func TestGeneratorsProduceSpanningTrees(t *testing.T) {
	sizes := []maze.Dimensions{
		{Width: 2, Height: 2},
		{Width: 5, Height: 4},
		{Width: 10, Height: 10},
	}

	for name, construct := range Registry {
		for _, dims := range sizes {
			t.Run(fmt.Sprintf("%s %dx%d", name, dims.Width, dims.Height), func(t *testing.T) {
				rng := rand.New(rand.NewSource(42))
				g := construct(rng)
				grid := maze.NewGrid(dims)

				runToCompletion(t, g, grid)

				// a spanning tree over N cells has exactly N-1 edges and
				// reaches every cell
				assert.Equal(t, dims.Cells()-1, countPassages(t, grid))
				assert.Equal(t, dims.Cells(), reachableFrom(grid))

				for _, cell := range grid.Cells() {
					assert.True(t, cell.Visited())
				}
			})
		}
	}
}

func TestGeneratorRestarts(t *testing.T) {
	for name, construct := range Registry {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			g := construct(rng)
			grid := maze.NewGrid(maze.Dimensions{Width: 4, Height: 4})

			runToCompletion(t, g, grid)

			// the completing call reset the generator, so the same instance
			// must carve a fresh grid from scratch
			grid.Reset()
			runToCompletion(t, g, grid)

			assert.Equal(t, grid.Dimensions().Cells()-1, countPassages(t, grid))
			assert.Equal(t, grid.Dimensions().Cells(), reachableFrom(grid))
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()

	assert.Equal(t, []string{
		"Randomised depth first search algorithm",
		"Wilson's algorithm",
	}, names)
}
