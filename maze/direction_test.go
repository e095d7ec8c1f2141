package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionTurns(t *testing.T) {
	t.Run("Next cycles clockwise", func(t *testing.T) {
		assert.Equal(t, East, North.Next())
		assert.Equal(t, South, East.Next())
		assert.Equal(t, West, South.Next())
		assert.Equal(t, North, West.Next())
	})

	t.Run("Prev cycles counterclockwise", func(t *testing.T) {
		assert.Equal(t, West, North.Prev())
		assert.Equal(t, North, East.Prev())
		assert.Equal(t, East, South.Prev())
		assert.Equal(t, South, West.Prev())
	})

	t.Run("Prev undoes Next", func(t *testing.T) {
		for _, d := range Directions {
			assert.Equal(t, d, d.Next().Prev())
		}
	})

	t.Run("Opposite is an involution", func(t *testing.T) {
		assert.Equal(t, South, North.Opposite())
		assert.Equal(t, West, East.Opposite())
		for _, d := range Directions {
			assert.Equal(t, d, d.Opposite().Opposite())
		}
	})
}

func TestNeighbour(t *testing.T) {
	dims := Dimensions{Width: 4, Height: 3}

	t.Run("Interior cell has all four neighbours", func(t *testing.T) {
		cell := 5 // row 1, col 1

		n, ok := North.Neighbour(dims, cell)
		assert.True(t, ok)
		assert.Equal(t, 1, n)

		n, ok = East.Neighbour(dims, cell)
		assert.True(t, ok)
		assert.Equal(t, 6, n)

		n, ok = South.Neighbour(dims, cell)
		assert.True(t, ok)
		assert.Equal(t, 9, n)

		n, ok = West.Neighbour(dims, cell)
		assert.True(t, ok)
		assert.Equal(t, 4, n)
	})

	t.Run("Top-left corner", func(t *testing.T) {
		_, ok := North.Neighbour(dims, 0)
		assert.False(t, ok)
		_, ok = West.Neighbour(dims, 0)
		assert.False(t, ok)
		n, ok := East.Neighbour(dims, 0)
		assert.True(t, ok)
		assert.Equal(t, 1, n)
		n, ok = South.Neighbour(dims, 0)
		assert.True(t, ok)
		assert.Equal(t, 4, n)
	})

	t.Run("Top-right corner", func(t *testing.T) {
		_, ok := North.Neighbour(dims, 3)
		assert.False(t, ok)
		_, ok = East.Neighbour(dims, 3)
		assert.False(t, ok)
	})

	t.Run("Bottom-left corner", func(t *testing.T) {
		_, ok := South.Neighbour(dims, 8)
		assert.False(t, ok)
		_, ok = West.Neighbour(dims, 8)
		assert.False(t, ok)
	})

	t.Run("Bottom-right corner", func(t *testing.T) {
		_, ok := South.Neighbour(dims, 11)
		assert.False(t, ok)
		_, ok = East.Neighbour(dims, 11)
		assert.False(t, ok)
		n, ok := North.Neighbour(dims, 11)
		assert.True(t, ok)
		assert.Equal(t, 7, n)
	})

	t.Run("East never wraps across a row boundary", func(t *testing.T) {
		// cells 3 and 4 are consecutive indexes but on different rows
		_, ok := East.Neighbour(dims, 3)
		assert.False(t, ok)
		_, ok = West.Neighbour(dims, 4)
		assert.False(t, ok)
	})
}

func TestBetween(t *testing.T) {
	dims := Dimensions{Width: 4, Height: 3}

	t.Run("Round-trips with Neighbour", func(t *testing.T) {
		for cell := 0; cell < dims.Cells(); cell++ {
			for _, d := range Directions {
				neighbour, ok := d.Neighbour(dims, cell)
				if !ok {
					continue
				}
				got, ok := Between(dims, cell, neighbour)
				assert.True(t, ok)
				assert.Equal(t, d, got)
			}
		}
	})

	t.Run("Rejects non-adjacent cells", func(t *testing.T) {
		_, ok := Between(dims, 0, 5)
		assert.False(t, ok)
		_, ok = Between(dims, 0, 0)
		assert.False(t, ok)
	})

	t.Run("Rejects consecutive indexes on different rows", func(t *testing.T) {
		_, ok := Between(dims, 3, 4)
		assert.False(t, ok)
		_, ok = Between(dims, 4, 3)
		assert.False(t, ok)
	})
}
