// Package grid provides a dense two-dimensional grid stored in a single
// row-major buffer. The grid grows explicitly and never shrinks.
package grid

import (
	"fmt"
	"iter"
)

type Grid[T any] struct {
	cells  []T
	width  int
	height int
}

func New[T any](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", width, height))
	}
	return &Grid[T]{
		cells:  make([]T, width*height),
		width:  width,
		height: height,
	}
}

func (g *Grid[T]) Dims() (width, height int) {
	return g.width, g.height
}

func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Grow resizes the grid to at least width x height, copying existing cells
// to their coordinates in the new buffer. New cells hold the zero value.
func (g *Grid[T]) Grow(width, height int) {
	width, height = max(width, g.width), max(height, g.height)
	if width == g.width && height == g.height {
		return
	}

	cells := make([]T, width*height)
	for y := range g.height {
		copy(cells[y*width:y*width+g.width], g.cells[y*g.width:(y+1)*g.width])
	}

	g.cells, g.width, g.height = cells, width, height
}

func (g *Grid[T]) At(x, y int) T {
	return g.cells[g.index(x, y)]
}

func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.index(x, y)] = v
}

// Ptr returns a pointer to the cell at (x, y). It is valid until the next Grow.
func (g *Grid[T]) Ptr(x, y int) *T {
	return &g.cells[g.index(x, y)]
}

// Values yields every cell in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

func (g *Grid[T]) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: coordinates (%d, %d) exceed dimensions %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}
