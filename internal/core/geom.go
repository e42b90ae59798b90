// Package core provides fundamental types and utilities for the mindflex
// games. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

// Rect represents an axis-aligned area on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Cursor is a selection position on a rows x cols grid.
type Cursor struct {
	Row, Col   int
	Rows, Cols int
}

// NewCursor returns a cursor at the top-left cell of a grid.
func NewCursor(rows, cols int) Cursor {
	return Cursor{Rows: rows, Cols: cols}
}

// Index returns the row-major cell index under the cursor.
func (c Cursor) Index() int {
	return c.Row*c.Cols + c.Col
}

// SetIndex moves the cursor to a row-major cell index.
func (c *Cursor) SetIndex(i int) {
	if c.Cols <= 0 {
		return
	}
	i = Clamp(i, 0, c.Rows*c.Cols-1)
	c.Row, c.Col = i/c.Cols, i%c.Cols
}

// Move steps the cursor for a direction action, wrapping at the edges.
// Non-direction actions are ignored. Returns true if the action was a
// direction.
func (c *Cursor) Move(a Action) bool {
	if c.Rows <= 0 || c.Cols <= 0 {
		return false
	}
	switch a {
	case ActionUp:
		c.Row = (c.Row - 1 + c.Rows) % c.Rows
	case ActionDown:
		c.Row = (c.Row + 1) % c.Rows
	case ActionLeft:
		c.Col = (c.Col - 1 + c.Cols) % c.Cols
	case ActionRight:
		c.Col = (c.Col + 1) % c.Cols
	default:
		return false
	}
	return true
}

// Resize changes the grid size, keeping the cursor inside it.
func (c *Cursor) Resize(rows, cols int) {
	c.Rows, c.Cols = rows, cols
	c.Row = Clamp(c.Row, 0, max(rows-1, 0))
	c.Col = Clamp(c.Col, 0, max(cols-1, 0))
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
