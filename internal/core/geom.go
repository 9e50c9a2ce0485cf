// Package core provides the frontend-neutral pieces shared by the engine and
// its frontends: the cell buffer, colors, actions and key bindings.
package core

// Rect is an area on the screen grid, [X, X+W) by [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) with the given size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
