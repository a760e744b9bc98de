package surface

// Cursor is the overlay that follows the pointer. Its position is the
// pointer's; it is painted centred on that point.
type Cursor struct {
	Size float64
	pos  Point
}

// MoveTo records the pointer position and returns the overlay's top-left
// corner.
func (c *Cursor) MoveTo(p Point) Point {
	c.pos = p
	return c.TopLeft()
}

// TopLeft is the pointer position shifted by half the overlay's size.
func (c Cursor) TopLeft() Point {
	half := c.Size / 2
	return Point{X: c.pos.X - half, Y: c.pos.Y - half}
}
