package geometry

// BoundingBox represents an axis-aligned bounding box.
// The zero value is an empty box.
type BoundingBox struct {
	Min   Point
	Max   Point
	valid bool
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{}
}

// BoundsOf returns the bounding box of the given points
func BoundsOf(points []Point) BoundingBox {
	b := NewBoundingBox()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(p Point) {
	if !b.valid {
		b.Min, b.Max = p, p
		b.valid = true
		return
	}
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
}

// IsEmpty reports whether no point was ever added
func (b BoundingBox) IsEmpty() bool {
	return !b.valid
}

// Width returns the horizontal extent
func (b BoundingBox) Width() int {
	if !b.valid {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent
func (b BoundingBox) Height() int {
	if !b.valid {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
	}
}
