package polygon

import "github.com/philipparndt/golabel/pkg/geometry"

// Bounds returns the bounding box of the active vertices
func (p *Polygon) Bounds() geometry.BoundingBox {
	return geometry.BoundsOf(p.buffer[:p.cursor+1])
}

// Area returns the enclosed area of the closed polygon
func (p *Polygon) Area() float64 {
	return geometry.Area(p.buffer[:p.cursor+1])
}

// Contains reports whether pt lies inside the closed polygon
func (p *Polygon) Contains(pt geometry.Point) bool {
	return geometry.Contains(p.buffer[:p.cursor+1], pt)
}

// NearestVertex returns the active vertex closest to pt and its distance.
// ok is false when there are no active vertices.
func (p *Polygon) NearestVertex(pt geometry.Point) (v geometry.Point, distance float64, ok bool) {
	idx, distance := geometry.NearestVertex(p.buffer[:p.cursor+1], pt)
	if idx < 0 {
		return geometry.Point{}, 0, false
	}
	return p.buffer[idx], distance, true
}

// NearestEdge returns the index of the edge closest to pt and its distance.
// Edge i ends at vertex i+1, so inserting at i+1 subdivides it. The closing
// edge is included when closed is set. The index is -1 if there is no edge.
func (p *Polygon) NearestEdge(pt geometry.Point, closed bool) (int, float64) {
	return geometry.NearestEdge(p.buffer[:p.cursor+1], pt, closed)
}
