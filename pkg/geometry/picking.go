package geometry

import "math"

// NearestVertex finds the vertex closest to p.
// It returns -1 if points is empty.
func NearestVertex(points []Point, p Point) (int, float64) {
	nearest := -1
	minDistance := math.MaxFloat64

	for i, vertex := range points {
		distance := p.Distance(vertex)
		if distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}

	return nearest, minDistance
}

// SegmentDistance returns the distance from p to the segment a-b
func SegmentDistance(p, a, b Point) float64 {
	abx := float64(b.X - a.X)
	aby := float64(b.Y - a.Y)
	lengthSq := abx*abx + aby*aby
	if lengthSq == 0 {
		return p.Distance(a)
	}

	// Project p onto the segment, clamped to its endpoints
	t := (float64(p.X-a.X)*abx + float64(p.Y-a.Y)*aby) / lengthSq
	t = math.Max(0, math.Min(1, t))

	dx := float64(a.X) + t*abx - float64(p.X)
	dy := float64(a.Y) + t*aby - float64(p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// NearestEdge finds the edge closest to p. Edge i joins points[i] and points[i+1];
// when closed is set the last edge joins the final point back to the first.
// It returns -1 if there is no edge.
func NearestEdge(points []Point, p Point, closed bool) (int, float64) {
	edges := len(points) - 1
	if closed && len(points) > 2 {
		edges = len(points)
	}

	nearest := -1
	minDistance := math.MaxFloat64
	for i := 0; i < edges; i++ {
		distance := SegmentDistance(p, points[i], points[(i+1)%len(points)])
		if distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}

	return nearest, minDistance
}
