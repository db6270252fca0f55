package geometry

import "math"

// Area returns the area enclosed by the closed ring of points (shoelace formula)
func Area(ring []Point) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0
	for i := range ring {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(float64(sum)) / 2
}

// Perimeter returns the length of the closed ring
func Perimeter(ring []Point) float64 {
	if len(ring) < 2 {
		return 0
	}
	total := 0.0
	for i := range ring {
		total += ring[i].Distance(ring[(i+1)%len(ring)])
	}
	return total
}

// Contains reports whether p lies inside the closed ring (even-odd rule)
func Contains(ring []Point, p Point) bool {
	if len(ring) < 3 {
		return false
	}
	inside := false
	px, py := float64(p.X), float64(p.Y)
	j := len(ring) - 1
	for i := range ring {
		xi, yi := float64(ring[i].X), float64(ring[i].Y)
		xj, yj := float64(ring[j].X), float64(ring[j].Y)
		if (yi > py) != (yj > py) {
			crossX := xi + (py-yi)*(xj-xi)/(yj-yi)
			if px < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
