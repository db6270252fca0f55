package geometry

import (
	"math"
	"testing"
)

var square = []Point{{0, 0}, {0, 5}, {5, 5}, {5, 0}}

func TestArea(t *testing.T) {
	area := Area(square)

	expected := 25.0
	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}

	if Area(square[:2]) != 0 {
		t.Errorf("Area of a line should be zero")
	}
}

func TestPerimeter(t *testing.T) {
	perimeter := Perimeter(square)

	expected := 20.0
	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestContains(t *testing.T) {
	if !Contains(square, NewPoint(2, 2)) {
		t.Errorf("Expected (2, 2) inside square")
	}
	if Contains(square, NewPoint(6, 2)) {
		t.Errorf("Expected (6, 2) outside square")
	}
	if Contains(square[:2], NewPoint(0, 1)) {
		t.Errorf("Degenerate ring should contain nothing")
	}
}

func TestNearestVertex(t *testing.T) {
	idx, dist := NearestVertex(square, NewPoint(4, 6))
	if idx != 2 {
		t.Errorf("NearestVertex failed: expected index 2, got %d", idx)
	}
	if math.Abs(dist-math.Sqrt2) > 1e-10 {
		t.Errorf("NearestVertex distance failed: got %v", dist)
	}

	if idx, _ := NearestVertex(nil, NewPoint(0, 0)); idx != -1 {
		t.Errorf("Expected -1 for no vertices, got %d", idx)
	}
}

func TestSegmentDistance(t *testing.T) {
	a, b := NewPoint(0, 0), NewPoint(10, 0)

	if d := SegmentDistance(NewPoint(5, 3), a, b); math.Abs(d-3) > 1e-10 {
		t.Errorf("Expected perpendicular distance 3, got %v", d)
	}
	if d := SegmentDistance(NewPoint(13, 4), a, b); math.Abs(d-5) > 1e-10 {
		t.Errorf("Expected endpoint distance 5, got %v", d)
	}
	if d := SegmentDistance(NewPoint(3, 4), a, a); math.Abs(d-5) > 1e-10 {
		t.Errorf("Expected degenerate segment distance 5, got %v", d)
	}
}

func TestNearestEdge(t *testing.T) {
	// Closing edge (5,0)->(0,0) is nearest to (2,-1)
	idx, _ := NearestEdge(square, NewPoint(2, -1), true)
	if idx != 3 {
		t.Errorf("Expected closing edge 3, got %d", idx)
	}

	// Without closing, the closing edge is not considered
	idx, _ = NearestEdge(square, NewPoint(2, -1), false)
	if idx == 3 {
		t.Errorf("Open path must not report the closing edge")
	}

	if idx, _ := NearestEdge(square[:1], NewPoint(0, 0), true); idx != -1 {
		t.Errorf("Single point has no edges, got %d", idx)
	}
}
