package geometry

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(3, 4)
	distance := p1.Distance(p2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestPointEquality(t *testing.T) {
	seen := map[Point]bool{NewPoint(10, 20): true}
	if !seen[Point{X: 10, Y: 20}] {
		t.Errorf("Points with equal coordinates should be equal map keys")
	}
	if NewPoint(1, 2) == NewPoint(2, 1) {
		t.Errorf("Points with swapped coordinates should differ")
	}
}

func TestPointAddSub(t *testing.T) {
	p := NewPoint(5, 7).Sub(NewPoint(1, 2)).Add(NewPoint(10, 10))

	expected := NewPoint(14, 15)
	if p != expected {
		t.Errorf("Add/Sub failed: expected %v, got %v", expected, p)
	}
}

func TestPointScale(t *testing.T) {
	p := NewPoint(10, 15).Scale(0.5)

	expected := NewPoint(5, 8)
	if p != expected {
		t.Errorf("Scale failed: expected %v, got %v", expected, p)
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]Point{{5, 0}, {0, 5}, {5, 5}, {0, 0}})

	if b.Min != NewPoint(0, 0) || b.Max != NewPoint(5, 5) {
		t.Errorf("BoundsOf failed: got min %v max %v", b.Min, b.Max)
	}
	if b.Width() != 5 || b.Height() != 5 {
		t.Errorf("Size failed: got %dx%d", b.Width(), b.Height())
	}
	if b.Center() != NewPoint(2, 2) {
		t.Errorf("Center failed: got %v", b.Center())
	}
}

func TestBoundsEmpty(t *testing.T) {
	b := BoundsOf(nil)
	if !b.IsEmpty() {
		t.Errorf("Expected empty bounding box")
	}
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("Empty box should have zero size")
	}
}

func TestBoundsZeroValueIsEmpty(t *testing.T) {
	var b BoundingBox
	if !b.IsEmpty() {
		t.Errorf("Expected zero value bounding box to be empty")
	}

	b.Extend(NewPoint(-3, 7))
	if b.IsEmpty() {
		t.Errorf("Expected box to be non-empty after Extend")
	}
	if b.Min != NewPoint(-3, 7) || b.Max != NewPoint(-3, 7) {
		t.Errorf("Expected single point box, got min %v max %v", b.Min, b.Max)
	}
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("Single point box should have zero size, got %dx%d", b.Width(), b.Height())
	}
}
