package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/golabel/pkg/geometry"
)

func TestViewportFit(t *testing.T) {
	v := NewViewport(200, 100)
	v.Resize(400, 400)

	if v.Scale() != 2 {
		t.Errorf("Expected scale 2, got %f", v.Scale())
	}

	x, y, w, h := v.ImageRect()
	if x != 0 || y != 100 || w != 400 || h != 200 {
		t.Errorf("Unexpected image rect: %f %f %f %f", x, y, w, h)
	}
}

func TestViewportProjectRoundTrip(t *testing.T) {
	v := NewViewport(200, 100)
	v.Resize(400, 400)

	p := geometry.NewPoint(10, 10)
	x, y := v.Project(p)
	if x != 20 || y != 120 {
		t.Errorf("Expected (20, 120), got (%f, %f)", x, y)
	}

	back, inside := v.Unproject(x, y)
	if !inside || back != p {
		t.Errorf("Expected %v inside, got %v (inside=%v)", p, back, inside)
	}
}

func TestViewportUnprojectOutside(t *testing.T) {
	v := NewViewport(200, 100)
	v.Resize(400, 400)

	if _, inside := v.Unproject(20, 50); inside {
		t.Error("Expected point above the image to be outside")
	}
	if _, inside := v.Unproject(399, 299); !inside {
		t.Error("Expected bottom right corner to be inside")
	}
	if _, inside := v.Unproject(400, 200); inside {
		t.Error("Expected point right of the image to be outside")
	}
}

func TestViewportZoom(t *testing.T) {
	v := NewViewport(200, 100)
	v.Resize(400, 400)
	v.Zoom(1.0)

	if v.Scale() != 4 {
		t.Errorf("Expected scale 4, got %f", v.Scale())
	}
	x, y, _, _ := v.ImageRect()
	if x != -200 || y != 0 {
		t.Errorf("Expected image at (-200, 0), got (%f, %f)", x, y)
	}

	v.Zoom(-0.99)
	v.Zoom(-0.99)
	if math.Abs(v.Scale()-2*minZoom) > 1e-9 {
		t.Errorf("Expected zoom to clamp at %f, got scale %f", minZoom, v.Scale())
	}

	v.ResetZoom()
	if v.Scale() != 2 {
		t.Errorf("Expected scale 2 after reset, got %f", v.Scale())
	}
}

func TestViewportImageDistance(t *testing.T) {
	v := NewViewport(100, 100)
	v.Resize(50, 50)

	if d := v.ImageDistance(5); d != 10 {
		t.Errorf("Expected 10 image pixels, got %f", d)
	}
}

func TestViewportWithoutImage(t *testing.T) {
	v := NewViewport(0, 0)
	v.Resize(400, 400)

	if _, inside := v.Unproject(10, 10); inside {
		t.Error("Expected nothing to be inside an empty viewport")
	}
}
