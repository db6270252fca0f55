package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"github.com/philipparndt/golabel/pkg/geometry"
)

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if (image.Point{X: x1, Y: y1}).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawThickLine draws a line of the given width by stamping squares along it
func drawThickLine(img *image.RGBA, a, b geometry.Point, width int, col color.RGBA) {
	if width <= 1 {
		drawLine(img, a.X, a.Y, b.X, b.Y, col)
		return
	}

	half := width / 2
	for o := -half; o < width-half; o++ {
		if abs(b.X-a.X) > abs(b.Y-a.Y) {
			drawLine(img, a.X, a.Y+o, b.X, b.Y+o, col)
		} else {
			drawLine(img, a.X+o, a.Y, b.X+o, b.Y, col)
		}
	}
}

// fillPolygon fills a closed ring using a scanline with the even-odd rule,
// blending col over the existing pixels
func fillPolygon(img *image.RGBA, ring []geometry.Point, col color.RGBA) {
	if len(ring) < 3 || col.A == 0 {
		return
	}

	bounds := img.Bounds()
	box := geometry.BoundsOf(ring)
	yStart := max(box.Min.Y, bounds.Min.Y)
	yEnd := min(box.Max.Y, bounds.Max.Y-1)

	src := image.NewUniform(col)
	intersections := make([]float64, 0, len(ring))

	for y := yStart; y <= yEnd; y++ {
		// Sample at the pixel center
		fy := float64(y) + 0.5
		intersections = intersections[:0]

		j := len(ring) - 1
		for i := range ring {
			yi, yj := float64(ring[i].Y), float64(ring[j].Y)
			if (yi > fy) != (yj > fy) {
				xi, xj := float64(ring[i].X), float64(ring[j].X)
				intersections = append(intersections, xi+(fy-yi)*(xj-xi)/(yj-yi))
			}
			j = i
		}
		sort.Float64s(intersections)

		for k := 0; k+1 < len(intersections); k += 2 {
			xStart := max(int(math.Ceil(intersections[k]-0.5)), bounds.Min.X)
			xEnd := min(int(math.Floor(intersections[k+1]-0.5)), bounds.Max.X-1)
			if xStart > xEnd {
				continue
			}
			span := image.Rect(xStart, y, xEnd+1, y+1)
			draw.Draw(img, span, src, image.Point{}, draw.Over)
		}
	}
}

// drawDot draws a filled circle around center
func drawDot(img *image.RGBA, center geometry.Point, radius int, col color.RGBA) {
	if radius <= 0 {
		if (image.Point{X: center.X, Y: center.Y}).In(img.Bounds()) {
			img.SetRGBA(center.X, center.Y, col)
		}
		return
	}

	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			p := image.Point{X: center.X + dx, Y: center.Y + dy}
			if p.In(img.Bounds()) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
