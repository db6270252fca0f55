package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/golabel/pkg/geometry"
	"github.com/philipparndt/golabel/pkg/polygon"
)

func blank(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func TestDrawLine(t *testing.T) {
	img := blank(10, 10)
	red := color.RGBA{255, 0, 0, 255}

	drawLine(img, 0, 0, 9, 9, red)
	for i := 0; i < 10; i++ {
		assert.Equal(t, red, img.RGBAAt(i, i))
	}
	assert.NotEqual(t, red, img.RGBAAt(0, 9))
}

func TestDrawLineClipsOutside(t *testing.T) {
	img := blank(5, 5)
	red := color.RGBA{255, 0, 0, 255}

	assert.NotPanics(t, func() { drawLine(img, -10, 2, 20, 2, red) })
	assert.Equal(t, red, img.RGBAAt(0, 2))
	assert.Equal(t, red, img.RGBAAt(4, 2))
}

func TestFillPolygon(t *testing.T) {
	img := blank(20, 20)
	ring := []geometry.Point{{X: 2, Y: 2}, {X: 2, Y: 12}, {X: 12, Y: 12}, {X: 12, Y: 2}}
	green := color.RGBA{0, 255, 0, 255}

	fillPolygon(img, ring, green)
	assert.Equal(t, green, img.RGBAAt(6, 6))
	assert.NotEqual(t, green, img.RGBAAt(15, 15))
	assert.NotEqual(t, green, img.RGBAAt(1, 6))
}

func TestDrawDot(t *testing.T) {
	img := blank(10, 10)
	blue := color.RGBA{0, 0, 255, 255}

	drawDot(img, geometry.NewPoint(5, 5), 2, blue)
	assert.Equal(t, blue, img.RGBAAt(5, 5))
	assert.Equal(t, blue, img.RGBAAt(7, 5))
	assert.NotEqual(t, blue, img.RGBAAt(7, 7))
}

func TestOverlay(t *testing.T) {
	base := blank(40, 40)
	box := polygon.NewNamed("box",
		geometry.NewPoint(5, 20),
		geometry.NewPoint(5, 35),
		geometry.NewPoint(35, 35),
		geometry.NewPoint(35, 20),
	)
	style := DefaultStyle()

	out := Overlay(base, []*polygon.Polygon{box}, style)

	assert.Equal(t, base.Bounds(), out.Bounds())
	assert.Equal(t, style.VertexColor, out.RGBAAt(5, 20))
	assert.NotEqual(t, color.RGBA{255, 255, 255, 255}, out.RGBAAt(20, 28), "interior should be tinted")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, base.RGBAAt(20, 28), "base must not be modified")
}

func TestPremultiply(t *testing.T) {
	c := premultiply(color.RGBA{255, 128, 0, 128})
	assert.Equal(t, uint8(128), c.R)
	assert.Equal(t, uint8(64), c.G)
	assert.Equal(t, uint8(0), c.B)
}
