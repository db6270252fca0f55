package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/golabel/pkg/geometry"
	"github.com/philipparndt/golabel/pkg/polygon"
)

// Style controls how labels are drawn
type Style struct {
	LineColor    color.RGBA
	VertexColor  color.RGBA
	TextColor    color.RGBA
	LineWidth    int
	VertexRadius int
	FillAlpha    uint8
	ShowNames    bool
}

// DefaultStyle returns the style used by the editor
func DefaultStyle() Style {
	return Style{
		LineColor:    color.RGBA{0, 200, 255, 255},
		VertexColor:  color.RGBA{255, 220, 0, 255},
		TextColor:    color.RGBA{255, 255, 255, 255},
		LineWidth:    2,
		VertexRadius: 3,
		FillAlpha:    64,
		ShowNames:    true,
	}
}

// Overlay returns a copy of base with every polygon drawn on top
func Overlay(base image.Image, polygons []*polygon.Polygon, style Style) *image.RGBA {
	bounds := base.Bounds()
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, base, bounds.Min, draw.Src)

	for _, p := range polygons {
		DrawPolygon(img, p.Vertices(), style)
		if style.ShowNames && p.Len() > 0 {
			drawName(img, p.Name(), p.Bounds().Min, style.TextColor)
		}
	}
	return img
}

// DrawPolygon draws a closed, filled polygon with its vertices
func DrawPolygon(img *image.RGBA, ring []geometry.Point, style Style) {
	fill := style.LineColor
	fill.A = style.FillAlpha
	fillPolygon(img, ring, premultiply(fill))

	if len(ring) > 2 {
		drawThickLine(img, ring[len(ring)-1], ring[0], style.LineWidth, style.LineColor)
	}
	DrawPath(img, ring, style)
}

// DrawPath draws an open path, as used for a polygon still being drawn.
// Vertices are drawn last so they stay visible on top of the edges.
func DrawPath(img *image.RGBA, points []geometry.Point, style Style) {
	for i := 0; i+1 < len(points); i++ {
		drawThickLine(img, points[i], points[i+1], style.LineWidth, style.LineColor)
	}
	for _, v := range points {
		drawDot(img, v, style.VertexRadius, style.VertexColor)
	}
}

// drawName writes text just above the given point, with a dark backing box
func drawName(img *image.RGBA, text string, at geometry.Point, col color.RGBA) {
	if text == "" {
		return
	}

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}

	width := d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	top := max(at.Y-height-2, img.Bounds().Min.Y)
	box := image.Rect(at.X, top, at.X+width+4, top+height+2)
	draw.Draw(img, box, image.NewUniform(color.RGBA{0, 0, 0, 160}), image.Point{}, draw.Over)

	d.Dot = fixed.Point26_6{
		X: fixed.I(at.X + 2),
		Y: fixed.I(top+1) + metrics.Ascent,
	}
	d.DrawString(text)
}

// premultiply converts a straight alpha colour into the premultiplied form
// color.RGBA expects
func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}
