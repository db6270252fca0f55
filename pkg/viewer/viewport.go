package viewer

import (
	"math"

	"github.com/philipparndt/golabel/pkg/geometry"
)

const (
	minZoom = 0.1
	maxZoom = 20.0
)

// Viewport maps image pixels to widget coordinates. The image is scaled to
// fit the widget, multiplied by the zoom factor, and centered.
type Viewport struct {
	imageWidth  int
	imageHeight int
	width       float64
	height      float64
	zoom        float64
	scale       float64
	offsetX     float64
	offsetY     float64
}

// NewViewport creates a viewport for an image of the given size
func NewViewport(imageWidth, imageHeight int) *Viewport {
	v := &Viewport{zoom: 1}
	v.SetImageSize(imageWidth, imageHeight)
	return v
}

// SetImageSize changes the image size and resets the zoom
func (v *Viewport) SetImageSize(imageWidth, imageHeight int) {
	v.imageWidth = imageWidth
	v.imageHeight = imageHeight
	v.zoom = 1
	v.update()
}

// Resize sets the size of the widget showing the image
func (v *Viewport) Resize(width, height float64) {
	v.width = width
	v.height = height
	v.update()
}

// Zoom changes the zoom factor by delta (0.1 means 10% larger)
func (v *Viewport) Zoom(delta float64) {
	v.zoom *= 1.0 + delta
	v.zoom = math.Max(minZoom, math.Min(maxZoom, v.zoom))
	v.update()
}

// ResetZoom returns to the fitted view
func (v *Viewport) ResetZoom() {
	v.zoom = 1
	v.update()
}

// Scale returns the number of widget units per image pixel
func (v *Viewport) Scale() float64 {
	return v.scale
}

// ImageRect returns the position and size of the image in widget coordinates
func (v *Viewport) ImageRect() (x, y, width, height float64) {
	return v.offsetX, v.offsetY, float64(v.imageWidth) * v.scale, float64(v.imageHeight) * v.scale
}

// Project converts an image pixel to widget coordinates
func (v *Viewport) Project(p geometry.Point) (float64, float64) {
	return v.offsetX + float64(p.X)*v.scale, v.offsetY + float64(p.Y)*v.scale
}

// Unproject converts widget coordinates to the image pixel under them.
// The second result is false when the position is outside the image.
func (v *Viewport) Unproject(x, y float64) (geometry.Point, bool) {
	if v.scale == 0 {
		return geometry.Point{}, false
	}

	px := int(math.Floor((x - v.offsetX) / v.scale))
	py := int(math.Floor((y - v.offsetY) / v.scale))
	inside := px >= 0 && py >= 0 && px < v.imageWidth && py < v.imageHeight
	return geometry.NewPoint(px, py), inside
}

// ImageDistance converts a distance in widget units to image pixels
func (v *Viewport) ImageDistance(d float64) float64 {
	if v.scale == 0 {
		return d
	}
	return d / v.scale
}

func (v *Viewport) update() {
	if v.imageWidth <= 0 || v.imageHeight <= 0 || v.width <= 0 || v.height <= 0 {
		v.scale = 0
		v.offsetX, v.offsetY = 0, 0
		return
	}

	fit := math.Min(v.width/float64(v.imageWidth), v.height/float64(v.imageHeight))
	v.scale = fit * v.zoom
	v.offsetX = (v.width - float64(v.imageWidth)*v.scale) / 2
	v.offsetY = (v.height - float64(v.imageHeight)*v.scale) / 2
}
