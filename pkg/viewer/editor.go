package viewer

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/golabel/pkg/geometry"
	"github.com/philipparndt/golabel/pkg/polygon"
	"github.com/philipparndt/golabel/pkg/render"
)

// LabelEditor shows an image with its labels and reports pointer input in
// image coordinates. It holds no editing state of its own: the owner pushes
// labels and the active outline in, and reacts to the callbacks.
type LabelEditor struct {
	widget.BaseWidget
	viewport   *Viewport
	picture    *canvas.Image
	style      render.Style
	pickRadius float64

	labels       []*polygon.Polygon
	hidden       string
	selected     string
	active       []geometry.Point
	activeClosed bool

	grabbed    geometry.Point
	isGrabbing bool
	isDragging bool

	// OnTapped is called with the image pixel under a primary click
	OnTapped func(p geometry.Point)
	// OnSecondaryTapped is called with the image pixel under a secondary click
	OnSecondaryTapped func(p geometry.Point)
	// OnVertexMoved is called while an active vertex is dragged and reports
	// whether the move was accepted
	OnVertexMoved func(old, moved geometry.Point) bool
}

// NewLabelEditor creates an empty editor. pickRadius is the distance in
// widget units within which a drag grabs a vertex.
func NewLabelEditor(style render.Style, pickRadius float64) *LabelEditor {
	e := &LabelEditor{
		viewport:   NewViewport(0, 0),
		style:      style,
		pickRadius: pickRadius,
	}
	e.ExtendBaseWidget(e)
	return e
}

// SetImage shows img, which may be a downscaled copy of an image of the
// given original size. Label coordinates always refer to the original size.
func (e *LabelEditor) SetImage(img image.Image, width, height int) {
	if img == nil {
		e.picture = nil
		e.viewport.SetImageSize(0, 0)
	} else {
		e.picture = canvas.NewImageFromImage(img)
		e.picture.FillMode = canvas.ImageFillStretch
		e.viewport.SetImageSize(width, height)
	}
	e.Refresh()
}

// SetLabels replaces the committed labels shown. The label named hidden is
// skipped because it is shown as the active outline.
func (e *LabelEditor) SetLabels(labels []*polygon.Polygon, hidden string) {
	e.labels = labels
	e.hidden = hidden
	e.Refresh()
}

// SetActive sets the outline being drawn or edited. closed draws the edge
// from the last vertex back to the first.
func (e *LabelEditor) SetActive(points []geometry.Point, closed bool) {
	e.active = points
	e.activeClosed = closed
	e.Refresh()
}

// SetSelected highlights the named label
func (e *LabelEditor) SetSelected(name string) {
	e.selected = name
	e.Refresh()
}

// ImageDistance converts a distance in widget units to image pixels at the
// current zoom
func (e *LabelEditor) ImageDistance(d float64) float64 {
	return e.viewport.ImageDistance(d)
}

// ResetZoom fits the image into the widget again
func (e *LabelEditor) ResetZoom() {
	e.viewport.ResetZoom()
	e.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (e *LabelEditor) CreateRenderer() fyne.WidgetRenderer {
	return &editorRenderer{editor: e}
}

// Tapped handles primary clicks
func (e *LabelEditor) Tapped(event *fyne.PointEvent) {
	if e.isDragging || e.OnTapped == nil {
		return
	}
	if p, inside := e.toImage(event.Position); inside {
		e.OnTapped(p)
	}
}

// TappedSecondary handles secondary clicks
func (e *LabelEditor) TappedSecondary(event *fyne.PointEvent) {
	if e.OnSecondaryTapped == nil {
		return
	}
	p, _ := e.toImage(event.Position)
	e.OnSecondaryTapped(p)
}

// Dragged moves the active vertex nearest to where the drag started
func (e *LabelEditor) Dragged(event *fyne.DragEvent) {
	if !e.isDragging {
		e.isDragging = true
		start := event.Position.Subtract(event.Dragged)
		e.grabbed, e.isGrabbing = e.grab(start)
	}
	if !e.isGrabbing || e.OnVertexMoved == nil {
		return
	}

	target, inside := e.toImage(event.Position)
	if !inside || target == e.grabbed {
		return
	}
	if e.OnVertexMoved(e.grabbed, target) {
		e.grabbed = target
	}
}

// DragEnd releases the grabbed vertex
func (e *LabelEditor) DragEnd() {
	e.isDragging = false
	e.isGrabbing = false
}

// Scrolled zooms the image
func (e *LabelEditor) Scrolled(event *fyne.ScrollEvent) {
	e.viewport.Zoom(float64(event.Scrolled.DY) * 0.001)
	e.Refresh()
}

// grab finds the active vertex within the pick radius of a widget position
func (e *LabelEditor) grab(pos fyne.Position) (geometry.Point, bool) {
	p, _ := e.toImage(pos)
	index, distance := geometry.NearestVertex(e.active, p)
	if index < 0 || distance > e.viewport.ImageDistance(e.pickRadius) {
		return geometry.Point{}, false
	}
	return e.active[index], true
}

func (e *LabelEditor) toImage(pos fyne.Position) (geometry.Point, bool) {
	return e.viewport.Unproject(float64(pos.X), float64(pos.Y))
}

func (e *LabelEditor) toWidget(p geometry.Point) fyne.Position {
	x, y := e.viewport.Project(p)
	return fyne.NewPos(float32(x), float32(y))
}

// buildObjects lays out the picture and creates the outline shapes
func (e *LabelEditor) buildObjects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0)

	if e.picture != nil {
		x, y, w, h := e.viewport.ImageRect()
		e.picture.Move(fyne.NewPos(float32(x), float32(y)))
		e.picture.Resize(fyne.NewSize(float32(w), float32(h)))
		objects = append(objects, e.picture)
	}

	for _, p := range e.labels {
		if p.Name() == e.hidden {
			continue
		}
		col := e.style.LineColor
		if p.Name() == e.selected {
			col = e.style.VertexColor
		}
		vertices := p.Vertices()
		objects = append(objects, e.outline(vertices, true, col)...)
		if e.style.ShowNames && len(vertices) > 0 {
			objects = append(objects, e.caption(p.Name(), geometry.BoundsOf(vertices).Min))
		}
	}

	objects = append(objects, e.outline(e.active, e.activeClosed, e.style.VertexColor)...)
	for _, v := range e.active {
		objects = append(objects, e.marker(v))
	}

	return objects
}

func (e *LabelEditor) outline(points []geometry.Point, closed bool, col color.RGBA) []fyne.CanvasObject {
	edges := len(points) - 1
	if closed && len(points) > 2 {
		edges = len(points)
	}

	lines := make([]fyne.CanvasObject, 0, len(points))
	for i := 0; i < edges; i++ {
		line := canvas.NewLine(col)
		line.StrokeWidth = float32(e.style.LineWidth)
		line.Position1 = e.toWidget(points[i])
		line.Position2 = e.toWidget(points[(i+1)%len(points)])
		lines = append(lines, line)
	}
	return lines
}

func (e *LabelEditor) marker(p geometry.Point) fyne.CanvasObject {
	size := float32(2*e.style.VertexRadius + 4)
	pos := e.toWidget(p)

	marker := canvas.NewCircle(e.style.VertexColor)
	marker.StrokeColor = color.Black
	marker.StrokeWidth = 1
	marker.Resize(fyne.NewSize(size, size))
	marker.Move(fyne.NewPos(pos.X-size/2, pos.Y-size/2))
	return marker
}

func (e *LabelEditor) caption(text string, at geometry.Point) fyne.CanvasObject {
	label := canvas.NewText(text, e.style.TextColor)
	label.TextSize = 12
	label.TextStyle = fyne.TextStyle{Bold: true}

	pos := e.toWidget(at)
	label.Move(fyne.NewPos(pos.X+2, pos.Y-label.MinSize().Height))
	return label
}

// editorRenderer implements fyne.WidgetRenderer
type editorRenderer struct {
	editor  *LabelEditor
	objects []fyne.CanvasObject
}

func (r *editorRenderer) Layout(size fyne.Size) {
	r.editor.viewport.Resize(float64(size.Width), float64(size.Height))
	r.objects = r.editor.buildObjects()
}

func (r *editorRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *editorRenderer) Refresh() {
	r.objects = r.editor.buildObjects()
	canvas.Refresh(r.editor)
}

func (r *editorRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *editorRenderer) Destroy() {}
