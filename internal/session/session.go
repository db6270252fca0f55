package session

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/philipparndt/golabel/pkg/geometry"
	"github.com/philipparndt/golabel/pkg/labels"
	"github.com/philipparndt/golabel/pkg/polygon"
)

// Session is the editing context for one open image: its label store, the
// polygon being drawn or edited, and the current state. It is not safe for
// concurrent use; every operation runs to completion on the caller's goroutine.
type Session struct {
	policy    labels.NamePolicy
	store     *labels.Store
	state     State
	drawing   *polygon.Polygon
	editing   string
	imagePath string
	labelPath string
	modified  bool
	listeners []func(Event)
}

// New creates an idle session without an image
func New(policy labels.NamePolicy) *Session {
	return &Session{
		policy: policy,
		store:  labels.NewStore(),
		state:  Idle,
	}
}

// Subscribe registers fn to be called after every change
func (s *Session) Subscribe(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Policy returns the name policy used for new and renamed labels
func (s *Session) Policy() labels.NamePolicy {
	return s.policy
}

// HasImage reports whether an image is open
func (s *Session) HasImage() bool {
	return s.imagePath != ""
}

// ImagePath returns the open image, or "" if none
func (s *Session) ImagePath() string {
	return s.imagePath
}

// LabelPath returns the label file of the open image, or "" if none
func (s *Session) LabelPath() string {
	return s.labelPath
}

// Modified reports whether there are unsaved changes
func (s *Session) Modified() bool {
	return s.modified
}

// Labels returns the committed polygons in a stable order
func (s *Session) Labels() []*polygon.Polygon {
	return s.store.Polygons()
}

// Label returns a committed polygon by name
func (s *Session) Label(name string) (*polygon.Polygon, bool) {
	return s.store.Get(name)
}

// EditingName returns the name of the polygon being edited, or ""
func (s *Session) EditingName() string {
	return s.editing
}

// ActiveVertices returns the vertices of the polygon being drawn or edited.
// It returns nil when idle.
func (s *Session) ActiveVertices() []geometry.Point {
	if p := s.active(); p != nil {
		return p.Vertices()
	}
	return nil
}

// CanUndo reports whether Undo would remove a vertex
func (s *Session) CanUndo() bool {
	return s.state == Drawing && s.drawing.CanUndo()
}

// CanRedo reports whether Redo would restore a vertex
func (s *Session) CanRedo() bool {
	return s.state == Drawing && s.drawing.CanRedo()
}

// CanComplete reports whether the polygon being drawn has enough vertices
func (s *Session) CanComplete() bool {
	return s.state == Drawing && labels.CheckCommittable(s.drawing) == nil
}

// OpenImage makes imagePath the current image and loads its labels from
// labelPath. A missing label file means the image has no labels yet. If the
// label file cannot be read the image stays open with no labels and the
// error is returned.
func (s *Session) OpenImage(imagePath, labelPath string) error {
	s.abandon()
	s.store.Clear()
	s.imagePath = imagePath
	s.labelPath = labelPath
	s.modified = false

	var loadErr error
	polys, err := labels.LoadFileOrdered(labelPath)
	switch {
	case err == nil:
		s.store.Replace(polys)
	case errors.Is(err, fs.ErrNotExist):
	default:
		loadErr = err
	}

	s.emit(Event{Kind: ImageChanged, Name: imagePath})
	s.emit(Event{Kind: LabelsReplaced})
	return loadErr
}

// CloseImage discards the current image and its labels
func (s *Session) CloseImage() {
	s.abandon()
	s.store.Clear()
	s.imagePath = ""
	s.labelPath = ""
	s.modified = false

	s.emit(Event{Kind: ImageChanged})
	s.emit(Event{Kind: LabelsReplaced})
}

// StartDrawing begins a new anonymous polygon
func (s *Session) StartDrawing() error {
	if err := s.require("start drawing", Idle); err != nil {
		return err
	}
	if !s.HasImage() {
		return ErrNoImage
	}

	s.drawing = polygon.New()
	s.setState(Drawing)
	return nil
}

// AddPoint appends a vertex to the polygon being drawn
func (s *Session) AddPoint(p geometry.Point) error {
	if err := s.require("add point", Drawing); err != nil {
		return err
	}

	s.drawing.AddVertex(p)
	s.emit(Event{Kind: ShapeChanged})
	return nil
}

// Undo removes the last vertex of the polygon being drawn
func (s *Session) Undo() error {
	if err := s.require("undo", Drawing); err != nil {
		return err
	}

	if s.drawing.RemoveLastVertex() {
		s.emit(Event{Kind: ShapeChanged})
	}
	return nil
}

// Redo restores the vertex removed last
func (s *Session) Redo() error {
	if err := s.require("redo", Drawing); err != nil {
		return err
	}

	if s.drawing.RedoVertex() {
		s.emit(Event{Kind: ShapeChanged})
	}
	return nil
}

// Complete commits the polygon being drawn under rawName and returns the
// name it was stored under. On error the session keeps drawing so the
// caller can ask for another name.
func (s *Session) Complete(rawName string) (string, error) {
	if err := s.require("complete", Drawing); err != nil {
		return "", err
	}
	if err := labels.CheckCommittable(s.drawing); err != nil {
		return "", err
	}

	name, err := labels.CheckName(rawName, s.policy, s.store.Has)
	if err != nil {
		return "", err
	}

	s.drawing.SetName(name)
	if err := s.store.Insert(s.drawing); err != nil {
		s.drawing.SetName("")
		return "", err
	}

	s.drawing = nil
	s.modified = true
	s.emit(Event{Kind: LabelAdded, Name: name})
	s.setState(Idle)
	return name, nil
}

// Cancel discards the polygon being drawn or stops editing
func (s *Session) Cancel() error {
	if err := s.require("cancel", Drawing, Editing); err != nil {
		return err
	}

	s.abandon()
	return nil
}

// BeginEdit starts reshaping the named label
func (s *Session) BeginEdit(name string) error {
	if err := s.require("edit", Idle); err != nil {
		return err
	}
	if !s.store.Has(name) {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, name)
	}

	s.editing = name
	s.setState(Editing)
	return nil
}

// FinishEdit stops editing
func (s *Session) FinishEdit() error {
	if err := s.require("finish editing", Editing); err != nil {
		return err
	}

	s.editing = ""
	s.setState(Idle)
	return nil
}

// MoveVertex drags the vertex at old to moved on the polygon being drawn or
// edited. It reports false if no active vertex is at old.
func (s *Session) MoveVertex(old, moved geometry.Point) (bool, error) {
	if err := s.require("move vertex", Drawing, Editing); err != nil {
		return false, err
	}

	if !s.active().ReplaceVertex(old, moved) {
		return false, nil
	}
	if s.state == Editing {
		s.modified = true
	}
	s.emit(Event{Kind: ShapeChanged, Name: s.editing})
	return true, nil
}

// InsertVertex subdivides the edge of the edited polygon nearest to p,
// provided it is within tolerance
func (s *Session) InsertVertex(p geometry.Point, tolerance float64) error {
	if err := s.require("insert vertex", Editing); err != nil {
		return err
	}

	target := s.active()
	edge, distance := target.NearestEdge(p, true)
	if edge < 0 || distance > tolerance {
		return ErrNoEdge
	}
	if err := target.InsertVertexAt(p, edge+1); err != nil {
		return err
	}

	s.modified = true
	s.emit(Event{Kind: ShapeChanged, Name: s.editing})
	return nil
}

// Rename gives the label oldName a new name and returns the stored name
func (s *Session) Rename(oldName, rawNew string) (string, error) {
	if err := s.require("rename", Idle, Editing); err != nil {
		return "", err
	}
	if !s.store.Has(oldName) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLabel, oldName)
	}

	inUse := func(name string) bool {
		return name != oldName && s.store.Has(name)
	}
	newName, err := labels.CheckName(rawNew, s.policy, inUse)
	if err != nil {
		return "", err
	}
	if newName == oldName {
		return newName, nil
	}

	if err := s.store.Rename(oldName, newName); err != nil {
		return "", err
	}
	if s.editing == oldName {
		s.editing = newName
	}

	s.modified = true
	s.emit(Event{Kind: LabelRenamed, Name: newName, OldName: oldName})
	return newName, nil
}

// Remove deletes the named label. Editing stops if it was the edited one.
func (s *Session) Remove(name string) error {
	if err := s.require("remove", Idle, Editing); err != nil {
		return err
	}
	if _, ok := s.store.Remove(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, name)
	}

	s.modified = true
	s.emit(Event{Kind: LabelRemoved, Name: name})
	if s.editing == name {
		s.editing = ""
		s.setState(Idle)
	}
	return nil
}

// AddTag attaches a tag to the named label
func (s *Session) AddTag(name, tag string) error {
	return s.changeTag(name, tag, (*polygon.Polygon).AddTag)
}

// RemoveTag detaches a tag from the named label
func (s *Session) RemoveTag(name, tag string) error {
	return s.changeTag(name, tag, (*polygon.Polygon).RemoveTag)
}

func (s *Session) changeTag(name, tag string, change func(*polygon.Polygon, string) bool) error {
	if err := s.require("tag", Idle, Editing); err != nil {
		return err
	}
	p, ok := s.store.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, name)
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fmt.Errorf("%w: label %q", ErrBlankTag, name)
	}

	if change(p, tag) {
		s.emit(Event{Kind: LabelTagged, Name: name})
	}
	return nil
}

// Save writes the committed labels to the label file
func (s *Session) Save() error {
	if err := s.require("save", Idle, Editing); err != nil {
		return err
	}
	if !s.HasImage() {
		return ErrNoImage
	}

	if err := labels.SaveFile(s.labelPath, s.store.Polygons()); err != nil {
		return err
	}

	s.modified = false
	s.emit(Event{Kind: Saved, Name: s.labelPath})
	return nil
}

// Load replaces the committed labels with the content of the label file.
// On error the current labels are kept.
func (s *Session) Load() error {
	if err := s.require("load", Idle, Editing); err != nil {
		return err
	}
	if !s.HasImage() {
		return ErrNoImage
	}

	polys, err := labels.LoadFileOrdered(s.labelPath)
	if err != nil {
		return err
	}

	s.editing = ""
	s.store.Replace(polys)
	s.modified = false
	s.emit(Event{Kind: LabelsReplaced})
	s.setState(Idle)
	return nil
}

// active returns the polygon that vertex operations apply to
func (s *Session) active() *polygon.Polygon {
	switch s.state {
	case Drawing:
		return s.drawing
	case Editing:
		p, _ := s.store.Get(s.editing)
		return p
	default:
		return nil
	}
}

// abandon drops any drawing or editing without committing
func (s *Session) abandon() {
	s.drawing = nil
	s.editing = ""
	s.setState(Idle)
}

func (s *Session) require(op string, allowed ...State) error {
	for _, state := range allowed {
		if s.state == state {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, op, s.state)
}

func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.state = state
	s.emit(Event{Kind: StateChanged})
}

func (s *Session) emit(e Event) {
	e.State = s.state
	for _, fn := range s.listeners {
		fn(e)
	}
}
