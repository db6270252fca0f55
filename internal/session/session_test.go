package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/golabel/pkg/geometry"
	"github.com/philipparndt/golabel/pkg/labels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int) geometry.Point {
	return geometry.NewPoint(x, y)
}

func openSession(t *testing.T, policy labels.NamePolicy) (*Session, string) {
	t.Helper()
	dir := t.TempDir()
	labelPath := filepath.Join(dir, "labels", "img.xml")

	s := New(policy)
	require.NoError(t, s.OpenImage(filepath.Join(dir, "images", "img.png"), labelPath))
	return s, labelPath
}

func drawTriangle(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.StartDrawing())
	require.NoError(t, s.AddPoint(pt(0, 0)))
	require.NoError(t, s.AddPoint(pt(10, 0)))
	require.NoError(t, s.AddPoint(pt(0, 10)))
}

func TestNewSessionIsIdle(t *testing.T) {
	s := New(labels.PolicyLenient)

	assert.Equal(t, Idle, s.State())
	assert.False(t, s.HasImage())
	assert.False(t, s.Modified())
	assert.Empty(t, s.Labels())
	assert.Nil(t, s.ActiveVertices())
}

func TestStartDrawingNeedsImage(t *testing.T) {
	s := New(labels.PolicyLenient)

	assert.ErrorIs(t, s.StartDrawing(), ErrNoImage)
	assert.Equal(t, Idle, s.State())
}

func TestDrawAndComplete(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)

	assert.Equal(t, Drawing, s.State())
	assert.True(t, s.CanComplete())
	assert.Equal(t, []geometry.Point{pt(0, 0), pt(10, 0), pt(0, 10)}, s.ActiveVertices())

	name, err := s.Complete("  roof ")
	require.NoError(t, err)
	assert.Equal(t, "roof", name)
	assert.Equal(t, Idle, s.State())
	assert.True(t, s.Modified())

	p, ok := s.Label("roof")
	require.True(t, ok)
	assert.Equal(t, "roof", p.Name())
	assert.Equal(t, 3, p.Len())
}

func TestUndoRedoWhileDrawing(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)

	require.NoError(t, s.Undo())
	require.NoError(t, s.Undo())
	assert.Equal(t, []geometry.Point{pt(0, 0)}, s.ActiveVertices())
	assert.True(t, s.CanRedo())

	require.NoError(t, s.Redo())
	assert.Equal(t, []geometry.Point{pt(0, 0), pt(10, 0)}, s.ActiveVertices())

	require.NoError(t, s.AddPoint(pt(5, 5)))
	assert.False(t, s.CanRedo())
	assert.Equal(t, []geometry.Point{pt(0, 0), pt(10, 0), pt(5, 5)}, s.ActiveVertices())
}

func TestUndoPastEmptyIsNoop(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	require.NoError(t, s.StartDrawing())

	assert.False(t, s.CanUndo())
	assert.NoError(t, s.Undo())
	assert.Empty(t, s.ActiveVertices())
}

func TestCompleteChecksVerticesBeforeName(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	require.NoError(t, s.StartDrawing())
	require.NoError(t, s.AddPoint(pt(0, 0)))
	require.NoError(t, s.AddPoint(pt(1, 1)))

	_, err := s.Complete("")
	assert.ErrorIs(t, err, labels.ErrInsufficientVertices)
	assert.Equal(t, Drawing, s.State())
}

func TestCompleteRejectsBadNames(t *testing.T) {
	s, _ := openSession(t, labels.PolicyStrict)
	drawTriangle(t, s)
	_, err := s.Complete("door")
	require.NoError(t, err)

	drawTriangle(t, s)

	_, err = s.Complete("   ")
	assert.ErrorIs(t, err, labels.ErrBlankName)

	_, err = s.Complete("front door")
	assert.ErrorIs(t, err, labels.ErrInvalidCharacter)

	_, err = s.Complete("door")
	assert.ErrorIs(t, err, labels.ErrDuplicateName)

	// still drawing, so the caller can prompt again
	assert.Equal(t, Drawing, s.State())
	assert.Len(t, s.ActiveVertices(), 3)

	name, err := s.Complete("door2")
	require.NoError(t, err)
	assert.Equal(t, "door2", name)
	assert.Len(t, s.Labels(), 2)
}

func TestCancelDiscardsDrawing(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)

	require.NoError(t, s.Cancel())
	assert.Equal(t, Idle, s.State())
	assert.Empty(t, s.Labels())
	assert.False(t, s.Modified())
}

func TestIllegalTransitions(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)

	assert.ErrorIs(t, s.AddPoint(pt(1, 1)), ErrInvalidTransition)
	assert.ErrorIs(t, s.Undo(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Redo(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Cancel(), ErrInvalidTransition)
	assert.ErrorIs(t, s.FinishEdit(), ErrInvalidTransition)
	assert.ErrorIs(t, s.InsertVertex(pt(1, 1), 5), ErrInvalidTransition)
	_, err := s.Complete("x")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.MoveVertex(pt(0, 0), pt(1, 1))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	drawTriangle(t, s)
	assert.ErrorIs(t, s.StartDrawing(), ErrInvalidTransition)
	assert.ErrorIs(t, s.BeginEdit("x"), ErrInvalidTransition)
	assert.ErrorIs(t, s.Save(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Remove("x"), ErrInvalidTransition)
	assert.Len(t, s.ActiveVertices(), 3)
	assert.Equal(t, Drawing, s.State())
}

func TestMoveVertexWhileDrawing(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)

	moved, err := s.MoveVertex(pt(10, 0), pt(20, 0))
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []geometry.Point{pt(0, 0), pt(20, 0), pt(0, 10)}, s.ActiveVertices())

	moved, err = s.MoveVertex(pt(99, 99), pt(1, 1))
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestEditingLabel(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)
	_, err := s.Complete("roof")
	require.NoError(t, err)

	assert.ErrorIs(t, s.BeginEdit("missing"), ErrUnknownLabel)

	require.NoError(t, s.BeginEdit("roof"))
	assert.Equal(t, Editing, s.State())
	assert.Equal(t, "roof", s.EditingName())

	moved, err := s.MoveVertex(pt(0, 10), pt(0, 20))
	require.NoError(t, err)
	assert.True(t, moved)

	// the closing edge runs from (0,20) back to (0,0)
	require.NoError(t, s.InsertVertex(pt(1, 5), 3))
	assert.ErrorIs(t, s.InsertVertex(pt(50, 50), 3), ErrNoEdge)

	require.NoError(t, s.FinishEdit())
	assert.Equal(t, Idle, s.State())
	assert.Empty(t, s.EditingName())

	p, _ := s.Label("roof")
	assert.Equal(t, []geometry.Point{pt(0, 0), pt(10, 0), pt(0, 20), pt(1, 5)}, p.Vertices())
}

func TestRename(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)
	_, err := s.Complete("a")
	require.NoError(t, err)
	drawTriangle(t, s)
	_, err = s.Complete("b")
	require.NoError(t, err)

	_, err = s.Rename("missing", "c")
	assert.ErrorIs(t, err, ErrUnknownLabel)

	_, err = s.Rename("a", "b")
	assert.ErrorIs(t, err, labels.ErrDuplicateName)

	name, err := s.Rename("a", "a")
	require.NoError(t, err)
	assert.Equal(t, "a", name)

	require.NoError(t, s.BeginEdit("a"))
	name, err = s.Rename("a", " c ")
	require.NoError(t, err)
	assert.Equal(t, "c", name)
	assert.Equal(t, "c", s.EditingName())

	names := []string{}
	for _, p := range s.Labels() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"c", "b"}, names)
}

func TestRemoveEditedLabelStopsEditing(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)
	_, err := s.Complete("roof")
	require.NoError(t, err)

	require.NoError(t, s.BeginEdit("roof"))
	require.NoError(t, s.Remove("roof"))
	assert.Equal(t, Idle, s.State())
	assert.Empty(t, s.Labels())

	assert.ErrorIs(t, s.Remove("roof"), ErrUnknownLabel)
}

func TestTags(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)
	_, err := s.Complete("roof")
	require.NoError(t, err)

	require.NoError(t, s.AddTag("roof", " damaged "))
	p, _ := s.Label("roof")
	assert.True(t, p.HasTag("damaged"))

	err = s.AddTag("roof", " ")
	assert.ErrorIs(t, err, ErrBlankTag)
	assert.NotErrorIs(t, err, labels.ErrBlankName)
	assert.Contains(t, err.Error(), "tag is blank")
	assert.ErrorIs(t, s.RemoveTag("roof", ""), ErrBlankTag)
	assert.ErrorIs(t, s.AddTag("nope", "x"), ErrUnknownLabel)

	require.NoError(t, s.RemoveTag("roof", "damaged"))
	assert.False(t, p.HasTag("damaged"))
}

func TestSaveAndReopen(t *testing.T) {
	s, labelPath := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)
	_, err := s.Complete("roof")
	require.NoError(t, err)

	require.NoError(t, s.Save())
	assert.False(t, s.Modified())
	assert.FileExists(t, labelPath)

	other := New(labels.PolicyLenient)
	require.NoError(t, other.OpenImage(s.ImagePath(), labelPath))
	p, ok := other.Label("roof")
	require.True(t, ok)
	assert.Equal(t, []geometry.Point{pt(0, 0), pt(10, 0), pt(0, 10)}, p.Vertices())
	assert.False(t, other.Modified())
}

func TestSaveFailureKeepsState(t *testing.T) {
	s, labelPath := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)
	_, err := s.Complete("roof")
	require.NoError(t, err)

	// a plain file where the labels directory should be
	require.NoError(t, os.WriteFile(filepath.Dir(labelPath), []byte("x"), 0644))

	var ioErr *labels.IOError
	assert.ErrorAs(t, s.Save(), &ioErr)
	assert.True(t, s.Modified())
	assert.Len(t, s.Labels(), 1)
}

func TestLoadFailureKeepsLabels(t *testing.T) {
	s, labelPath := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)
	_, err := s.Complete("roof")
	require.NoError(t, err)
	require.NoError(t, s.Save())

	require.NoError(t, os.WriteFile(labelPath, []byte("<annotation>"), 0644))

	var parseErr *labels.ParseError
	assert.ErrorAs(t, s.Load(), &parseErr)
	_, ok := s.Label("roof")
	assert.True(t, ok)
}

func TestOpenImageWithBrokenLabels(t *testing.T) {
	dir := t.TempDir()
	labelPath := filepath.Join(dir, "img.xml")
	require.NoError(t, os.WriteFile(labelPath, []byte("not xml"), 0644))

	s := New(labels.PolicyLenient)
	err := s.OpenImage(filepath.Join(dir, "img.png"), labelPath)

	var parseErr *labels.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.True(t, s.HasImage())
	assert.Empty(t, s.Labels())
}

func TestOpenImageCancelsDrawing(t *testing.T) {
	s, labelPath := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)

	require.NoError(t, s.OpenImage("other.png", labelPath))
	assert.Equal(t, Idle, s.State())
	assert.Nil(t, s.ActiveVertices())
}

func TestCloseImage(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	drawTriangle(t, s)
	_, err := s.Complete("roof")
	require.NoError(t, err)

	s.CloseImage()
	assert.False(t, s.HasImage())
	assert.Empty(t, s.Labels())
	assert.False(t, s.Modified())
	assert.ErrorIs(t, s.Save(), ErrNoImage)
}

func TestEvents(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)

	var kinds []EventKind
	s.Subscribe(func(e Event) {
		kinds = append(kinds, e.Kind)
	})

	drawTriangle(t, s)
	_, err := s.Complete("roof")
	require.NoError(t, err)
	_, err = s.Rename("roof", "top")
	require.NoError(t, err)

	assert.Equal(t, []EventKind{
		StateChanged,
		ShapeChanged, ShapeChanged, ShapeChanged,
		LabelAdded, StateChanged,
		LabelRenamed,
	}, kinds)
}

func TestEventCarriesState(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)

	var last Event
	s.Subscribe(func(e Event) { last = e })

	require.NoError(t, s.StartDrawing())
	assert.Equal(t, Event{Kind: StateChanged, State: Drawing}, last)
}

func TestLabelsKeepCommitOrder(t *testing.T) {
	s, _ := openSession(t, labels.PolicyLenient)
	for _, name := range []string{"c", "a", "b"} {
		drawTriangle(t, s)
		_, err := s.Complete(name)
		require.NoError(t, err)
	}

	var names []string
	for _, p := range s.Labels() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}
