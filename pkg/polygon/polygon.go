package polygon

import (
	"fmt"
	"sort"

	"github.com/philipparndt/golabel/pkg/geometry"
)

// Polygon is an ordered vertex list with linear undo/redo history, a display
// name and a set of tags
type Polygon struct {
	name   string
	buffer []geometry.Point
	cursor int
	tags   map[string]struct{}
}

// New creates an anonymous polygon without vertices
func New() *Polygon {
	return &Polygon{
		buffer: make([]geometry.Point, 0),
		cursor: -1,
		tags:   make(map[string]struct{}),
	}
}

// NewNamed creates a polygon with the given name and active vertices
func NewNamed(name string, vertices ...geometry.Point) *Polygon {
	p := New()
	p.name = name
	for _, v := range vertices {
		p.AddVertex(v)
	}
	return p
}

// Name returns the polygon name
func (p *Polygon) Name() string {
	return p.name
}

// SetName sets the polygon name. Names are validated by the label store.
func (p *Polygon) SetName(name string) {
	p.name = name
}

// AddVertex appends v after the cursor and drops the redo history
func (p *Polygon) AddVertex(v geometry.Point) {
	p.buffer = append(p.buffer[:p.cursor+1], v)
	p.cursor++
}

// InsertVertexAt inserts v at index within the active vertices.
// Like AddVertex it drops the redo history.
func (p *Polygon) InsertVertexAt(v geometry.Point, index int) error {
	if index < 0 || index > p.Len() {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, p.Len())
	}

	p.buffer = p.buffer[:p.cursor+1]
	p.buffer = append(p.buffer, geometry.Point{})
	copy(p.buffer[index+1:], p.buffer[index:])
	p.buffer[index] = v
	p.cursor++
	return nil
}

// RemoveLastVertex deactivates the last active vertex, keeping it for RedoVertex.
// It returns false if there was nothing to remove.
func (p *Polygon) RemoveLastVertex() bool {
	if p.cursor < 0 {
		return false
	}
	p.cursor--
	return true
}

// RedoVertex reactivates the vertex following the cursor.
// It returns false if there is nothing to redo.
func (p *Polygon) RedoVertex() bool {
	if !p.CanRedo() {
		return false
	}
	p.cursor++
	return true
}

// CanUndo reports whether there is an active vertex to remove
func (p *Polygon) CanUndo() bool {
	return p.cursor >= 0
}

// CanRedo reports whether a removed vertex is still retained beyond the cursor
func (p *Polygon) CanRedo() bool {
	return p.cursor+1 < len(p.buffer)
}

// ReplaceVertex moves a vertex. If old is among the active vertices, every
// occurrence of old in the buffer (including redo-available ones) becomes moved.
func (p *Polygon) ReplaceVertex(old, moved geometry.Point) bool {
	if p.IndexOf(old) < 0 {
		return false
	}
	for i, v := range p.buffer {
		if v == old {
			p.buffer[i] = moved
		}
	}
	return true
}

// IndexOf returns the index of the first active vertex equal to v, or -1
func (p *Polygon) IndexOf(v geometry.Point) int {
	for i := 0; i <= p.cursor; i++ {
		if p.buffer[i] == v {
			return i
		}
	}
	return -1
}

// Vertices returns a copy of the active vertices
func (p *Polygon) Vertices() []geometry.Point {
	vertices := make([]geometry.Point, p.Len())
	copy(vertices, p.buffer[:p.cursor+1])
	return vertices
}

// Len returns the number of active vertices
func (p *Polygon) Len() int {
	return p.cursor + 1
}

// AddTag attaches a tag. It returns false if the tag was already present.
func (p *Polygon) AddTag(tag string) bool {
	if _, exists := p.tags[tag]; exists {
		return false
	}
	p.tags[tag] = struct{}{}
	return true
}

// RemoveTag detaches a tag. It returns false if the tag was not present.
func (p *Polygon) RemoveTag(tag string) bool {
	if _, exists := p.tags[tag]; !exists {
		return false
	}
	delete(p.tags, tag)
	return true
}

// HasTag reports whether the tag is attached
func (p *Polygon) HasTag(tag string) bool {
	_, exists := p.tags[tag]
	return exists
}

// Tags returns the attached tags in sorted order
func (p *Polygon) Tags() []string {
	tags := make([]string, 0, len(p.tags))
	for tag := range p.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Clone returns a deep copy including the redo history
func (p *Polygon) Clone() *Polygon {
	c := &Polygon{
		name:   p.name,
		buffer: make([]geometry.Point, len(p.buffer)),
		cursor: p.cursor,
		tags:   make(map[string]struct{}, len(p.tags)),
	}
	copy(c.buffer, p.buffer)
	for tag := range p.tags {
		c.tags[tag] = struct{}{}
	}
	return c
}
