package labels

import (
	"fmt"
	"strings"

	"github.com/philipparndt/golabel/pkg/polygon"
)

// Store maps unique label names to committed polygons.
// Insertion order is kept so that listings are stable.
type Store struct {
	order  []string
	byName map[string]*polygon.Polygon
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		order:  make([]string, 0),
		byName: make(map[string]*polygon.Polygon),
	}
}

// Insert adds p under its own name
func (s *Store) Insert(p *polygon.Polygon) error {
	name := p.Name()
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	s.byName[name] = p
	s.order = append(s.order, name)
	return nil
}

// Rename moves the label oldName to newName and renames its polygon.
// Nothing happens if oldName is not stored.
func (s *Store) Rename(oldName, newName string) error {
	p, exists := s.byName[oldName]
	if !exists {
		return nil
	}
	if strings.TrimSpace(newName) == "" {
		return ErrBlankName
	}
	if oldName == newName {
		return nil
	}
	if _, taken := s.byName[newName]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateName, newName)
	}

	delete(s.byName, oldName)
	s.byName[newName] = p
	s.order[s.indexOf(oldName)] = newName
	p.SetName(newName)
	return nil
}

// Remove deletes and returns the named polygon
func (s *Store) Remove(name string) (*polygon.Polygon, bool) {
	p, exists := s.byName[name]
	if !exists {
		return nil, false
	}

	delete(s.byName, name)
	idx := s.indexOf(name)
	s.order = append(s.order[:idx], s.order[idx+1:]...)
	return p, true
}

// Get returns the named polygon
func (s *Store) Get(name string) (*polygon.Polygon, bool) {
	p, exists := s.byName[name]
	return p, exists
}

// Has reports whether name is stored
func (s *Store) Has(name string) bool {
	_, exists := s.byName[name]
	return exists
}

// Len returns the number of stored labels
func (s *Store) Len() int {
	return len(s.order)
}

// Clear removes every label
func (s *Store) Clear() {
	s.order = make([]string, 0)
	s.byName = make(map[string]*polygon.Polygon)
}

// Replace swaps the store content for polys. When names repeat the last
// polygon wins, keeping the position of the first.
func (s *Store) Replace(polys []*polygon.Polygon) {
	s.Clear()
	for _, p := range polys {
		if _, exists := s.byName[p.Name()]; !exists {
			s.order = append(s.order, p.Name())
		}
		s.byName[p.Name()] = p
	}
}

// All returns a copy of the name to polygon mapping
func (s *Store) All() map[string]*polygon.Polygon {
	all := make(map[string]*polygon.Polygon, len(s.byName))
	for name, p := range s.byName {
		all[name] = p
	}
	return all
}

// Names returns the label names in insertion order
func (s *Store) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Polygons returns the stored polygons in insertion order
func (s *Store) Polygons() []*polygon.Polygon {
	polys := make([]*polygon.Polygon, 0, len(s.order))
	for _, name := range s.order {
		polys = append(polys, s.byName[name])
	}
	return polys
}

func (s *Store) indexOf(name string) int {
	for i, n := range s.order {
		if n == name {
			return i
		}
	}
	return -1
}
