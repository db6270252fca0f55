package labels

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/golabel/pkg/geometry"
	"github.com/philipparndt/golabel/pkg/polygon"
)

const rootElement = "ImageLabels"

// genericParseMessage is reported for documents that are not label files at all
const genericParseMessage = "unable to parse file"

type documentXML struct {
	XMLName xml.Name   `xml:"ImageLabels"`
	Labels  []labelXML `xml:"Label"`
}

type labelXML struct {
	Name   string    `xml:"Name"`
	Points pointsXML `xml:"Points"`
}

type pointsXML struct {
	Points []pointXML `xml:"Point"`
}

type pointXML struct {
	X int `xml:"x"`
	Y int `xml:"y"`
}

// node is a generic element used to validate the document shape by hand
type node struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
	Nodes   []node `xml:",any"`
}

// Encode writes polygons as an ImageLabels document, one Label per polygon in
// the given order
func Encode(w io.Writer, polygons []*polygon.Polygon) error {
	doc := documentXML{Labels: make([]labelXML, 0, len(polygons))}
	for _, p := range polygons {
		label := labelXML{
			Name:   p.Name(),
			Points: pointsXML{Points: make([]pointXML, 0, p.Len())},
		}
		for _, v := range p.Vertices() {
			label.Points.Points = append(label.Points.Points, pointXML{X: v.X, Y: v.Y})
		}
		doc.Labels = append(doc.Labels, label)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode labels: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write labels: %w", err)
	}
	return nil
}

// Marshal returns the ImageLabels document for polygons
func Marshal(polygons []*polygon.Polygon) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, polygons); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads an ImageLabels document into a name to polygon mapping.
// A later label silently replaces an earlier one with the same name.
func Decode(r io.Reader) (map[string]*polygon.Polygon, error) {
	polys, err := decodeAll(r)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*polygon.Polygon, len(polys))
	for _, p := range polys {
		result[p.Name()] = p
	}
	return result, nil
}

// DecodeOrdered reads an ImageLabels document keeping document order.
// Repeated names collapse to the last polygon at the position of the first.
func DecodeOrdered(r io.Reader) ([]*polygon.Polygon, error) {
	polys, err := decodeAll(r)
	if err != nil {
		return nil, err
	}

	store := NewStore()
	store.Replace(polys)
	return store.Polygons(), nil
}

// Unmarshal parses an ImageLabels document held in memory
func Unmarshal(data []byte) (map[string]*polygon.Polygon, error) {
	return Decode(bytes.NewReader(data))
}

func decodeAll(r io.Reader) ([]*polygon.Polygon, error) {
	root, err := readRoot(r)
	if err != nil {
		return nil, err
	}

	polys := make([]*polygon.Polygon, 0, len(root.Nodes))
	for i, label := range root.Nodes {
		p, err := parseLabel(label)
		if err != nil {
			return nil, parseErrorf("label %d: %s", i+1, err.Msg)
		}
		polys = append(polys, p)
	}
	return polys, nil
}

// readRoot decodes the single root element and rejects trailing elements
func readRoot(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)

	var root node
	if err := dec.Decode(&root); err != nil {
		return nil, &ParseError{Msg: genericParseMessage}
	}
	if root.XMLName.Local != rootElement {
		return nil, &ParseError{Msg: genericParseMessage}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Msg: genericParseMessage}
		}
		if _, ok := tok.(xml.StartElement); ok {
			return nil, &ParseError{Msg: genericParseMessage}
		}
	}

	return &root, nil
}

func parseLabel(label node) (*polygon.Polygon, *ParseError) {
	if len(label.Nodes) != 2 {
		return nil, parseErrorf("expected 2 children (Name, Points), found %d", len(label.Nodes))
	}

	// the name is kept verbatim; " a" and "a" are different labels
	name := label.Nodes[0].Text
	if strings.TrimSpace(name) == "" {
		return nil, parseErrorf("label has a blank name")
	}
	points := label.Nodes[1].Nodes
	if len(points) < 1 {
		return nil, parseErrorf("%q has no points", name)
	}

	p := polygon.New()
	p.SetName(name)
	for i, point := range points {
		v, err := parsePoint(point)
		if err != nil {
			return nil, parseErrorf("%q point %d: %s", name, i+1, err.Msg)
		}
		p.AddVertex(v)
	}
	return p, nil
}

func parsePoint(point node) (geometry.Point, *ParseError) {
	x, err := parseCoordinate(point, "x")
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := parseCoordinate(point, "y")
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.NewPoint(x, y), nil
}

func parseCoordinate(point node, axis string) (int, *ParseError) {
	for _, child := range point.Nodes {
		if child.XMLName.Local != axis {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(child.Text))
		if err != nil {
			return 0, parseErrorf("%s is not an integer: %q", axis, child.Text)
		}
		return value, nil
	}
	return 0, parseErrorf("missing %s", axis)
}
