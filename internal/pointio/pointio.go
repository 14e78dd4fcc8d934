// Package pointio reads and writes point documents.
//
// A document is either a bare list of points or a mapping with a "points"
// key holding that list. Each point is a two-element list [x, y] or a
// mapping {x: ..., y: ...}. JSON documents are read through the same YAML
// decoder.
package pointio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/priyakdey/countsquares"
)

// Format is an output encoding.
type Format int

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "yaml", "yml" or "json", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return 0, fmt.Errorf("pointio: unknown format %q", s)
}

// Read decodes one point document from r. Empty input is an empty list.
func Read(r io.Reader) ([]countsquares.Point, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("pointio: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	list := doc.Content[0]
	if list.Kind == yaml.MappingNode {
		list = lookup(list, "points")
		if list == nil {
			return nil, fmt.Errorf("pointio: line %d: mapping has no points key", doc.Content[0].Line)
		}
	}
	if list.Kind == yaml.ScalarNode && list.ShortTag() == "!!null" {
		return nil, nil
	}
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("pointio: line %d: expected a list of points", list.Line)
	}

	var pts []point
	if err := list.Decode(&pts); err != nil {
		return nil, fmt.Errorf("pointio: %w", err)
	}
	out := make([]countsquares.Point, len(pts))
	for i, p := range pts {
		out[i] = countsquares.Point(p)
	}
	return out, nil
}

// Write encodes points as a document in the given format.
func Write(w io.Writer, f Format, points []countsquares.Point) error {
	switch f {
	case YAML:
		return writeYAML(w, points)
	case JSON:
		return writeJSON(w, points)
	}
	return fmt.Errorf("pointio: unknown format %v", f)
}

func writeYAML(w io.Writer, points []countsquares.Point) error {
	list := &yaml.Node{Kind: yaml.SequenceNode}
	for _, p := range points {
		list.Content = append(list.Content, &yaml.Node{
			Kind:  yaml.SequenceNode,
			Style: yaml.FlowStyle,
			Content: []*yaml.Node{
				intNode(p.X),
				intNode(p.Y),
			},
		})
	}
	if len(points) == 0 {
		list.Style = yaml.FlowStyle
	}
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "points"},
			list,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("pointio: %w", err)
	}
	return enc.Close()
}

func writeJSON(w io.Writer, points []countsquares.Point) error {
	pairs := make([][2]int32, len(points))
	for i, p := range points {
		pairs[i] = [2]int32{p.X, p.Y}
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(struct {
		Points [][2]int32 `json:"points"`
	}{pairs}); err != nil {
		return fmt.Errorf("pointio: %w", err)
	}
	return nil
}

func intNode(v int32) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(v), 10)}
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// point decodes either [x, y] or {x: .., y: ..}.
type point struct {
	X, Y int32
}

func (p *point) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var xy []int32
		if err := n.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: point has %d coordinates, want 2", n.Line, len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			X *int32 `yaml:"x"`
			Y *int32 `yaml:"y"`
		}
		if err := n.Decode(&m); err != nil {
			return err
		}
		if m.X == nil || m.Y == nil {
			return fmt.Errorf("line %d: point needs both x and y", n.Line)
		}
		p.X, p.Y = *m.X, *m.Y
		return nil
	}
	return fmt.Errorf("line %d: expected [x, y] or {x: .., y: ..}", n.Line)
}
