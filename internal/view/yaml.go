package view

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes an ObjectID as its string form.
func (id ObjectID) MarshalYAML() (any, error) {
	return id.String(), nil
}

// MarshalYAML encodes the colour as #rrggbb.
func (c RGB) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

// MarshalYAML encodes the object as a mapping in key order.
func (o Object) MarshalYAML() (any, error) {
	return o.node(), nil
}

func (o Object) node() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range o.fields {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.key},
			f.val.node(),
		)
	}
	return n
}

func (v Value) node() *yaml.Node {
	switch v.kind {
	case ValueID:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.id.String()}
	case ValueFlag:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.flag)}
	case ValueText:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.text}
	case ValueChild:
		return v.child.node()
	case ValueList:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.list {
			seq.Content = append(seq.Content, item.node())
		}
		return seq
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

type mapItemDoc struct {
	ID     ObjectID `yaml:"id"`
	Name   string   `yaml:"name,omitempty"`
	Color  RGB      `yaml:"color"`
	Sprite string   `yaml:"sprite,omitempty"`
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Size   float64  `yaml:"size"`
	Layer  uint8    `yaml:"layer"`
}

type edgeDoc struct {
	From [2]float64 `yaml:"from,flow"`
	To   [2]float64 `yaml:"to,flow"`
}

type snapshotDoc struct {
	Root     Object       `yaml:"root"`
	Selected Object       `yaml:"selected"`
	MapItems []mapItemDoc `yaml:"map_items,omitempty"`
	MapEdges []edgeDoc    `yaml:"map_edges,omitempty"`
}

// MarshalYAML encodes the snapshot for the command-line front end.
func (s Snapshot) MarshalYAML() (any, error) {
	doc := snapshotDoc{Root: s.Root, Selected: s.Selected}
	for _, it := range s.MapItems {
		doc.MapItems = append(doc.MapItems, mapItemDoc{
			ID: it.ID, Name: it.Name, Color: it.Color, Sprite: it.Sprite,
			X: it.Pos.X, Y: it.Pos.Y, Size: it.Size, Layer: it.Layer,
		})
	}
	for _, e := range s.MapEdges {
		doc.MapEdges = append(doc.MapEdges, edgeDoc{
			From: [2]float64{e.From.X, e.From.Y},
			To:   [2]float64{e.To.X, e.To.Y},
		})
	}
	return doc, nil
}
