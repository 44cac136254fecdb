package view

import "github.com/chronicle-sim/chronicle/internal/spatial"

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// Request is consumed by one tick.
type Request struct {
	EndTurn bool
	// MakeActive switches the active agent when it names a live entity.
	MakeActive *ObjectID
	// InteractedWith selects an object or triggers an action.
	InteractedWith *ObjectID
	View           ViewRequest
}

type ViewRequest struct {
	Enabled  bool
	Viewport spatial.Extents
}

// MapItem is one drawable on the map. Layer 0 draws below layer 1.
type MapItem struct {
	ID     ObjectID
	Name   string
	Color  RGB
	Sprite string
	Pos    spatial.V2
	Size   float64
	Layer  uint8
}

// Edge is a line between two connected sites.
type Edge struct {
	From spatial.V2
	To   spatial.V2
}

// Snapshot is everything a presentation layer needs to draw one frame. It is
// safe to keep across ticks.
type Snapshot struct {
	MapItems []MapItem
	MapEdges []Edge
	Root     Object
	Selected Object
}

// IsEmpty reports whether the snapshot carries nothing, as when view
// extraction was not requested.
func (s Snapshot) IsEmpty() bool {
	return len(s.MapItems) == 0 && len(s.MapEdges) == 0 && s.Root.IsEmpty() && s.Selected.IsEmpty()
}
