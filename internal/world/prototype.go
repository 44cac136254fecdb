package world

import "github.com/chronicle-sim/chronicle/internal/core/tags"

// Prototype is a reusable spawn template for entities created at runtime.
type Prototype struct {
	Name        string
	Kind        string
	Sprite      string
	Size        float64
	Flags       Flags
	HasLocation bool
	HasFaction  bool
}

// Prototypes is a tagged table of spawn templates.
type Prototypes struct {
	entries []Prototype
	tags    *tags.Registry[int]
}

func NewPrototypes() *Prototypes {
	return &Prototypes{tags: tags.New[int]()}
}

// Define adds proto under tag. A repeated tag replaces the earlier definition.
func (p *Prototypes) Define(tag string, proto Prototype) {
	p.entries = append(p.entries, proto)
	p.tags.Insert(tag, len(p.entries)-1)
}

func (p *Prototypes) Lookup(tag string) (Prototype, bool) {
	i, ok := p.tags.Lookup(tag)
	if !ok {
		return Prototype{}, false
	}
	return p.entries[i], true
}

func (p *Prototypes) Len() int { return p.tags.Len() }
