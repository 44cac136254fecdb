package spatial

import "math"

// V2 is a point in map space.
type V2 struct {
	X float64
	Y float64
}

func Vec(x, y float64) V2 { return V2{X: x, Y: y} }

// Distance returns the Euclidean distance between v and o.
func (v V2) Distance(o V2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Extents is an axis-aligned rectangle, inclusive on all sides.
type Extents struct {
	TopLeft     V2
	BottomRight V2
}

// Unbounded covers every finite point.
func Unbounded() Extents {
	return Extents{
		TopLeft:     V2{X: -math.MaxFloat64, Y: -math.MaxFloat64},
		BottomRight: V2{X: math.MaxFloat64, Y: math.MaxFloat64},
	}
}

func Rect(x0, y0, x1, y1 float64) Extents {
	return Extents{TopLeft: V2{X: x0, Y: y0}, BottomRight: V2{X: x1, Y: y1}}
}

func (e Extents) Contains(p V2) bool {
	return p.X >= e.TopLeft.X &&
		p.Y >= e.TopLeft.Y &&
		p.X <= e.BottomRight.X &&
		p.Y <= e.BottomRight.Y
}
