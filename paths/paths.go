// Package paths provides compound 2d vector outlines parsed from
// path-description data, and the affine transforms used to place them.
package paths

import "math"

// Vec2 is a 2-dimensional vector.
type Vec2 [2]float64

// Op is the kind of a single drawing command in a sub-path.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo  // quadratic bezier: control point, end point
	CubicTo // cubic bezier: two control points, end point
	ClosePath
)

func (op Op) String() string {
	switch op {
	case MoveTo:
		return "moveto"
	case LineTo:
		return "lineto"
	case QuadTo:
		return "quadto"
	case CubicTo:
		return "cubicto"
	case ClosePath:
		return "closepath"
	}
	return "unknown"
}

// arity returns the number of points a single command of this kind carries.
func (op Op) arity() int {
	switch op {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	}
	return 0
}

// A Command is one drawing instruction: an op together with its points.
// MoveTo and LineTo carry 1 point, QuadTo 2, CubicTo 3, ClosePath none.
type Command struct {
	Op  Op
	Pts []Vec2
}

// A SubPath is a contiguous series of commands beginning with a move.
type SubPath struct {
	Cmds []Command
}

// Bounds describes an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vec2
}

// Center returns the centroid of the bounding box.
func (b Bounds) Center() Vec2 {
	return Vec2{(b.Min[0] + b.Max[0]) / 2, (b.Min[1] + b.Max[1]) / 2}
}

// An Outline is an immutable compound shape: an ordered list of sub-paths
// with a derived bounding box. Outlines are constructed by NewOutline (or
// the parsing functions) and never modified afterwards, so the box is
// computed once.
type Outline struct {
	subs   []SubPath
	bounds Bounds
}

// NewOutline builds an outline from sub-paths and derives its bounds.
// The sub-path slices are owned by the outline after the call.
func NewOutline(subs []SubPath) *Outline {
	o := &Outline{subs: subs}
	o.bounds = tightenBounds(subs)
	return o
}

// Concat joins outlines into a single compound outline, preserving
// sub-path boundaries. Nil outlines are skipped.
func Concat(os ...*Outline) *Outline {
	var subs []SubPath
	for _, o := range os {
		if o == nil {
			continue
		}
		subs = append(subs, o.subs...)
	}
	return NewOutline(subs)
}

// SubPaths returns the ordered sub-paths of the outline.
// The returned slice must not be modified.
func (o *Outline) SubPaths() []SubPath {
	return o.subs
}

// Empty reports whether the outline has no sub-paths.
func (o *Outline) Empty() bool {
	return len(o.subs) == 0
}

// Bounds returns the axis-aligned bounding box over all vertices and
// control points. An empty outline has zero bounds.
func (o *Outline) Bounds() Bounds {
	return o.bounds
}

// Transform returns a new outline with m applied to every point.
func (o *Outline) Transform(m Affine) *Outline {
	subs := make([]SubPath, len(o.subs))
	for i, sp := range o.subs {
		cmds := make([]Command, len(sp.Cmds))
		for j, c := range sp.Cmds {
			nc := Command{Op: c.Op}
			if len(c.Pts) > 0 {
				nc.Pts = make([]Vec2, len(c.Pts))
				for k, p := range c.Pts {
					nc.Pts[k] = m.Apply(p)
				}
			}
			cmds[j] = nc
		}
		subs[i] = SubPath{Cmds: cmds}
	}
	return NewOutline(subs)
}

// tightenBounds computes bounds that exactly contain every point of the
// sub-paths. If there are no points, the bounds are zero.
func tightenBounds(subs []SubPath) Bounds {
	inf := math.Inf(1)
	min := Vec2{inf, inf}
	max := Vec2{-inf, -inf}
	n := 0
	for _, sp := range subs {
		for _, c := range sp.Cmds {
			for _, v := range c.Pts {
				n++
				min[0] = math.Min(min[0], v[0])
				min[1] = math.Min(min[1], v[1])
				max[0] = math.Max(max[0], v[0])
				max[1] = math.Max(max[1], v[1])
			}
		}
	}
	if n == 0 {
		return Bounds{}
	}
	return Bounds{Min: min, Max: max}
}
