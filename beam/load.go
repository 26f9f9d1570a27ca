package beam

import (
	"fmt"
	"math"
)

// Category is the closed set of load shapes. It is derived once by
// Classify and matched exhaustively downstream, so the shape is never
// re-derived inconsistently from the load's fields.
type Category int

const (
	Point Category = iota
	Distributed
	PointMoment
)

func (c Category) String() string {
	switch c {
	case Point:
		return "POINT"
	case Distributed:
		return "DISTRIBUTED"
	case PointMoment:
		return "POINT_MOMENT"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Classify returns the load's category. Precedence matters: a moment with
// an end location is still a moment, never distributed.
func Classify(l Load) Category {
	if l.Moment {
		return PointMoment
	}
	if l.End != nil {
		return Distributed
	}
	return Point
}

// Maxima holds the per-category normalization maxima for one diagram:
// the largest absolute magnitude observed in each category, taking the
// larger of |magnitude| and |end magnitude| per load. It is computed once
// per diagram, before any scaling call.
type Maxima struct {
	point       float64
	distributed float64
	moment      float64
}

func (m Maxima) of(c Category) float64 {
	switch c {
	case Point:
		return m.point
	case Distributed:
		return m.distributed
	default:
		return m.moment
	}
}

// MaxMagnitudes computes the normalization maxima over a load set.
// Categories with no loads have a maximum of 0.
func MaxMagnitudes(loads []Load) Maxima {
	var m Maxima
	for _, l := range loads {
		mag := math.Abs(l.Magnitude)
		if l.EndMagnitude != nil {
			mag = math.Max(mag, math.Abs(*l.EndMagnitude))
		}
		switch Classify(l) {
		case Point:
			m.point = math.Max(m.point, mag)
		case Distributed:
			m.distributed = math.Max(m.distributed, mag)
		case PointMoment:
			m.moment = math.Max(m.moment, mag)
		}
	}
	return m
}

// DegenerateScalingError reports an attempt to scale a load against an
// empty or zero-valued category maximum. Scaling must never silently
// produce a NaN or infinite depth.
type DegenerateScalingError struct {
	Category Category
}

func (e *DegenerateScalingError) Error() string {
	return fmt.Sprintf("cannot scale load: category %s has zero normalization maximum", e.Category)
}

// Depths is a load's visual extent after scaling. Point loads and moments
// have Start == End; distributed loads scale each control magnitude
// independently. Depths are magnitudes for drawing purposes: the original
// sign is discarded here and conveyed separately through the load itself.
type Depths struct {
	Start, End float64
}

// ScaledDepths rescales a load's magnitude(s) into a visual depth bounded
// by maxDepth, proportional to its category's normalization maximum.
// A distributed load without an explicit end magnitude is uniform: its end
// depth equals its start depth.
func (m Maxima) ScaledDepths(l Load, maxDepth float64) (Depths, error) {
	cat := Classify(l)
	catMax := m.of(cat)
	if catMax == 0 {
		return Depths{}, &DegenerateScalingError{Category: cat}
	}
	start := maxDepth * math.Abs(l.Magnitude) / catMax
	if cat != Distributed {
		return Depths{Start: start, End: start}, nil
	}
	end := start
	if l.EndMagnitude != nil {
		end = maxDepth * math.Abs(*l.EndMagnitude) / catMax
	}
	return Depths{Start: start, End: end}, nil
}
