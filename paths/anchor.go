package paths

import (
	"fmt"
	"strings"
)

// InvalidAnchorError reports an anchor spec that does not parse into
// exactly one vertical and one horizontal token.
type InvalidAnchorError struct {
	Spec string
}

func (e *InvalidAnchorError) Error() string {
	return fmt.Sprintf("invalid anchor %q: want two space-separated tokens from top, bottom, left, right, center", e.Spec)
}

// An Anchor designates a point on a bounding box: one of nine positions
// combining {left, center, right} with {bottom, center, top}.
type Anchor struct {
	h, v int // -1 left/bottom, 0 center, 1 right/top
}

// ParseAnchor parses a two-token anchor spec such as "top center" or
// "left bottom". Tokens are order-independent; "center" fills whichever
// slot the other token leaves open, so "center center" is the centroid.
func ParseAnchor(s string) (Anchor, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) != 2 {
		return Anchor{}, &InvalidAnchorError{Spec: s}
	}
	var a Anchor
	hSet, vSet := false, false
	centers := 0
	for _, tok := range fields {
		switch tok {
		case "left", "right":
			if hSet {
				return Anchor{}, &InvalidAnchorError{Spec: s}
			}
			hSet = true
			if tok == "left" {
				a.h = -1
			} else {
				a.h = 1
			}
		case "bottom", "top":
			if vSet {
				return Anchor{}, &InvalidAnchorError{Spec: s}
			}
			vSet = true
			if tok == "bottom" {
				a.v = -1
			} else {
				a.v = 1
			}
		case "center":
			centers++
		default:
			return Anchor{}, &InvalidAnchorError{Spec: s}
		}
	}
	if !hSet && centers > 0 {
		hSet = true
		centers--
	}
	if !vSet && centers > 0 {
		vSet = true
		centers--
	}
	if !hSet || !vSet || centers != 0 {
		return Anchor{}, &InvalidAnchorError{Spec: s}
	}
	return a, nil
}

// Point returns the anchor's coordinates on a bounding box.
func (a Anchor) Point(b Bounds) Vec2 {
	p := b.Center()
	switch a.h {
	case -1:
		p[0] = b.Min[0]
	case 1:
		p[0] = b.Max[0]
	}
	switch a.v {
	case -1:
		p[1] = b.Min[1]
	case 1:
		p[1] = b.Max[1]
	}
	return p
}

// Place computes the single transform that positions an outline in diagram
// space: flip the top-down outline coordinates, translate the chosen anchor
// of the flipped bounding box to the origin, scale uniformly, and translate
// the anchor onto the target. The order is fixed; the anchor must be taken
// on the already-flipped bounds, since flipping changes which corner is
// "top".
func Place(o *Outline, anchorSpec string, target Vec2, scale float64) (Affine, error) {
	a, err := ParseAnchor(anchorSpec)
	if err != nil {
		return Affine{}, err
	}
	flip := FlipY()
	ap := a.Point(flip.ApplyBounds(o.Bounds()))
	return Translate(target[0], target[1]).
		Compose(Scale(scale, scale)).
		Compose(Translate(-ap[0], -ap[1])).
		Compose(flip), nil
}
