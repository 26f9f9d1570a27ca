package paths

import "math"

// Affine is an immutable 2d affine transform held as a homogeneous
// 3x3 matrix. Transforms compose rightmost-applied-first:
// a.Compose(b).Apply(v) == a.Apply(b.Apply(v)), and that convention
// holds across the whole engine.
type Affine struct {
	m [3][3]float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{m: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Translate returns a transform that moves points by (x, y).
func Translate(x, y float64) Affine {
	return Affine{m: [3][3]float64{
		{1, 0, x},
		{0, 1, y},
		{0, 0, 1},
	}}
}

// Scale returns a transform that scales points by (sx, sy) about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{m: [3][3]float64{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}}
}

// FlipY returns a transform that mirrors points across the x axis.
// Path-description data uses a top-down y axis; diagram space is bottom-up.
func FlipY() Affine {
	return Scale(1, -1)
}

// Rotate returns a transform that rotates points counter-clockwise by
// the given angle in degrees, about the origin.
func Rotate(degrees float64) Affine {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Affine{m: [3][3]float64{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}}
}

// Compose returns the transform that applies b first and then a.
func (a Affine) Compose(b Affine) Affine {
	var r Affine
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r.m[i][k] += a.m[i][j] * b.m[j][k]
			}
		}
	}
	return r
}

// Apply transforms a single point.
func (a Affine) Apply(v Vec2) Vec2 {
	x := [3]float64{v[0], v[1], 1}
	var r [3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i] += a.m[i][j] * x[j]
		}
	}
	return Vec2{r[0] / r[2], r[1] / r[2]}
}

// ApplyBounds transforms a bounding box, returning the axis-aligned box
// that contains the transformed corners.
func (a Affine) ApplyBounds(b Bounds) Bounds {
	corners := [4]Vec2{
		{b.Min[0], b.Min[1]},
		{b.Min[0], b.Max[1]},
		{b.Max[0], b.Min[1]},
		{b.Max[0], b.Max[1]},
	}
	inf := math.Inf(1)
	min := Vec2{inf, inf}
	max := Vec2{-inf, -inf}
	for _, c := range corners {
		v := a.Apply(c)
		min[0] = math.Min(min[0], v[0])
		min[1] = math.Min(min[1], v[1])
		max[0] = math.Max(max[0], v[0])
		max[1] = math.Max(max[1], v[1])
	}
	return Bounds{Min: min, Max: max}
}
