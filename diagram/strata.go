package diagram

import "github.com/beamz/beamplot/beam"

// Strata are the vertical bands a diagram is laid out in, derived from the
// beam's visual depth and total length. A zero-depth beam is a centerline,
// so the load band falls back to a fraction of the beam length.
type Strata struct {
	MaxLoadDepth      float64
	BeamTop           float64
	BeamBottom        float64
	Gap               float64
	SupportDepth      float64
	GroundDepth       float64
	DisplacementDepth float64
	DimensionDepth    float64
}

// StrataFor derives the band table for a beam.
func StrataFor(b *beam.Beam) Strata {
	maxLoad := b.Depth * 4 / 3
	if maxLoad == 0 {
		maxLoad = b.Length() / 10
	}
	return Strata{
		MaxLoadDepth:      maxLoad,
		BeamTop:           b.Depth / 2,
		BeamBottom:        -b.Depth / 2,
		Gap:               b.Depth * 0.05,
		SupportDepth:      b.Depth / 2,
		GroundDepth:       b.Depth / 4,
		DisplacementDepth: b.Depth * 2 / 3,
		DimensionDepth:    b.Depth / 2,
	}
}
