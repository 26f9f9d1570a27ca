// Package diagram assembles a beam model into primitive drawing
// instructions: polylines, filled regions, placed symbol outlines and
// text, emitted against a Canvas. The canvas owns all pixel, font and
// color concerns; instructions carry a tag so the canvas can color
// consistently per load label.
package diagram

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/beamz/beamplot/beam"
	"github.com/beamz/beamplot/paths"
)

// DimTick is the symbol-source key for the dimension tick glyph.
const DimTick = "DIM_TICK"

// Canvas receives primitive drawing instructions. Implementations decide
// stroke, fill, color (stable per tag) and text rendering.
type Canvas interface {
	Polyline(tag string, pts []paths.Vec2)
	FillPolygon(tag string, pts []paths.Vec2)
	Symbol(tag string, o *paths.Outline, m paths.Affine)
	Text(tag string, at paths.Vec2, s string)
}

// SymbolSource supplies the parsed outline for a named symbol. Keys are
// fixity names plus miscellaneous constants such as DimTick. A missing
// key is a configuration error.
type SymbolSource interface {
	Outline(name string) (*paths.Outline, error)
}

// Options tune display policy. Zero values derive defaults from the
// beam's strata.
type Options struct {
	SymbolScale     float64 // uniform scale for support/joint symbols
	DimensionOffset float64 // y of the dimension line
}

// A Renderer draws one beam onto one canvas.
type Renderer struct {
	beam    *beam.Beam
	symbols SymbolSource
	canvas  Canvas
	strata  Strata
	opts    Options
}

// New prepares a renderer. The beam is already resolved; nothing here can
// fail before drawing.
func New(b *beam.Beam, symbols SymbolSource, canvas Canvas, opts Options) *Renderer {
	return &Renderer{
		beam:    b,
		symbols: symbols,
		canvas:  canvas,
		strata:  StrataFor(b),
		opts:    opts,
	}
}

// Draw emits the whole diagram: beam profile, loads, supports, joints,
// node labels and dimensions. A failure is local to its entity: one bad
// load or missing symbol skips that entity, the rest of the diagram is
// still drawn, and the joined errors are returned.
func (r *Renderer) Draw() error {
	var errs []error
	r.drawProfile()
	errs = append(errs, r.drawLoads()...)
	errs = append(errs, r.drawSupports()...)
	errs = append(errs, r.drawJoints()...)
	errs = append(errs, r.drawDimensions()...)
	return errors.Join(errs...)
}

func (r *Renderer) drawProfile() {
	if len(r.beam.Nodes) == 0 {
		return
	}
	x0 := r.beam.Nodes[0].X
	x1 := r.beam.Nodes[len(r.beam.Nodes)-1].X
	d := r.beam.Depth
	if d == 0 {
		r.canvas.Polyline("beam", []paths.Vec2{{x0, 0}, {x1, 0}})
		return
	}
	r.canvas.Polyline("beam", []paths.Vec2{
		{x0, 0}, {x0, d / 2}, {x1, d / 2}, {x1, 0}, {x1, -d / 2}, {x0, -d / 2}, {x0, 0},
	})
}

func loadTag(l beam.Load) string {
	if l.Label != nil && l.Label.Text != "" {
		return "load:" + l.Label.Text
	}
	return "load"
}

func (r *Renderer) drawLoads() []error {
	maxima := beam.MaxMagnitudes(r.beam.Loads)
	y := r.strata.BeamTop
	var errs []error
	for i, l := range r.beam.Loads {
		depths, err := maxima.ScaledDepths(l, r.strata.MaxLoadDepth)
		if err != nil {
			errs = append(errs, fmt.Errorf("load %d: %w", i, err))
			continue
		}
		tag := loadTag(l)
		switch beam.Classify(l) {
		case beam.Point:
			r.drawArrow(tag, paths.Vec2{l.Start.X, y}, depths.Start, l.Alpha, l.Magnitude >= 0)
		case beam.Distributed:
			r.drawRegion(tag, l, depths, y)
		case beam.PointMoment:
			r.drawMoment(tag, l, depths.Start)
		}
	}
	return errs
}

func applyAll(m paths.Affine, pts []paths.Vec2) []paths.Vec2 {
	out := make([]paths.Vec2, len(pts))
	for i, p := range pts {
		out[i] = m.Apply(p)
	}
	return out
}

// drawArrow draws a load arrow occupying the band from tip (on the beam
// surface) to depth above it. The head sits at the tip for downward loads
// and at the tail for upward ones; alpha rotates the whole arrow about
// the tip.
func (r *Renderer) drawArrow(tag string, tip paths.Vec2, depth, alpha float64, up bool) {
	h := depth * 0.25
	x, y := tip[0], tip[1]
	shaft := []paths.Vec2{{x, y + depth}, {x, y}}
	var head []paths.Vec2
	if up {
		head = []paths.Vec2{{x - h/2, y + depth - h}, {x, y + depth}, {x + h/2, y + depth - h}}
	} else {
		head = []paths.Vec2{{x - h/2, y + h}, {x, y}, {x + h/2, y + h}}
	}
	if alpha != 0 {
		m := paths.Translate(x, y).Compose(paths.Rotate(alpha)).Compose(paths.Translate(-x, -y))
		shaft = applyAll(m, shaft)
		head = applyAll(m, head)
	}
	r.canvas.Polyline(tag, shaft)
	r.canvas.Polyline(tag, head)
}

// arrowCount is the display policy for interior arrows across a
// distributed region: a step function of the region's length as a
// fraction of the beam length, monotonic non-decreasing.
func arrowCount(frac float64) int {
	switch {
	case frac <= 0:
		return 1
	case frac < 0.1:
		return 2
	case frac < 0.25:
		return 3
	case frac < 0.5:
		return 5
	default:
		return 8
	}
}

func (r *Renderer) drawRegion(tag string, l beam.Load, d beam.Depths, y float64) {
	x0, x1 := l.Start.X, l.End.X
	if x0 == x1 {
		// Zero-span region degenerates to the point case.
		r.drawArrow(tag, paths.Vec2{x0, y}, d.Start, l.Alpha, l.Magnitude >= 0)
		return
	}
	r.canvas.FillPolygon(tag, []paths.Vec2{
		{x0, y}, {x0, y + d.Start}, {x1, y + d.End}, {x1, y},
	})
	frac := 1.0
	if length := r.beam.Length(); length > 0 {
		frac = math.Abs(x1-x0) / length
	}
	n := arrowCount(frac)
	for i := 0; i < n; i++ {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		x := x0 + (x1-x0)*t
		depth := d.Start + (d.End-d.Start)*t
		r.drawArrow(tag, paths.Vec2{x, y}, depth, l.Alpha, l.Magnitude >= 0)
	}
}

// drawMoment draws a point moment as a circular arc about the node on the
// beam axis, swept counter-clockwise for positive magnitudes, with an
// arrowhead tangent to the arc's end.
func (r *Renderer) drawMoment(tag string, l beam.Load, depth float64) {
	const segments = 24
	c := paths.Vec2{l.Start.X, 0}
	radius := depth / 2
	start, sweep := -90.0, 270.0
	if l.Magnitude < 0 {
		start, sweep = 270.0, -270.0
	}
	pts := make([]paths.Vec2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		th := (start + sweep*float64(i)/segments) * math.Pi / 180
		pts = append(pts, paths.Vec2{c[0] + radius*math.Cos(th), c[1] + radius*math.Sin(th)})
	}
	r.canvas.Polyline(tag, pts)

	p0, p1 := pts[len(pts)-2], pts[len(pts)-1]
	dir := paths.Vec2{p1[0] - p0[0], p1[1] - p0[1]}
	n := math.Hypot(dir[0], dir[1])
	if n == 0 {
		return
	}
	dir = paths.Vec2{dir[0] / n, dir[1] / n}
	perp := paths.Vec2{-dir[1], dir[0]}
	h := radius * 0.4
	r.canvas.Polyline(tag, []paths.Vec2{
		{p1[0] - dir[0]*h + perp[0]*h/2, p1[1] - dir[1]*h + perp[1]*h/2},
		p1,
		{p1[0] - dir[0]*h - perp[0]*h/2, p1[1] - dir[1]*h - perp[1]*h/2},
	})
}

// symbolScale picks the uniform scale for a symbol outline: the configured
// scale when set, otherwise the scale that fits the symbol into its band.
func (r *Renderer) scaleFor(o *paths.Outline, band float64) float64 {
	if r.opts.SymbolScale > 0 {
		return r.opts.SymbolScale
	}
	b := o.Bounds()
	height := b.Max[1] - b.Min[1]
	if height == 0 {
		return 1
	}
	if band == 0 {
		band = r.strata.MaxLoadDepth / 2
	}
	if band == 0 {
		return 1
	}
	return band / height
}

func (r *Renderer) drawSupports() []error {
	var errs []error
	for _, s := range r.beam.Supports {
		o, err := r.symbols.Outline(s.Fixity.String())
		if err != nil {
			errs = append(errs, fmt.Errorf("support at x=%g: %w", s.Node.X, err))
			continue
		}
		target := paths.Vec2{s.Node.X, r.strata.BeamBottom}
		m, err := paths.Place(o, "top center", target, r.scaleFor(o, r.strata.SupportDepth))
		if err != nil {
			errs = append(errs, fmt.Errorf("support at x=%g: %w", s.Node.X, err))
			continue
		}
		r.canvas.Symbol("support", o, m)
		if lb := s.Node.Label; lb != nil && lb.Text != "" {
			at := paths.Vec2{s.Node.X + lb.XOffset, r.strata.BeamBottom + lb.YOffset}
			r.canvas.Text("support", at, lb.Text)
		}
	}
	return errs
}

func (r *Renderer) drawJoints() []error {
	var errs []error
	for _, j := range r.beam.Joints {
		if j.Fixity == beam.Fixed {
			// A fixed joint is a continuous beam: nothing to draw.
			continue
		}
		o, err := r.symbols.Outline(j.Fixity.String())
		if err != nil {
			errs = append(errs, fmt.Errorf("joint at x=%g: %w", j.Node.X, err))
			continue
		}
		target := paths.Vec2{j.Node.X, 0}
		m, err := paths.Place(o, "center center", target, r.scaleFor(o, r.strata.SupportDepth))
		if err != nil {
			errs = append(errs, fmt.Errorf("joint at x=%g: %w", j.Node.X, err))
			continue
		}
		r.canvas.Symbol("joint", o, m)
	}
	return errs
}

func (r *Renderer) drawDimensions() []error {
	if len(r.beam.Dimensions) == 0 {
		return nil
	}
	var errs []error
	yOff := r.opts.DimensionOffset
	if yOff == 0 {
		yOff = r.strata.BeamBottom - r.strata.MaxLoadDepth/2
	}

	tick, err := r.symbols.Outline(DimTick)
	if err != nil {
		errs = append(errs, fmt.Errorf("dimension ticks: %w", err))
	}
	var line []paths.Vec2
	for _, n := range r.beam.Dimensions {
		at := paths.Vec2{n.X, yOff}
		line = append(line, at)
		if tick != nil {
			m, perr := paths.Place(tick, "center center", at, r.scaleFor(tick, r.strata.DimensionDepth))
			if perr != nil {
				errs = append(errs, fmt.Errorf("dimension tick at x=%g: %w", n.X, perr))
				continue
			}
			r.canvas.Symbol("dimension", tick, m)
		}
	}
	if len(line) >= 2 {
		r.canvas.Polyline("dimension", line)
	}

	textY := yOff - r.strata.MaxLoadDepth*0.15
	x := r.beam.Nodes[0].X
	for _, span := range r.beam.Spans() {
		r.canvas.Text("dimension", paths.Vec2{x + span/2, textY}, strconv.FormatFloat(span, 'g', -1, 64))
		x += span
	}
	return errs
}
