// Package render provides canvas implementations for beam diagrams.
// The SVG canvas buffers primitive instructions and writes a standalone
// SVG document, mapping the diagram's bottom-up y axis onto SVG's
// top-down one.
package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/beamz/beamplot/paths"
)

// palette is cycled through for load tags, so every load label keeps one
// color across the whole diagram. Structural layers stay black.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

var structural = map[string]bool{
	"beam":      true,
	"support":   true,
	"joint":     true,
	"dimension": true,
}

type primKind int

const (
	primLine primKind = iota
	primFill
	primSymbol
	primText
)

type prim struct {
	kind    primKind
	tag     string
	pts     []paths.Vec2
	outline *paths.Outline
	at      paths.Vec2
	text    string
}

// SVG implements diagram.Canvas, buffering instructions until Write.
type SVG struct {
	// Margin is added around the tight content bounds. Zero means a
	// tenth of the largest content dimension.
	Margin float64

	prims  []prim
	colors map[string]string
	next   int
}

// NewSVG returns an empty SVG canvas.
func NewSVG() *SVG {
	return &SVG{colors: map[string]string{}}
}

func (c *SVG) colorFor(tag string) string {
	if structural[tag] {
		return "#000000"
	}
	if col, ok := c.colors[tag]; ok {
		return col
	}
	col := palette[c.next%len(palette)]
	c.next++
	c.colors[tag] = col
	return col
}

// Polyline buffers an open stroked path.
func (c *SVG) Polyline(tag string, pts []paths.Vec2) {
	c.colorFor(tag)
	c.prims = append(c.prims, prim{kind: primLine, tag: tag, pts: pts})
}

// FillPolygon buffers a closed filled region.
func (c *SVG) FillPolygon(tag string, pts []paths.Vec2) {
	c.colorFor(tag)
	c.prims = append(c.prims, prim{kind: primFill, tag: tag, pts: pts})
}

// Symbol buffers a placed outline; the transform is applied immediately.
func (c *SVG) Symbol(tag string, o *paths.Outline, m paths.Affine) {
	c.colorFor(tag)
	c.prims = append(c.prims, prim{kind: primSymbol, tag: tag, outline: o.Transform(m)})
}

// Text buffers an annotation centered at a diagram-space point.
func (c *SVG) Text(tag string, at paths.Vec2, s string) {
	c.colorFor(tag)
	c.prims = append(c.prims, prim{kind: primText, tag: tag, at: at, text: s})
}

func (c *SVG) contentBounds() (paths.Bounds, bool) {
	inf := math.Inf(1)
	min := paths.Vec2{inf, inf}
	max := paths.Vec2{-inf, -inf}
	n := 0
	grow := func(v paths.Vec2) {
		n++
		min[0] = math.Min(min[0], v[0])
		min[1] = math.Min(min[1], v[1])
		max[0] = math.Max(max[0], v[0])
		max[1] = math.Max(max[1], v[1])
	}
	for _, p := range c.prims {
		for _, v := range p.pts {
			grow(v)
		}
		if p.outline != nil && !p.outline.Empty() {
			b := p.outline.Bounds()
			grow(b.Min)
			grow(b.Max)
		}
		if p.kind == primText {
			grow(p.at)
		}
	}
	if n == 0 {
		return paths.Bounds{}, false
	}
	return paths.Bounds{Min: min, Max: max}, true
}

// Write renders the buffered diagram as an SVG document.
func (c *SVG) Write(w io.Writer) error {
	var werr error
	bi := bufio.NewWriter(w)
	wr := func(f string, args ...interface{}) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bi, f, args...)
	}

	b, ok := c.contentBounds()
	if !ok {
		b = paths.Bounds{Max: paths.Vec2{1, 1}}
	}
	maxDim := math.Max(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1])
	if maxDim == 0 {
		maxDim = 1
	}
	margin := c.Margin
	if margin == 0 {
		margin = maxDim / 10
	}
	// Map the bottom-up diagram y axis into SVG's top-down space.
	flipY := func(y float64) float64 { return b.Min[1] + b.Max[1] - y }
	flip := paths.Translate(0, b.Min[1]+b.Max[1]).Compose(paths.Scale(1, -1))
	sw := maxDim / 200
	font := maxDim / 25

	wr(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="%g %g %g %g">`,
		b.Min[0]-margin, b.Min[1]-margin,
		b.Max[0]-b.Min[0]+2*margin, b.Max[1]-b.Min[1]+2*margin)
	wr("\n")

	points := func(pts []paths.Vec2) {
		for i, v := range pts {
			if i > 0 {
				wr(" ")
			}
			wr("%g,%g", v[0], flipY(v[1]))
		}
	}
	for _, p := range c.prims {
		col := c.colorFor(p.tag)
		switch p.kind {
		case primLine:
			wr(`<polyline fill="none" stroke="%s" stroke-width="%g" points="`, col, sw)
			points(p.pts)
			wr("\"/>\n")
		case primFill:
			wr(`<polygon fill="%s" fill-opacity="0.25" stroke="%s" stroke-width="%g" points="`, col, col, sw)
			points(p.pts)
			wr("\"/>\n")
		case primSymbol:
			wr(`<path fill="none" stroke="%s" stroke-width="%g" d="%s"/>`,
				col, sw, p.outline.Transform(flip).PathData())
			wr("\n")
		case primText:
			wr(`<text x="%g" y="%g" font-size="%g" text-anchor="middle" fill="%s">%s</text>`,
				p.at[0], flipY(p.at[1]), font, col, p.text)
			wr("\n")
		}
	}
	wr("</svg>\n")
	if werr == nil {
		werr = bi.Flush()
	}
	return werr
}
