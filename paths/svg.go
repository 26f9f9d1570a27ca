package paths

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/JoshVarga/svgparser"
	"golang.org/x/net/html/charset"
)

// This file reads symbol outlines out of SVG documents. It is deliberately
// limited: path, line and group elements with translate/scale transforms
// are understood, which covers the symbol assets this engine consumes.

type xformScannerState int

const (
	xfsName xformScannerState = 1 + iota
	xfsBra
	xfsMaybeComma
	xfsArg
)

func parseFloats(a []string) ([]float64, error) {
	var r []float64
	for _, x := range a {
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, err
		}
		r = append(r, f)
	}
	return r, nil
}

func parseSingleXform(name string, args []string) (Affine, error) {
	switch name {
	case "translate":
		fa, err := parseFloats(args)
		if err != nil {
			return Affine{}, err
		}
		if len(fa) != 1 && len(fa) != 2 {
			return Affine{}, fmt.Errorf("translate should have one or two parameters: got %s", args)
		}
		if len(fa) == 1 {
			fa = append(fa, 0)
		}
		return Translate(fa[0], fa[1]), nil
	case "scale":
		fa, err := parseFloats(args)
		if err != nil {
			return Affine{}, err
		}
		if len(fa) != 1 && len(fa) != 2 {
			return Affine{}, fmt.Errorf("scale should have one or two parameters: got %s", args)
		}
		if len(fa) == 1 {
			fa = append(fa, fa[0])
		}
		return Scale(fa[0], fa[1]), nil
	default:
		return Affine{}, fmt.Errorf("unknown transform function %q", name)
	}
}

func parseSVGXForm(x string) (Affine, error) {
	var s scanner.Scanner
	xf := Identity()
	s.Init(strings.NewReader(x))
	state := xfsName
	fname := ""
	var args []string
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		switch state {
		case xfsName:
			if tok != scanner.Ident {
				return Affine{}, fmt.Errorf("failed to parse transform: expected transform name, but got %q", s.TokenText())
			}
			fname = s.TokenText()
			state = xfsBra
		case xfsBra:
			if tok != '(' {
				return Affine{}, fmt.Errorf("failed to parse transform: expected (, but got %q", s.TokenText())
			}
			state = xfsArg
		case xfsMaybeComma:
			if tok == ',' {
				continue
			}
			fallthrough
		case xfsArg:
			if tok == ')' {
				newxform, err := parseSingleXform(fname, args)
				if err != nil {
					return Affine{}, err
				}
				xf = xf.Compose(newxform)
				state = xfsName
				args = nil
			} else if tok == scanner.Float || tok == scanner.Int {
				args = append(args, s.TokenText())
				state = xfsMaybeComma
			} else {
				return Affine{}, fmt.Errorf("unexpected token %q parsing transform %q", s.TokenText(), x)
			}
		}
	}
	if state != xfsName {
		return Affine{}, fmt.Errorf("failed to parse transform: %q", x)
	}
	return xf, nil
}

func subPathsFromLine(xf Affine, e *svgparser.Element) ([]SubPath, error) {
	var ferr error
	pf := func(s string) float64 {
		if ferr != nil {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		ferr = err
		return f
	}
	x1 := pf(e.Attributes["x1"])
	x2 := pf(e.Attributes["x2"])
	y1 := pf(e.Attributes["y1"])
	y2 := pf(e.Attributes["y2"])
	if ferr != nil {
		return nil, ferr
	}
	return []SubPath{{Cmds: []Command{
		{Op: MoveTo, Pts: []Vec2{xf.Apply(Vec2{x1, y1})}},
		{Op: LineTo, Pts: []Vec2{xf.Apply(Vec2{x2, y2})}},
	}}}, nil
}

func applyToSubPaths(xf Affine, subs []SubPath) {
	for _, sp := range subs {
		for _, c := range sp.Cmds {
			for i, p := range c.Pts {
				c.Pts[i] = xf.Apply(p)
			}
		}
	}
}

func collectSubPaths(subs *[]SubPath, xform Affine, e *svgparser.Element) error {
	for _, c := range e.Children {
		switch c.Name {
		case "g":
			gxf, err := parseSVGXForm(c.Attributes["transform"])
			if err != nil {
				return err
			}
			if err := collectSubPaths(subs, xform.Compose(gxf), c); err != nil {
				return err
			}
		case "path":
			s, err := ParsePathData(c.Attributes["d"])
			if err != nil {
				return err
			}
			applyToSubPaths(xform, s)
			*subs = append(*subs, s...)
		case "line":
			s, err := subPathsFromLine(xform, c)
			if err != nil {
				return err
			}
			*subs = append(*subs, s...)
		case "defs":
			continue
		default:
			fmt.Fprintf(os.Stderr, "unknown child node type %q\n", c.Name)
		}
	}
	return nil
}

// FromSVG extracts a single compound outline from an SVG document: every
// path and line element contributes its sub-paths, in document order, with
// group transforms applied. This provides only limited SVG parsing support,
// and will fail or produce incorrect results if the document uses features
// it doesn't understand.
func FromSVG(r io.Reader) (*Outline, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	decoder.CharsetReader = charset.NewReaderLabel
	elt, err := svgparser.DecodeFirst(decoder)
	if err != nil {
		return nil, err
	}
	if err := elt.Decode(decoder); err != nil && err != io.EOF {
		return nil, err
	}
	var subs []SubPath
	if err := collectSubPaths(&subs, Identity(), elt); err != nil {
		return nil, err
	}
	return NewOutline(subs), nil
}

// PathData renders the outline back into path-description form, one string
// with all sub-paths. ParsePathData(o.PathData()) reproduces the outline.
func (o *Outline) PathData() string {
	var b strings.Builder
	g := func(f float64) string {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	for _, sp := range o.subs {
		for _, c := range sp.Cmds {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			switch c.Op {
			case MoveTo:
				b.WriteByte('M')
			case LineTo:
				b.WriteByte('L')
			case QuadTo:
				b.WriteByte('Q')
			case CubicTo:
				b.WriteByte('C')
			case ClosePath:
				b.WriteByte('Z')
			}
			for _, p := range c.Pts {
				fmt.Fprintf(&b, " %s %s", g(p[0]), g(p[1]))
			}
		}
	}
	return b.String()
}
