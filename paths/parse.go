package paths

import (
	"fmt"
	"strconv"
)

// ParseError reports a malformed path-description string, identifying the
// offending token and its byte offset.
type ParseError struct {
	Token  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("path data: %s: %q at offset %d", e.Msg, e.Token, e.Offset)
	}
	return fmt.Sprintf("path data: %s at offset %d", e.Msg, e.Offset)
}

// Path-description commands: M (move), L (line), Q (quadratic), C (cubic),
// Z (close). Uppercase coordinates are absolute; lowercase are offsets from
// the last vertex of the previous command. Numbers are separated by commas,
// whitespace, or a sign starting the next number.

func opForLetter(c byte) (Op, bool) {
	switch c {
	case 'M', 'm':
		return MoveTo, true
	case 'L', 'l':
		return LineTo, true
	case 'Q', 'q':
		return QuadTo, true
	case 'C', 'c':
		return CubicTo, true
	case 'Z', 'z':
		return ClosePath, true
	}
	return 0, false
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ','
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func skipSeparators(d string, i int) int {
	for i < len(d) && isSeparator(d[i]) {
		i++
	}
	return i
}

// scanNumber extends a numeric token starting at i. A sign is part of the
// token only at its start or directly after an exponent marker; anywhere
// else it begins the next number.
func scanNumber(d string, i int) (string, int) {
	start := i
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	for i < len(d) {
		c := d[i]
		if c >= '0' && c <= '9' || c == '.' {
			i++
			continue
		}
		if (c == 'e' || c == 'E') && i > start {
			i++
			if i < len(d) && (d[i] == '+' || d[i] == '-') {
				i++
			}
			continue
		}
		break
	}
	return d[start:i], i
}

// ParsePathData parses one path-description string into sub-paths.
// Every move begins a new sub-path; extra coordinate pairs after a move
// are line segments. It never drops trailing garbage: anything that is not
// a recognized command or a well-formed coordinate is an error.
func ParsePathData(d string) ([]SubPath, error) {
	var subs []SubPath
	var cur []Command
	var last Vec2
	havePrev := false

	flush := func() {
		if len(cur) > 0 {
			subs = append(subs, SubPath{Cmds: cur})
			cur = nil
		}
	}

	i := 0
	for {
		i = skipSeparators(d, i)
		if i >= len(d) {
			break
		}
		if !isLetter(d[i]) {
			tok, _ := scanNumber(d, i)
			if tok == "" {
				tok = string(d[i])
			}
			return nil, &ParseError{Token: tok, Offset: i, Msg: "expected command letter"}
		}
		op, ok := opForLetter(d[i])
		if !ok {
			return nil, &ParseError{Token: string(d[i]), Offset: i, Msg: "unrecognized command"}
		}
		relative := d[i] >= 'a' && d[i] <= 'z'
		cmdOffset := i
		i++

		var coords []float64
		for {
			i = skipSeparators(d, i)
			if i >= len(d) || isLetter(d[i]) {
				break
			}
			tok, next := scanNumber(d, i)
			f, err := strconv.ParseFloat(tok, 64)
			if tok == "" || err != nil {
				if tok == "" {
					tok = string(d[i])
				}
				return nil, &ParseError{Token: tok, Offset: i, Msg: "malformed number"}
			}
			coords = append(coords, f)
			i = next
		}

		if op == ClosePath {
			if len(coords) != 0 {
				return nil, &ParseError{Token: "Z", Offset: cmdOffset, Msg: "close takes no coordinates"}
			}
			if len(cur) == 0 {
				return nil, &ParseError{Token: "Z", Offset: cmdOffset, Msg: "close with no open sub-path"}
			}
			cur = append(cur, Command{Op: ClosePath})
			continue
		}

		if len(coords) == 0 {
			return nil, &ParseError{Token: string(d[cmdOffset]), Offset: cmdOffset, Msg: "command has no coordinates"}
		}
		if len(coords)%2 != 0 {
			return nil, &ParseError{Token: string(d[cmdOffset]), Offset: cmdOffset, Msg: "coordinate count not divisible by 2"}
		}
		pts := make([]Vec2, len(coords)/2)
		for j := range pts {
			pts[j] = Vec2{coords[2*j], coords[2*j+1]}
		}
		// Relative coordinates resolve against the last vertex of the
		// previous command, not the sub-path start.
		if relative && havePrev {
			for j := range pts {
				pts[j][0] += last[0]
				pts[j][1] += last[1]
			}
		}

		switch op {
		case MoveTo:
			flush()
			cur = append(cur, Command{Op: MoveTo, Pts: pts[:1]})
			for _, p := range pts[1:] {
				cur = append(cur, Command{Op: LineTo, Pts: []Vec2{p}})
			}
		case LineTo, QuadTo, CubicTo:
			if len(cur) == 0 {
				return nil, &ParseError{Token: string(d[cmdOffset]), Offset: cmdOffset, Msg: "command before initial move"}
			}
			n := op.arity()
			if len(pts)%n != 0 {
				return nil, &ParseError{
					Token:  string(d[cmdOffset]),
					Offset: cmdOffset,
					Msg:    fmt.Sprintf("%s segments need %d points each", op, n),
				}
			}
			for j := 0; j < len(pts); j += n {
				cur = append(cur, Command{Op: op, Pts: pts[j : j+n]})
			}
		}
		last = pts[len(pts)-1]
		havePrev = true
	}
	flush()
	return subs, nil
}

// ParseOutline parses one or more path-description strings (for example
// the several disjoint shapes of a single symbol) and concatenates them
// into one compound outline, preserving sub-path boundaries.
func ParseOutline(ds ...string) (*Outline, error) {
	var subs []SubPath
	for _, d := range ds {
		s, err := ParsePathData(d)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s...)
	}
	return NewOutline(subs), nil
}
