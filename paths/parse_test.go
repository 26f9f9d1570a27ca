package paths

import (
	"errors"
	"reflect"
	"testing"
)

// helpers to build expected command streams tersely.
func cmd(op Op, coords ...float64) Command {
	c := Command{Op: op}
	for i := 0; i < len(coords); i += 2 {
		c.Pts = append(c.Pts, Vec2{coords[i], coords[i+1]})
	}
	return c
}

func sub(cmds ...Command) SubPath {
	return SubPath{Cmds: cmds}
}

func TestParsePathData(t *testing.T) {
	cases := []struct {
		name string
		d    string
		want []SubPath
	}{
		{
			name: "absolute with close",
			d:    "M 0 0 L 10 0 L 10 10 Z",
			want: []SubPath{sub(cmd(MoveTo, 0, 0), cmd(LineTo, 10, 0), cmd(LineTo, 10, 10), cmd(ClosePath))},
		},
		{
			name: "comma separated",
			d:    "M0,0 L10,0",
			want: []SubPath{sub(cmd(MoveTo, 0, 0), cmd(LineTo, 10, 0))},
		},
		{
			name: "move with implicit lines",
			d:    "M 1 2 3 4 5 6",
			want: []SubPath{sub(cmd(MoveTo, 1, 2), cmd(LineTo, 3, 4), cmd(LineTo, 5, 6))},
		},
		{
			name: "relative against previous command's last vertex",
			d:    "M 10 10 l 5 0 5 5",
			want: []SubPath{sub(cmd(MoveTo, 10, 10), cmd(LineTo, 15, 10), cmd(LineTo, 15, 15))},
		},
		{
			name: "relative quadratic",
			d:    "M 2 3 q 1 1 2 0",
			want: []SubPath{sub(cmd(MoveTo, 2, 3), cmd(QuadTo, 3, 4, 4, 3))},
		},
		{
			name: "leading relative move is absolute",
			d:    "m 3 4 l 1 0",
			want: []SubPath{sub(cmd(MoveTo, 3, 4), cmd(LineTo, 4, 4))},
		},
		{
			name: "signs separate numbers",
			d:    "M10-5L-2-3",
			want: []SubPath{sub(cmd(MoveTo, 10, -5), cmd(LineTo, -2, -3))},
		},
		{
			name: "exponents",
			d:    "M 1e2 -1.5e-1",
			want: []SubPath{sub(cmd(MoveTo, 100, -0.15))},
		},
		{
			name: "cubic segments",
			d:    "M 0 0 C 1 1 2 2 3 0 4 -1 5 -2 6 0",
			want: []SubPath{sub(cmd(MoveTo, 0, 0), cmd(CubicTo, 1, 1, 2, 2, 3, 0), cmd(CubicTo, 4, -1, 5, -2, 6, 0))},
		},
		{
			name: "multiple sub-paths",
			d:    "M 0 0 L 1 0 M 5 5 L 6 5",
			want: []SubPath{
				sub(cmd(MoveTo, 0, 0), cmd(LineTo, 1, 0)),
				sub(cmd(MoveTo, 5, 5), cmd(LineTo, 6, 5)),
			},
		},
		{
			name: "empty input",
			d:    "  ",
			want: nil,
		},
	}
	for _, c := range cases {
		got, err := ParsePathData(c.d)
		if err != nil {
			t.Errorf("%s: ParsePathData(%q) failed: %v", c.name, c.d, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: ParsePathData(%q) = %v, want %v", c.name, c.d, got, c.want)
		}
	}
}

func TestParsePathDataErrors(t *testing.T) {
	cases := []struct {
		name  string
		d     string
		token string
	}{
		{"quadratic arity", "M 0 0 Q 1 1", "Q"},
		{"cubic arity", "M 0 0 C 1 1 2 2", "C"},
		{"odd coordinate count", "M 0 0 L 1", "L"},
		{"unrecognized command", "M 0 0 A 1 1", "A"},
		{"garbage before command", "5 5 L 0 0", "5"},
		{"close takes no coordinates", "M 0 0 L 1 1 Z 2 2", "Z"},
		{"malformed number", "M 0 0 L 1..2 3", "1..2"},
		{"line before move", "L 1 1", "L"},
		{"command with no coordinates", "M 0 0 L", "L"},
	}
	for _, c := range cases {
		_, err := ParsePathData(c.d)
		if err == nil {
			t.Errorf("%s: ParsePathData(%q) did not fail", c.name, c.d)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: error %v is not a ParseError", c.name, err)
			continue
		}
		if pe.Token != c.token {
			t.Errorf("%s: offending token = %q, want %q", c.name, pe.Token, c.token)
		}
	}
}

func TestParseOutlineConcatenates(t *testing.T) {
	o, err := ParseOutline("M 0 0 L 1 0", "M 5 5 L 6 5 M 7 7 L 8 7")
	if err != nil {
		t.Fatalf("ParseOutline failed: %v", err)
	}
	if got := len(o.SubPaths()); got != 3 {
		t.Errorf("sub-path count = %d, want 3", got)
	}
}

func TestBoundsIncludeControlPoints(t *testing.T) {
	o, err := ParseOutline("M 0 0 Q 10 20 20 0")
	if err != nil {
		t.Fatalf("ParseOutline failed: %v", err)
	}
	want := Bounds{Min: Vec2{0, 0}, Max: Vec2{20, 20}}
	if o.Bounds() != want {
		t.Errorf("bounds = %v, want %v", o.Bounds(), want)
	}
}

func TestEmptyOutlineBounds(t *testing.T) {
	o := NewOutline(nil)
	if !o.Empty() {
		t.Errorf("outline should be empty")
	}
	if o.Bounds() != (Bounds{}) {
		t.Errorf("empty outline bounds = %v, want zero", o.Bounds())
	}
}
