package paths

import (
	"reflect"
	"strings"
	"testing"
)

// A simple test svg that contains paths, a line, and groups that have
// transforms applied to them.
var testSVG = `
<svg width="2000" height="1000">
   <path d="M 123, 456 321, 654"/>
   <line x1="1" y1="2" x2="3" y2="4"/>
   <g transform="translate(200, 100) scale(2)" stroke="black" fill="none">
	   <path d="M100,50 300, 200"/>
	   <g transform="translate(50,50)">
		   <path d="M 50, 50 250, 50 150, 100"/>
	   </g>
   </g>
</svg>`

func TestFromSVG(t *testing.T) {
	got, err := FromSVG(strings.NewReader(testSVG))
	if err != nil {
		t.Fatalf("failed to parse svg: %v", err)
	}
	want := []SubPath{
		sub(cmd(MoveTo, 123, 456), cmd(LineTo, 321, 654)),
		sub(cmd(MoveTo, 1, 2), cmd(LineTo, 3, 4)),
		sub(cmd(MoveTo, 400, 200), cmd(LineTo, 800, 500)),
		sub(cmd(MoveTo, 400, 300), cmd(LineTo, 800, 300), cmd(LineTo, 600, 400)),
	}
	if !reflect.DeepEqual(got.SubPaths(), want) {
		t.Errorf("svg parse. Got:\n%v\nWant:\n%v\n", got.SubPaths(), want)
	}
}

// TestPathDataRoundTrip renders an outline back to path-description form,
// reparses it, and checks nothing changed.
func TestPathDataRoundTrip(t *testing.T) {
	o, err := ParseOutline("M 0 0 L 10 0 Q 5 5 0 0 Z", "M 1 1 C 2 2 3 3 4 1 L 5 1")
	if err != nil {
		t.Fatalf("ParseOutline failed: %v", err)
	}
	o2, err := ParseOutline(o.PathData())
	if err != nil {
		t.Fatalf("failed to re-parse %q: %v", o.PathData(), err)
	}
	if !reflect.DeepEqual(o.SubPaths(), o2.SubPaths()) {
		t.Errorf("path data round-trip not identity. Started with:\n%v\nGot:\n%v", o.SubPaths(), o2.SubPaths())
	}
}

func TestFromSVGBadPath(t *testing.T) {
	_, err := FromSVG(strings.NewReader(`<svg width="10" height="10"><path d="M 1 1 L 2"/></svg>`))
	if err == nil {
		t.Fatalf("expected error for malformed path data")
	}
}
