package paths

import (
	"math"
	"testing"
)

func vecNear(a, b Vec2, tol float64) bool {
	return math.Abs(a[0]-b[0]) <= tol && math.Abs(a[1]-b[1]) <= tol
}

func TestComposeOrder(t *testing.T) {
	// Compose applies its argument first: translate-after-scale differs
	// from scale-after-translate.
	ts := Translate(10, 0).Compose(Scale(2, 2))
	if got := ts.Apply(Vec2{1, 1}); got != (Vec2{12, 2}) {
		t.Errorf("translate∘scale (1,1) = %v, want (12,2)", got)
	}
	st := Scale(2, 2).Compose(Translate(10, 0))
	if got := st.Apply(Vec2{1, 1}); got != (Vec2{22, 2}) {
		t.Errorf("scale∘translate (1,1) = %v, want (22,2)", got)
	}
}

func TestIdentity(t *testing.T) {
	v := Vec2{3.5, -2.25}
	if got := Identity().Apply(v); got != v {
		t.Errorf("identity(%v) = %v", v, got)
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(90).Apply(Vec2{1, 0})
	if !vecNear(got, Vec2{0, 1}, 1e-12) {
		t.Errorf("rotate 90 (1,0) = %v, want (0,1)", got)
	}
}

func TestFlipY(t *testing.T) {
	if got := FlipY().Apply(Vec2{2, 3}); got != (Vec2{2, -3}) {
		t.Errorf("flip (2,3) = %v, want (2,-3)", got)
	}
}

func TestApplyBounds(t *testing.T) {
	b := Bounds{Min: Vec2{0, 0}, Max: Vec2{4, 2}}
	got := FlipY().ApplyBounds(b)
	want := Bounds{Min: Vec2{0, -2}, Max: Vec2{4, 0}}
	if got != want {
		t.Errorf("flip bounds = %v, want %v", got, want)
	}
}
