package layout

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPointForResidueZeroAtTop(t *testing.T) {
	cfg := Config{CenterX: 100, CenterY: 80, Radius: 50}

	for _, m := range []int64{1, 2, 5, 360, 1 << 20} {
		p := PointForResidue(0, m, cfg)
		if !almostEqual(p.X, 100) || !almostEqual(p.Y, 30) {
			t.Errorf("m=%d: residue 0 at (%f, %f), want (100, 30)", m, p.X, p.Y)
		}
	}
}

func TestPointForResidueQuarters(t *testing.T) {
	cfg := Config{CenterX: 0, CenterY: 0, Radius: 1}

	tests := []struct {
		value int64
		x, y  float64
	}{
		{0, 0, -1},  // top
		{1, 1, 0},   // right (clockwise in screen coords)
		{2, 0, 1},   // bottom
		{3, -1, 0},  // left
	}

	for _, tt := range tests {
		p := PointForResidue(tt.value, 4, cfg)
		if !almostEqual(p.X, tt.x) || !almostEqual(p.Y, tt.y) {
			t.Errorf("residue %d: got (%f, %f), want (%f, %f)", tt.value, p.X, p.Y, tt.x, tt.y)
		}
	}
}

func TestAngleStepSumsToFullTurn(t *testing.T) {
	for _, m := range []int64{1, 3, 7, 100} {
		step := Angle(1, m) - Angle(0, m)
		if !almostEqual(step, 2*math.Pi/float64(m)) {
			t.Errorf("m=%d: angle step %f, want %f", m, step, 2*math.Pi/float64(m))
		}
		total := float64(m) * step
		if !almostEqual(math.Mod(total, 2*math.Pi), 0) && !almostEqual(math.Mod(total, 2*math.Pi), 2*math.Pi) {
			t.Errorf("m=%d: %d steps do not return to start (total %f)", m, m, total)
		}
	}
}

func TestEdgePoint(t *testing.T) {
	center := Point{X: 0, Y: 0}
	towards := Point{X: 10, Y: 0}

	p := EdgePoint(center, towards, 3)
	if !almostEqual(p.X, 3) || !almostEqual(p.Y, 0) {
		t.Errorf("got (%f, %f), want (3, 0)", p.X, p.Y)
	}

	// Diagonal direction keeps the marker radius.
	p = EdgePoint(center, Point{X: 4, Y: 4}, 2)
	if d := math.Hypot(p.X, p.Y); !almostEqual(d, 2) {
		t.Errorf("trimmed point at distance %f, want 2", d)
	}
}

func TestEdgePointDegenerate(t *testing.T) {
	p := Point{X: 7.5, Y: -2.25}
	got := EdgePoint(p, p, 4)
	if got != p {
		t.Errorf("zero-distance edge point moved: got %+v", got)
	}
}

func TestArrowheadBarbs(t *testing.T) {
	tip := Point{X: 0, Y: 0}
	from := Point{X: 10, Y: 0}

	a, b := Arrowhead(tip, from, 2)
	if !almostEqual(math.Hypot(a.X, a.Y), 2) || !almostEqual(math.Hypot(b.X, b.Y), 2) {
		t.Errorf("barbs not at arrowhead size: %+v %+v", a, b)
	}
	// Barbs flare symmetrically around the incoming direction.
	if !almostEqual(a.X, b.X) || !almostEqual(a.Y, -b.Y) {
		t.Errorf("barbs not symmetric: %+v %+v", a, b)
	}
	if a.X <= 0 {
		t.Errorf("barbs should point back toward the source, got x=%f", a.X)
	}

	a, b = Arrowhead(tip, tip, 2)
	if a != tip || b != tip {
		t.Errorf("degenerate arrowhead moved: %+v %+v", a, b)
	}
}

func TestRampFadesToThirtyPercent(t *testing.T) {
	base := RGB{R: 200, G: 100, B: 50}
	p := Ramp(base)

	if p[RampLevels-1].R != uint8(200*0.3) {
		t.Errorf("darkest level R=%d, want %d", p[RampLevels-1].R, uint8(200*0.3))
	}
	for i := 1; i < RampLevels; i++ {
		if p[i].R > p[i-1].R {
			t.Errorf("ramp not monotonically darkening at level %d", i)
		}
	}
}

func TestShadeCycles(t *testing.T) {
	base := RGB{R: 255, G: 255, B: 255}
	for step := 0; step < 30; step++ {
		if Shade(base, step) != Shade(base, step+RampLevels) {
			t.Errorf("step %d: shade does not repeat after %d levels", step, RampLevels)
		}
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{R: 255, G: 0, B: 16}).Hex(); got != "#ff0010" {
		t.Errorf("hex = %q", got)
	}
}
