package tracer

import "testing"

func TestPlainColor(t *testing.T) {
	tex := PlainColor{Color: NewColor(0.1, 0.2, 0.3)}
	if got := tex.ColorAt(V3(5, -3, 100)); got != NewColor(0.1, 0.2, 0.3) {
		t.Fatalf("ColorAt=%v", got)
	}
}

func TestCheckedPatternAlternates(t *testing.T) {
	tex := CheckedPattern{Primary: White, Secondary: Black, Size: 1}
	a := tex.ColorAt(V3(0.5, 0.5, 0.5))
	b := tex.ColorAt(V3(1.5, 0.5, 0.5))
	if a == b {
		t.Fatalf("adjacent cells must differ")
	}
	// Two cells along one axis land back on the same color.
	c := tex.ColorAt(V3(2.5, 0.5, 0.5))
	if a != c {
		t.Fatalf("period-2 cells must match: %v vs %v", a, c)
	}
}

func TestCheckedPatternZeroSize(t *testing.T) {
	tex := CheckedPattern{Primary: White, Secondary: Black}
	// Size 0 falls back to unit cells instead of dividing by zero.
	if got := tex.ColorAt(V3(0.5, 0.5, 0.5)); got != White && got != Black {
		t.Fatalf("ColorAt=%v", got)
	}
}
