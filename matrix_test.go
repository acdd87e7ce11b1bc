package turtle

import "testing"

func TestMatrixIdentity(t *testing.T) {
	p := Pt(3, -7)
	if got := Identity().TransformPoint(p); got != p {
		t.Errorf("identity moved point: %v", got)
	}
}

func TestMatrixTranslateScale(t *testing.T) {
	if got := Translate(10, 20).TransformPoint(Pt(1, 2)); got != Pt(11, 22) {
		t.Errorf("translate = %v", got)
	}
	if got := Scale(2, -3).TransformPoint(Pt(1, 2)); got != Pt(2, -6) {
		t.Errorf("scale = %v", got)
	}
}

func TestMatrixMultiply(t *testing.T) {
	// Canvas mapping: center the origin, flip Y. A point at (0, 30) in
	// turtle space lands above the center in image space.
	m := Translate(50, 50).Multiply(Scale(1, -1))
	if got := m.TransformPoint(Pt(0, 30)); got != Pt(50, 20) {
		t.Errorf("composed transform = %v, want (50, 20)", got)
	}
	if got := m.TransformPoint(Pt(0, 0)); got != Pt(50, 50) {
		t.Errorf("origin maps to %v, want (50, 50)", got)
	}
}
