package mathutil

import (
	"math"
	"testing"
)

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero vector", got)
	}
	got := Vec3{3, 0, 4}.Normalize()
	if !got.ApproxEqual(Vec3{0.6, 0, 0.8}, 1e-12) {
		t.Errorf("Normalize = %v, want (0.6, 0, 0.8)", got)
	}
}

func TestCrossRightHanded(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("X × Y = %v, want +Z", got)
	}
}

func TestModelTransform(t *testing.T) {
	tests := []struct {
		name  string
		pos   Vec3
		scale float64
		yaw   float64
		in    Vec3
		want  Vec3
	}{
		{"identity", Vec3{}, 1, 0, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{"scale+translate", Vec3{10, 0, 0}, 2, 0, Vec3{1, 1, 1}, Vec3{12, 2, 2}},
		{"yaw pi flips x and z", Vec3{}, 1, math.Pi, Vec3{1, 0, 1}, Vec3{-1, 0, -1}},
		{"yaw half pi", Vec3{}, 1, math.Pi / 2, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TransformPoint(Model(tc.pos, tc.scale, tc.yaw), tc.in)
			if !got.ApproxEqual(tc.want, 1e-9) {
				t.Errorf("TransformPoint = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := Perspective(Deg2Rad(60), 1, 0.1, 2000)
	near := Clip(p, Vec3{0, 0, -0.1})
	far := Clip(p, Vec3{0, 0, -2000})
	if z := near[2] / near[3]; math.Abs(z+1) > 1e-9 {
		t.Errorf("near plane NDC z = %v, want -1", z)
	}
	if z := far[2] / far[3]; math.Abs(z-1) > 1e-9 {
		t.Errorf("far plane NDC z = %v, want 1", z)
	}
}

func TestClamp01(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{{-1, 0}, {0.25, 0.25}, {7, 1}} {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
