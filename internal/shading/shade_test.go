package shading

import (
	"image/color"
	"testing"

	"solar-renderer/internal/mathutil"
)

var allKinds = []Kind{Default, Sun, Earth, SuperEarth, Volcanic, Ice, Gas}

func TestShadeDefaultDiffuse(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	tests := []struct {
		name    string
		lambert float64
		want    uint8
	}{
		{"full light", 1, 255},
		{"unlit ambient", 0, 76}, // 0.3*255 truncated
		{"half", 0.5, 165},       // 0.65*255 truncated
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Shade(Default, white, mathutil.Vec3{}, tc.lambert)
			if !near(got.R, tc.want) || !near(got.G, tc.want) || !near(got.B, tc.want) {
				t.Errorf("Shade(Default, lambert=%v) = %v, want gray %d", tc.lambert, got, tc.want)
			}
		})
	}
}

func TestShadeDefaultUsesTint(t *testing.T) {
	got := Shade(Default, color.RGBA{200, 100, 0, 255}, mathutil.Vec3{}, 1)
	if !near(got.R, 200) || !near(got.G, 100) || got.B != 0 {
		t.Errorf("Shade(Default, tint) = %v, want tint at full light", got)
	}
}

func TestShadeAlwaysOpaqueAndDeterministic(t *testing.T) {
	points := []mathutil.Vec3{
		{0, 0, 0}, {1, 0.2, -0.4}, {-3, 2.5, 1}, {0.1, -1.5, 4}, {100, -100, 50},
	}
	base := color.RGBA{30, 60, 90, 10}
	for _, k := range allKinds {
		for _, p := range points {
			for _, l := range []float64{0, 0.3, 1, 5} {
				a := Shade(k, base, p, l)
				b := Shade(k, base, p, l)
				if a != b {
					t.Errorf("%v at %v: non-deterministic %v vs %v", k, p, a, b)
				}
				if a.A != 255 {
					t.Errorf("%v at %v: alpha = %d, want 255", k, p, a.A)
				}
			}
		}
	}
}

func TestShadeClampsOverbright(t *testing.T) {
	// A lambert far above 1 drives every kind past 1.0 before clamping.
	got := Shade(Ice, color.RGBA{}, mathutil.Vec3{0, 0, 0}, 10)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("overbright ice = %v, want saturated white", got)
	}
}

func TestShadeEarthRegions(t *testing.T) {
	tests := []struct {
		name string
		p    mathutil.Vec3
		want color.RGBA
	}{
		// |lat| > 1 is ice; lambert 1 gives diffuse 0.9.
		{"polar ice", mathutil.Vec3{0, 1.2, 0}, color.RGBA{183, 183, 206, 255}},
		// x=0 → noise 0, lat 0.5 → mix 0.2 > 0 → land.
		{"land", mathutil.Vec3{0, 0.5, 0}, color.RGBA{0, 114, 22, 255}},
		// lat -0.5 → mix < 0 → ocean.
		{"ocean", mathutil.Vec3{0, -0.5, 0}, color.RGBA{0, 45, 160, 255}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Shade(Earth, color.RGBA{}, tc.p, 1); got != tc.want {
				t.Errorf("Shade(Earth, %v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestShadeSunGradient(t *testing.T) {
	core := Shade(Sun, color.RGBA{}, mathutil.Vec3{}, 1)
	edge := Shade(Sun, color.RGBA{}, mathutil.Vec3{4, 0, 0}, 1)
	if core.G <= edge.G || core.B <= edge.B {
		t.Errorf("sun should cool from core %v to edge %v", core, edge)
	}
	if edge.B != 0 {
		t.Errorf("sun edge blue = %d, want 0", edge.B)
	}
	dark := Shade(Sun, color.RGBA{}, mathutil.Vec3{}, 0)
	if dark.R != 127 {
		t.Errorf("unlit sun red = %d, want self-glow 127", dark.R)
	}
}

func TestShadeGasHazeDarkens(t *testing.T) {
	near := Shade(Gas, color.RGBA{}, mathutil.Vec3{0, 0, 0}, 1)
	far := Shade(Gas, color.RGBA{}, mathutil.Vec3{0, 0, 3}, 1)
	// sin(0)=0 for both y and x terms, so only the haze differs.
	if far.R >= near.R {
		t.Errorf("haze should darken distant points: near %v far %v", near, far)
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range allKinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("plasma"); err == nil {
		t.Error("ParseKind(plasma) should fail")
	}
	if s := Kind(99).String(); s != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", s)
	}
}

// near allows one step of quantisation error.
func near(got, want uint8) bool {
	d := int(got) - int(want)
	return d >= -1 && d <= 1
}
