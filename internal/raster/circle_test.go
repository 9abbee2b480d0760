package raster

import (
	"math"
	"testing"
)

func collectCircle(cx, cy, r int) map[[2]int]int {
	pixels := make(map[[2]int]int)
	Circle(cx, cy, r, func(x, y int) {
		pixels[[2]int{x, y}]++
	})
	return pixels
}

func TestCircle_Symmetry(t *testing.T) {
	for _, r := range []int{1, 2, 5, 10} {
		pixels := collectCircle(0, 0, r)
		for p := range pixels {
			mirrors := [][2]int{
				{-p[0], p[1]}, {p[0], -p[1]}, {-p[0], -p[1]},
				{p[1], p[0]}, {-p[1], p[0]}, {p[1], -p[0]}, {-p[1], -p[0]},
			}
			for _, m := range mirrors {
				if _, ok := pixels[m]; !ok {
					t.Fatalf("r=%d: pixel %v present but mirror %v missing", r, p, m)
				}
			}
		}
	}
}

func TestCircle_NoDuplicates(t *testing.T) {
	for _, r := range []int{0, 1, 3, 7} {
		for p, n := range collectCircle(5, 5, r) {
			if n != 1 {
				t.Errorf("r=%d: pixel %v visited %d times", r, p, n)
			}
		}
	}
}

func TestCircle_RadiusError(t *testing.T) {
	const r = 8
	for p := range collectCircle(0, 0, r) {
		dist := math.Hypot(float64(p[0]), float64(p[1]))
		if math.Abs(dist-r) > 1.0 {
			t.Errorf("border pixel %v at distance %.2f from center, radius %d", p, dist, r)
		}
	}
}

func TestCircle_ZeroRadius(t *testing.T) {
	pixels := collectCircle(3, 4, 0)
	if len(pixels) != 1 {
		t.Fatalf("got %d pixels, want 1", len(pixels))
	}
	if _, ok := pixels[[2]int{3, 4}]; !ok {
		t.Error("zero-radius circle did not plot its center")
	}
}

func TestFillCircle_InteriorFilled(t *testing.T) {
	s := NewImage(21, 21)
	FillCircle(s, 10, 10, 8, red)

	// Every pixel strictly inside the radius must be filled.
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			dist := math.Hypot(float64(x-10), float64(y-10))
			if dist <= 7 && s.At(x, y) != red {
				t.Errorf("interior pixel (%d,%d) unfilled", x, y)
			}
			if dist > 9.5 && s.At(x, y).A != 0 {
				t.Errorf("pixel (%d,%d) outside the circle was written", x, y)
			}
		}
	}
}

func TestDrawCircleAA_TwoRowBand(t *testing.T) {
	s := NewImage(30, 30)
	DrawCircleAA(s, 15, 15, 10, red)

	touched := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if s.At(x, y).A == 0 {
				continue
			}
			touched++
			dist := math.Hypot(float64(x-15), float64(y-15))
			if dist < 8 || dist > 11.5 {
				t.Errorf("AA pixel (%d,%d) at distance %.2f outside the border band", x, y, dist)
			}
		}
	}
	if touched == 0 {
		t.Fatal("anti-aliased circle wrote no pixels")
	}
}

func TestDrawThickCircle_AnnulusCovered(t *testing.T) {
	s := NewImage(41, 41)
	DrawThickCircle(s, 20, 20, 10, 2, red, false)

	// Radii 8..12 are swept; every swept circle plots its four axis points.
	for r := 8; r <= 12; r++ {
		for _, p := range [][2]int{{20 + r, 20}, {20 - r, 20}, {20, 20 + r}, {20, 20 - r}} {
			if s.At(p[0], p[1]).A == 0 {
				t.Errorf("annulus pixel (%d,%d) at radius %d unwritten", p[0], p[1], r)
			}
		}
	}
}

func TestDrawThickCircle_CenterUntouched(t *testing.T) {
	s := NewImage(41, 41)
	DrawThickCircle(s, 20, 20, 10, 2, red, false)
	if s.At(20, 20).A != 0 {
		t.Error("center pixel written by a border stroke")
	}
}
