package raster

import (
	"image/color"
	"testing"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// fillSurface returns a w x h surface with every pixel set to c.
func fillSurface(w, h int, c color.NRGBA) *Image {
	s := NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.Set(x, y, c)
		}
	}
	return s
}

func collectLine(x0, y0, x1, y1 int) map[[2]int]int {
	pixels := make(map[[2]int]int)
	Line(x0, y0, x1, y1, func(x, y int) {
		pixels[[2]int{x, y}]++
	})
	return pixels
}

func TestLine_OrderIndependent(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"horizontal", 0, 3, 9, 3},
		{"vertical", 4, 0, 4, 9},
		{"diagonal", 0, 0, 7, 7},
		{"anti-diagonal", 0, 7, 7, 0},
		{"shallow", 0, 0, 10, 3},
		{"steep", 0, 0, 3, 10},
		{"negative quadrant", -3, -5, 4, 2},
		{"single point", 5, 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forward := collectLine(tt.x0, tt.y0, tt.x1, tt.y1)
			backward := collectLine(tt.x1, tt.y1, tt.x0, tt.y0)

			if len(forward) != len(backward) {
				t.Fatalf("pixel count differs: forward %d, backward %d", len(forward), len(backward))
			}
			for p := range forward {
				if _, ok := backward[p]; !ok {
					t.Errorf("pixel %v in forward set only", p)
				}
			}
		})
	}
}

func TestLine_Endpoints(t *testing.T) {
	pixels := collectLine(2, 3, 11, 7)
	if _, ok := pixels[[2]int{2, 3}]; !ok {
		t.Error("start endpoint not rasterized")
	}
	if _, ok := pixels[[2]int{11, 7}]; !ok {
		t.Error("end endpoint not rasterized")
	}
}

func TestLine_NoDuplicates(t *testing.T) {
	pixels := collectLine(0, 0, 13, 5)
	for p, n := range pixels {
		if n != 1 {
			t.Errorf("pixel %v visited %d times", p, n)
		}
	}
}

func TestLine_OnePixelPerDominantStep(t *testing.T) {
	// A shallow line must produce exactly one pixel per column.
	pixels := collectLine(0, 0, 9, 4)
	cols := make(map[int]int)
	for p := range pixels {
		cols[p[0]]++
	}
	for x := 0; x <= 9; x++ {
		if cols[x] != 1 {
			t.Errorf("column %d has %d pixels, want 1", x, cols[x])
		}
	}
}

func TestDrawLine_Clipping(t *testing.T) {
	s := NewImage(4, 4)
	// Line mostly outside the surface; must not panic and must write the
	// in-bounds portion only.
	DrawLine(s, -5, 2, 10, 2, red)
	for x := 0; x < 4; x++ {
		if s.At(x, 2) != red {
			t.Errorf("pixel (%d,2) not written", x)
		}
	}
	if s.At(0, 0) != (color.NRGBA{}) {
		t.Error("pixel off the line was written")
	}
}

func TestDrawLineAA_CoverageStaysNearLine(t *testing.T) {
	s := NewImage(20, 20)
	DrawLineAA(s, 1, 10, 18, 10, red)

	touched := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if s.At(x, y).A == 0 {
				continue
			}
			touched++
			if y < 9 || y > 11 {
				t.Errorf("pixel (%d,%d) too far from the line", x, y)
			}
		}
	}
	if touched == 0 {
		t.Fatal("anti-aliased line wrote no pixels")
	}
}

func TestDrawLineAA_Steep(t *testing.T) {
	s := NewImage(20, 20)
	DrawLineAA(s, 10, 1, 10, 18, red)

	for y := 5; y < 15; y++ {
		found := false
		for x := 8; x <= 12; x++ {
			if s.At(x, y).A > 0 {
				found = true
			}
		}
		if !found {
			t.Errorf("row %d has no coverage on a steep line", y)
		}
	}
}

func TestDrawThickLine_WidthGrows(t *testing.T) {
	thin := NewImage(30, 30)
	thick := NewImage(30, 30)
	DrawThickLine(thin, 5, 15, 25, 15, 0, red, false)
	DrawThickLine(thick, 5, 15, 25, 15, 3, red, false)

	count := func(s *Image) int {
		n := 0
		for y := 0; y < 30; y++ {
			for x := 0; x < 30; x++ {
				if s.At(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}
	if count(thick) <= count(thin) {
		t.Errorf("half-width 3 line (%d px) not wider than half-width 0 line (%d px)",
			count(thick), count(thin))
	}
}

func TestDrawThickLine_InteriorOpaque(t *testing.T) {
	s := fillSurface(30, 30, white)
	semi := color.NRGBA{R: 255, A: 128}
	DrawThickLine(s, 5, 15, 25, 15, 2, semi, false)

	// The interior sweep overwrites, so the center row carries the raw
	// stroke color rather than a blend with the white background.
	if got := s.At(15, 15); got != semi {
		t.Errorf("center pixel = %v, want raw stroke color %v", got, semi)
	}
}
