package raster

import (
	"image/color"
	"math"
)

// Circle visits the border pixels of a circle using the midpoint algorithm
// with 8-way symmetry. Points that coincide on the axes or the diagonal are
// visited once, so plot never sees the same pixel twice per octant step.
func Circle(cx, cy, r int, plot func(x, y int)) {
	if r < 0 {
		return
	}
	if r == 0 {
		plot(cx, cy)
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		plotOctants(cx, cy, x, y, plot)
		y++
		if d <= 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// plotOctants emits the up-to-eight symmetric reflections of (x, y) around
// (cx, cy), skipping reflections that collapse onto each other.
func plotOctants(cx, cy, x, y int, plot func(x, y int)) {
	plot(cx+x, cy+y)
	if x != 0 {
		plot(cx-x, cy+y)
	}
	if y != 0 {
		plot(cx+x, cy-y)
		if x != 0 {
			plot(cx-x, cy-y)
		}
	}
	if x == y {
		return
	}
	plot(cx+y, cy+x)
	if y != 0 {
		plot(cx-y, cy+x)
	}
	if x != 0 {
		plot(cx+y, cy-x)
		if y != 0 {
			plot(cx-y, cy-x)
		}
	}
}

// DrawCircle rasterizes a circle border onto s, overwriting pixels.
func DrawCircle(s Surface, cx, cy, r int, c color.NRGBA) {
	Circle(cx, cy, r, func(x, y int) { s.Set(x, y, c) })
}

// DrawCircleBlend rasterizes a circle border onto s, alpha-blending pixels.
func DrawCircleBlend(s Surface, cx, cy, r int, c color.NRGBA) {
	Circle(cx, cy, r, func(x, y int) { s.SetBlend(x, y, c) })
}

// FillCircle rasterizes a filled circle by drawing horizontal spans between
// the symmetric x offsets produced by the midpoint walk.
func FillCircle(s Surface, cx, cy, r int, c color.NRGBA) {
	if r < 0 {
		return
	}
	span := func(x0, x1, y int) {
		for x := x0; x <= x1; x++ {
			s.Set(x, y, c)
		}
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		span(cx-x, cx+x, cy+y)
		span(cx-x, cx+x, cy-y)
		span(cx-y, cx+y, cy+x)
		span(cx-y, cx+y, cy-x)
		y++
		if d <= 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// DrawCircleAA rasterizes a two-row anti-aliased circle border.
//
// For each octant step the vertical distance from the ideal circle to the
// nearest integer row above it is the fade metric. When the metric decreases
// versus the previous step the ideal circle has crossed a row boundary and
// the inner symmetry index advances, which keeps the two coverage rows
// seamless: no gaps, no double coverage.
func DrawCircleAA(s Surface, cx, cy, r int, c color.NRGBA) {
	if r < 0 {
		return
	}
	if r == 0 {
		s.SetBlend(cx, cy, c)
		return
	}
	pair := func(x, y int, cov float64) {
		plotOctants(cx, cy, x, y, func(px, py int) {
			s.SetBlend(px, py, scaleAlpha(c, cov))
		})
	}
	y := r
	prev := 0.0
	for x := 0; x <= y; x++ {
		yf := math.Sqrt(float64(r*r - x*x))
		fade := math.Ceil(yf) - yf
		if fade < prev {
			y--
		}
		if x > y {
			break
		}
		pair(x, y, 1-fade)
		pair(x, y-1, fade)
		prev = fade
	}
}

// DrawThickCircle rasterizes a circle border of the given half-width by
// sweeping the radius from r-halfWidth to r+halfWidth. As with thick lines,
// only the innermost and outermost sweeps blend with the existing alpha
// (anti-aliased when aa is set); the interior sweeps overwrite.
func DrawThickCircle(s Surface, cx, cy, r, halfWidth int, c color.NRGBA, aa bool) {
	edge := func(radius int) {
		if aa {
			DrawCircleAA(s, cx, cy, radius, c)
		} else {
			DrawCircleBlend(s, cx, cy, radius, c)
		}
	}
	if halfWidth <= 0 {
		edge(r)
		return
	}
	for off := -halfWidth; off <= halfWidth; off++ {
		radius := r + off
		if radius < 0 {
			continue
		}
		if off == -halfWidth || off == halfWidth {
			edge(radius)
		} else {
			DrawCircle(s, cx, cy, radius, c)
		}
	}
}
