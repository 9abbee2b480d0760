package raster

import (
	"image/color"
	"math"
)

// Line visits every pixel of the integer line between (x0, y0) and (x1, y1)
// using Bresenham's error-accumulator walk.
//
// The walk always starts from the endpoint with the lower coordinate along
// the dominant axis (the axis with the larger absolute delta), so the pixel
// set is identical regardless of which endpoint is passed first. On exact
// diagonal ties the minor axis steps early when the deltas agree in sign and
// late when they differ, matching on both traversal directions.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	if dx >= dy {
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		step := 1
		if y1 < y0 {
			step = -1
		}
		d := 2*dy - dx
		y := y0
		for x := x0; ; x++ {
			plot(x, y)
			if x == x1 {
				return
			}
			if d > 0 || (d == 0 && step > 0) {
				y += step
				d -= 2 * dx
			}
			d += 2 * dy
		}
	}

	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	step := 1
	if x1 < x0 {
		step = -1
	}
	d := 2*dx - dy
	x := x0
	for y := y0; ; y++ {
		plot(x, y)
		if y == y1 {
			return
		}
		if d > 0 || (d == 0 && step > 0) {
			x += step
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

// DrawLine rasterizes the integer line onto s, overwriting pixels.
func DrawLine(s Surface, x0, y0, x1, y1 int, c color.NRGBA) {
	Line(x0, y0, x1, y1, func(x, y int) { s.Set(x, y, c) })
}

// DrawLineBlend rasterizes the integer line onto s, alpha-blending pixels.
func DrawLineBlend(s Surface, x0, y0, x1, y1 int, c color.NRGBA) {
	Line(x0, y0, x1, y1, func(x, y int) { s.SetBlend(x, y, c) })
}

// DrawLineAA rasterizes an anti-aliased line using Wu's algorithm.
//
// The algorithm operates in floating point and swaps axes when the line is
// steep so the main loop always steps along x. Each boundary column receives
// two partially covered endpoint pixels; each interior column receives two
// pixels whose coverage comes from linear interpolation of the fractional
// y-intercept. Coverage multiplies the stroke color's alpha before blending
// onto the existing pixel.
func DrawLineAA(s Surface, x0, y0, x1, y1 float64, c color.NRGBA) {
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	plot := func(x, y int, cov float64) {
		if steep {
			x, y = y, x
		}
		s.SetBlend(x, y, scaleAlpha(c, cov))
	}

	// First endpoint.
	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := 1 - fpart(x0+0.5)
	xpx1 := int(xend)
	ypx1 := ipart(yend)
	plot(xpx1, ypx1, (1-fpart(yend))*xgap)
	plot(xpx1, ypx1+1, fpart(yend)*xgap)
	intery := yend + gradient

	// Second endpoint.
	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpx2 := int(xend)
	ypx2 := ipart(yend)
	plot(xpx2, ypx2, (1-fpart(yend))*xgap)
	plot(xpx2, ypx2+1, fpart(yend)*xgap)

	// Interior columns.
	for x := xpx1 + 1; x < xpx2; x++ {
		plot(x, ipart(intery), 1-fpart(intery))
		plot(x, ipart(intery)+1, fpart(intery))
		intery += gradient
	}
}

// DrawThickLine rasterizes a line of the given half-width by sweeping offsets
// from 0 to halfWidth along the line's perpendicular. Inner offsets overwrite
// fully; only the outermost offset on each side blends with the existing
// alpha (anti-aliased via Wu when aa is set), so overlapping sweeps never
// double-blend into a seam.
func DrawThickLine(s Surface, x0, y0, x1, y1, halfWidth int, c color.NRGBA, aa bool) {
	edge := func(fx0, fy0, fx1, fy1 float64) {
		if aa {
			DrawLineAA(s, fx0, fy0, fx1, fy1, c)
		} else {
			DrawLineBlend(s, int(math.Round(fx0)), int(math.Round(fy0)),
				int(math.Round(fx1)), int(math.Round(fy1)), c)
		}
	}

	if halfWidth <= 0 {
		edge(float64(x0), float64(y0), float64(x1), float64(y1))
		return
	}

	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	length := math.Hypot(dx, dy)
	px, py := 0.0, 1.0 // degenerate line: sweep vertically
	if length > 0 {
		px, py = -dy/length, dx/length
	}

	for off := 0; off <= halfWidth; off++ {
		ox := px * float64(off)
		oy := py * float64(off)
		sides := []float64{1}
		if off > 0 {
			sides = []float64{1, -1}
		}
		for _, sign := range sides {
			sx0 := float64(x0) + sign*ox
			sy0 := float64(y0) + sign*oy
			sx1 := float64(x1) + sign*ox
			sy1 := float64(y1) + sign*oy
			if off == halfWidth {
				edge(sx0, sy0, sx1, sy1)
				continue
			}
			DrawLine(s, int(math.Round(sx0)), int(math.Round(sy0)),
				int(math.Round(sx1)), int(math.Round(sy1)), c)
		}
	}
}

func ipart(v float64) int { return int(math.Floor(v)) }

func fpart(v float64) float64 { return v - math.Floor(v) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
