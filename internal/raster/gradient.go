package raster

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LinearGradient fills rect with a per-pixel interpolation from the color at
// start to the color at end. Each pixel is projected onto the start→end axis
// and interpolated by its normalized projected distance, clamped to [0,1].
func LinearGradient(s Surface, rect image.Rectangle, start, end image.Point, from, to color.NRGBA) {
	dx := float64(end.X - start.X)
	dy := float64(end.Y - start.Y)
	lenSq := dx*dx + dy*dy
	gradient(s, rect, from, to, func(x, y int) float64 {
		if lenSq == 0 {
			return 0
		}
		return (float64(x-start.X)*dx + float64(y-start.Y)*dy) / lenSq
	})
}

// RadialGradient fills rect with a per-pixel interpolation by normalized
// Euclidean distance from start, where the distance from start to end maps
// to 1. Distances are clamped to [0,1].
func RadialGradient(s Surface, rect image.Rectangle, start, end image.Point, from, to color.NRGBA) {
	radius := math.Hypot(float64(end.X-start.X), float64(end.Y-start.Y))
	gradient(s, rect, from, to, func(x, y int) float64 {
		if radius == 0 {
			return 0
		}
		return math.Hypot(float64(x-start.X), float64(y-start.Y)) / radius
	})
}

// gradient writes the interpolated color at every pixel of rect. RGB is
// interpolated through go-colorful; alpha is interpolated separately since
// colorful models opaque colors only.
func gradient(s Surface, rect image.Rectangle, from, to color.NRGBA, at func(x, y int) float64) {
	w, h := s.Size()
	rect = rect.Intersect(image.Rect(0, 0, w, h))
	if rect.Empty() {
		return
	}
	cFrom := colorful.Color{R: float64(from.R) / 255, G: float64(from.G) / 255, B: float64(from.B) / 255}
	cTo := colorful.Color{R: float64(to.R) / 255, G: float64(to.G) / 255, B: float64(to.B) / 255}

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			t := at(x, y)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			r8, g8, b8 := cFrom.BlendRgb(cTo, t).RGB255()
			a8 := uint8(float64(from.A) + t*(float64(to.A)-float64(from.A)) + 0.5)
			s.Set(x, y, color.NRGBA{R: r8, G: g8, B: b8, A: a8})
		}
	}
}
