package raster

import "image/color"

// FloodFill performs an iterative 8-connected flood fill seeded at (x, y),
// overwriting every reachable pixel with c.
//
// The reference color is sampled once at the seed. A candidate pixel is
// fillable when its mean absolute per-channel difference from the reference,
// normalized to [0,1], is at most tolerance, or when the candidate is fully
// transparent (alpha 0), which is always fillable regardless of tolerance.
//
// The fill uses an explicit stack rather than recursion and a same-size
// visited bitmap so no pixel is processed twice; the total cost is
// proportional to the filled area.
func FloodFill(s Surface, x, y int, c color.NRGBA, tolerance float64) {
	w, h := s.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	ref := s.At(x, y)

	visited := make([]bool, w*h)
	stack := make([][2]int, 0, 64)
	stack = append(stack, [2]int{x, y})
	visited[y*w+x] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		px, py := p[0], p[1]

		s.Set(px, py, c)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := px+dx, py+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				idx := ny*w + nx
				if visited[idx] {
					continue
				}
				if !fillable(s.At(nx, ny), ref, tolerance) {
					continue
				}
				visited[idx] = true
				stack = append(stack, [2]int{nx, ny})
			}
		}
	}
}

// fillable reports whether candidate is close enough to ref to be filled.
func fillable(candidate, ref color.NRGBA, tolerance float64) bool {
	if candidate.A == 0 {
		return true
	}
	return ColorDistance(candidate, ref) <= tolerance
}

// ColorDistance returns the mean absolute per-channel difference between two
// colors, normalized to [0,1]. This is the tolerance metric used by
// FloodFill.
func ColorDistance(a, b color.NRGBA) float64 {
	d := absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B) + absDiff(a.A, b.A)
	return float64(d) / (4 * 255)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
