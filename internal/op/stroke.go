package op

import (
	"image"
	"image/color"

	"github.com/ironsheep/pixel-edit/internal/raster"
)

// Block stamps a filled square of the given half-width centered at (X, Y):
// the pencil and eraser tip. Half-width 0 is a single pixel.
type Block struct {
	X, Y      int
	HalfWidth int
	Color     color.NRGBA
	Blend     bool
}

func (o *Block) apply(dst raster.Surface, inverse bool) Op {
	rec := newSparseRecorder(dst, inverse)
	stampBlock(rec, o.X, o.Y, o.HalfWidth, o.Color, o.Blend)
	return rec.inverse()
}

func stampBlock(s raster.Surface, cx, cy, halfWidth int, c color.NRGBA, blend bool) {
	for y := cy - halfWidth; y <= cy+halfWidth; y++ {
		for x := cx - halfWidth; x <= cx+halfWidth; x++ {
			if blend {
				s.SetBlend(x, y, c)
			} else {
				s.Set(x, y, c)
			}
		}
	}
}

// Line draws a stroke of the given half-width between two points,
// anti-aliased on its outermost sweeps when AA is set.
type Line struct {
	X0, Y0, X1, Y1 int
	HalfWidth      int
	Color          color.NRGBA
	AA             bool
}

func (o *Line) apply(dst raster.Surface, inverse bool) Op {
	rec := newSparseRecorder(dst, inverse)
	raster.DrawThickLine(rec, o.X0, o.Y0, o.X1, o.Y1, o.HalfWidth, o.Color, o.AA)
	return rec.inverse()
}

// Pencil stamps square blocks along a polyline: one block per point, with
// Bresenham segments of blocks joining consecutive points so fast pointer
// movement leaves no gaps.
type Pencil struct {
	Points    []image.Point
	HalfWidth int
	Color     color.NRGBA
}

func (o *Pencil) apply(dst raster.Surface, inverse bool) Op {
	if len(o.Points) == 0 {
		return nil
	}
	rec := newSparseRecorder(dst, inverse)
	prev := o.Points[0]
	stampBlock(rec, prev.X, prev.Y, o.HalfWidth, o.Color, false)
	for _, p := range o.Points[1:] {
		raster.Line(prev.X, prev.Y, p.X, p.Y, func(x, y int) {
			stampBlock(rec, x, y, o.HalfWidth, o.Color, false)
		})
		prev = p
	}
	return rec.inverse()
}

// RectOutline draws the border of a rectangle as four thick line segments.
type RectOutline struct {
	Rect      image.Rectangle
	HalfWidth int
	Color     color.NRGBA
	AA        bool
}

func (o *RectOutline) apply(dst raster.Surface, inverse bool) Op {
	r := o.Rect.Canon()
	if r.Empty() {
		return nil
	}
	rec := newSparseRecorder(dst, inverse)
	// Max is exclusive; the border runs along the outermost pixels.
	x0, y0 := r.Min.X, r.Min.Y
	x1, y1 := r.Max.X-1, r.Max.Y-1
	raster.DrawThickLine(rec, x0, y0, x1, y0, o.HalfWidth, o.Color, o.AA)
	raster.DrawThickLine(rec, x1, y0, x1, y1, o.HalfWidth, o.Color, o.AA)
	raster.DrawThickLine(rec, x1, y1, x0, y1, o.HalfWidth, o.Color, o.AA)
	raster.DrawThickLine(rec, x0, y1, x0, y0, o.HalfWidth, o.Color, o.AA)
	return rec.inverse()
}

// CircleOutline draws a circle border of the given half-width.
type CircleOutline struct {
	CX, CY    int
	Radius    int
	HalfWidth int
	Color     color.NRGBA
	AA        bool
}

func (o *CircleOutline) apply(dst raster.Surface, inverse bool) Op {
	if o.Radius < 0 {
		return nil
	}
	rec := newSparseRecorder(dst, inverse)
	raster.DrawThickCircle(rec, o.CX, o.CY, o.Radius, o.HalfWidth, o.Color, o.AA)
	return rec.inverse()
}

// BucketFill flood-fills from the seed pixel with the package raster
// tolerance semantics. Its inverse is an OptionalImage because the touched
// set can be the entire canvas.
type BucketFill struct {
	X, Y      int
	Color     color.NRGBA
	Tolerance float64
}

func (o *BucketFill) apply(dst raster.Surface, inverse bool) Op {
	rec := newDenseRecorder(dst, inverse)
	raster.FloodFill(rec, o.X, o.Y, o.Color, o.Tolerance)
	return rec.inverse()
}
