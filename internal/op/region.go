package op

import (
	"image"
	"image/color"

	"github.com/ironsheep/pixel-edit/internal/raster"
)

// surfaceRect returns the writable bounds of a surface.
func surfaceRect(s raster.Surface) image.Rectangle {
	w, h := s.Size()
	return image.Rect(0, 0, w, h)
}

// readRegion copies the pixels of rect (already clipped to the surface)
// into a fresh buffer with zero-based bounds.
func readRegion(s raster.Surface, rect image.Rectangle) *image.NRGBA {
	buf := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			buf.SetNRGBA(x-rect.Min.X, y-rect.Min.Y, s.At(x, y))
		}
	}
	return buf
}

// regionInverse pre-reads rect and returns the SetImage that restores it.
// Returns nil for an empty rect.
func regionInverse(s raster.Surface, rect image.Rectangle) Op {
	if rect.Empty() {
		return nil
	}
	return &SetImage{X: rect.Min.X, Y: rect.Min.Y, Img: readRegion(s, rect)}
}

// SetImage writes a pixel buffer at (X, Y). The written region is clipped
// to the surface; pixels falling outside are dropped from both the write
// and the inverse pre-read. With Blend set, pixels are composited over the
// destination instead of overwriting it.
type SetImage struct {
	X, Y  int
	Img   *image.NRGBA
	Blend bool
}

func (o *SetImage) apply(dst raster.Surface, inverse bool) Op {
	if o.Img == nil {
		return nil
	}
	b := o.Img.Bounds()
	clip := image.Rect(o.X, o.Y, o.X+b.Dx(), o.Y+b.Dy()).Intersect(surfaceRect(dst))

	var inv Op
	if inverse {
		inv = regionInverse(dst, clip)
	}

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			c := o.Img.NRGBAAt(x-o.X+b.Min.X, y-o.Y+b.Min.Y)
			if o.Blend {
				dst.SetBlend(x, y, c)
			} else {
				dst.Set(x, y, c)
			}
		}
	}
	return inv
}

// FillRect fills a rectangle with a single color, clipped to the surface.
type FillRect struct {
	Rect  image.Rectangle
	Color color.NRGBA
	Blend bool
}

func (o *FillRect) apply(dst raster.Surface, inverse bool) Op {
	clip := o.Rect.Intersect(surfaceRect(dst))

	var inv Op
	if inverse {
		inv = regionInverse(dst, clip)
	}

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if o.Blend {
				dst.SetBlend(x, y, o.Color)
			} else {
				dst.Set(x, y, o.Color)
			}
		}
	}
	return inv
}

// Gradient overwrites a rectangle with a two-color gradient. Linear mode
// interpolates along the Start→End axis; radial mode interpolates by
// distance from Start, with the Start→End distance mapping to 1.
type Gradient struct {
	Rect       image.Rectangle
	Start, End image.Point
	From, To   color.NRGBA
	Radial     bool
}

func (o *Gradient) apply(dst raster.Surface, inverse bool) Op {
	clip := o.Rect.Intersect(surfaceRect(dst))

	var inv Op
	if inverse {
		inv = regionInverse(dst, clip)
	}

	if o.Radial {
		raster.RadialGradient(dst, clip, o.Start, o.End, o.From, o.To)
	} else {
		raster.LinearGradient(dst, clip, o.Start, o.End, o.From, o.To)
	}
	return inv
}
