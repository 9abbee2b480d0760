package raster

import (
	"image"
	"image/color"
)

// Surface is the pixel read/write capability all drawing algorithms operate
// against. Implementations own their storage; the engine treats a surface as
// borrowed exclusively for the duration of a drawing call.
//
// Coordinates outside [0,width)x[0,height) must read as the zero color and
// must drop writes silently. Callers never bounds-check before calling.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// At returns the color at (x, y), or the zero color out of bounds.
	At(x, y int) color.NRGBA

	// Set overwrites the pixel at (x, y), ignoring any previous color.
	Set(x, y int, c color.NRGBA)

	// SetBlend composites c over the existing pixel at (x, y) using
	// source-over alpha blending on non-premultiplied channels.
	SetBlend(x, y int, c color.NRGBA)
}

// Image is a Surface backed by a *image.NRGBA buffer. The buffer's bounds
// are assumed to start at (0, 0).
type Image struct {
	Pix *image.NRGBA
}

// NewImage returns an Image surface over a fresh transparent w x h buffer.
func NewImage(w, h int) *Image {
	return &Image{Pix: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the pixel dimensions of the backing buffer.
func (s *Image) Size() (int, int) {
	b := s.Pix.Bounds()
	return b.Dx(), b.Dy()
}

// At returns the color at (x, y), or the zero color out of bounds.
func (s *Image) At(x, y int) color.NRGBA {
	if !image.Pt(x, y).In(s.Pix.Bounds()) {
		return color.NRGBA{}
	}
	return s.Pix.NRGBAAt(x, y)
}

// Set overwrites the pixel at (x, y). Out-of-bounds writes are dropped.
func (s *Image) Set(x, y int, c color.NRGBA) {
	if !image.Pt(x, y).In(s.Pix.Bounds()) {
		return
	}
	s.Pix.SetNRGBA(x, y, c)
}

// SetBlend composites c over the pixel at (x, y).
func (s *Image) SetBlend(x, y int, c color.NRGBA) {
	if !image.Pt(x, y).In(s.Pix.Bounds()) {
		return
	}
	s.Pix.SetNRGBA(x, y, BlendColor(s.Pix.NRGBAAt(x, y), c))
}

// Masked restricts writes on an inner surface to a rectangular valid region.
// Reads pass through unchanged. The mask itself is read-only; drawing
// operations never mutate it.
//
// Masked implements selection-bounded editing: the undo/redo engine wraps a
// layer's surface in a Masked when a selection is active, so every algorithm
// is automatically confined without threading a region parameter through.
type Masked struct {
	Inner  Surface
	Region image.Rectangle
}

// WithRegion wraps s so that writes outside region are dropped. A nil-like
// empty region blocks all writes.
func WithRegion(s Surface, region image.Rectangle) *Masked {
	return &Masked{Inner: s, Region: region}
}

// Size returns the inner surface's dimensions, not the mask's.
func (m *Masked) Size() (int, int) { return m.Inner.Size() }

// At reads through to the inner surface.
func (m *Masked) At(x, y int) color.NRGBA { return m.Inner.At(x, y) }

// Set writes through only inside the valid region.
func (m *Masked) Set(x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(m.Region) {
		m.Inner.Set(x, y, c)
	}
}

// SetBlend blends through only inside the valid region.
func (m *Masked) SetBlend(x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(m.Region) {
		m.Inner.SetBlend(x, y, c)
	}
}

// BlendColor composites src over dst with source-over alpha blending on
// non-premultiplied 8-bit channels.
func BlendColor(dst, src color.NRGBA) color.NRGBA {
	sa := uint32(src.A)
	if sa == 0xff {
		return src
	}
	if sa == 0 {
		return dst
	}
	da := uint32(dst.A)
	// Output alpha: sa + da*(1-sa).
	oa := sa*0xff + da*(0xff-sa)
	if oa == 0 {
		return color.NRGBA{}
	}
	blend := func(s, d uint8) uint8 {
		// Weighted by the contributing alphas, normalized by output alpha.
		v := (uint32(s)*sa*0xff + uint32(d)*da*(0xff-sa)) / oa
		return uint8(v)
	}
	return color.NRGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: uint8(oa / 0xff),
	}
}

// scaleAlpha returns c with its alpha multiplied by cov in [0,1].
// Used by the anti-aliased rasterizers to express partial coverage.
func scaleAlpha(c color.NRGBA, cov float64) color.NRGBA {
	if cov <= 0 {
		c.A = 0
		return c
	}
	if cov >= 1 {
		return c
	}
	c.A = uint8(float64(c.A)*cov + 0.5)
	return c
}
