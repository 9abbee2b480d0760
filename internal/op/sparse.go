package op

import (
	"image"
	"image/color"

	"github.com/ironsheep/pixel-edit/internal/raster"
)

// SparseImage is a mapping from pixel coordinates to colors. It is the
// undo payload for scattered writes whose extent is unknown up front, and
// is itself applicable: applying a SparseImage writes each recorded pixel.
type SparseImage struct {
	Pixels map[image.Point]color.NRGBA
}

// NewSparseImage returns an empty SparseImage.
func NewSparseImage() *SparseImage {
	return &SparseImage{Pixels: make(map[image.Point]color.NRGBA)}
}

func (o *SparseImage) apply(dst raster.Surface, inverse bool) Op {
	bounds := surfaceRect(dst)
	var inv *SparseImage
	if inverse {
		inv = NewSparseImage()
	}
	for p, c := range o.Pixels {
		if !p.In(bounds) {
			continue
		}
		if inv != nil {
			inv.Pixels[p] = dst.At(p.X, p.Y)
		}
		dst.Set(p.X, p.Y, c)
	}
	if inv == nil || len(inv.Pixels) == 0 {
		return nil
	}
	return inv
}

// OptionalImage is a dense width x height array of optional colors. It is
// the undo payload for writes that may touch a large, irregular,
// possibly-contiguous region (flood fill), where a sparse mapping would be
// less efficient and ambiguous about "untouched" versus "transparent".
type OptionalImage struct {
	W, H    int
	Colors  []color.NRGBA
	Present []bool
}

// NewOptionalImage returns an all-absent OptionalImage of the given size.
func NewOptionalImage(w, h int) *OptionalImage {
	return &OptionalImage{
		W: w, H: h,
		Colors:  make([]color.NRGBA, w*h),
		Present: make([]bool, w*h),
	}
}

// Count returns the number of present pixels.
func (o *OptionalImage) Count() int {
	n := 0
	for _, p := range o.Present {
		if p {
			n++
		}
	}
	return n
}

func (o *OptionalImage) apply(dst raster.Surface, inverse bool) Op {
	var inv *OptionalImage
	if inverse {
		inv = NewOptionalImage(o.W, o.H)
	}
	bounds := surfaceRect(dst)
	for y := 0; y < o.H; y++ {
		for x := 0; x < o.W; x++ {
			idx := y*o.W + x
			if !o.Present[idx] || !image.Pt(x, y).In(bounds) {
				continue
			}
			if inv != nil {
				inv.Colors[idx] = dst.At(x, y)
				inv.Present[idx] = true
			}
			dst.Set(x, y, o.Colors[idx])
		}
	}
	if inv == nil || inv.Count() == 0 {
		return nil
	}
	return inv
}

// sparseRecorder decorates a surface so that every written pixel's prior
// color is captured into a SparseImage. Only the first write to a pixel
// records it, so self-overlapping strokes restore the true original rather
// than an intermediate state. With a nil payload it records nothing.
type sparseRecorder struct {
	dst raster.Surface
	inv *SparseImage
}

func newSparseRecorder(dst raster.Surface, inverse bool) *sparseRecorder {
	r := &sparseRecorder{dst: dst}
	if inverse {
		r.inv = NewSparseImage()
	}
	return r
}

func (r *sparseRecorder) Size() (int, int)       { return r.dst.Size() }
func (r *sparseRecorder) At(x, y int) color.NRGBA { return r.dst.At(x, y) }

func (r *sparseRecorder) Set(x, y int, c color.NRGBA) {
	r.record(x, y)
	r.dst.Set(x, y, c)
}

func (r *sparseRecorder) SetBlend(x, y int, c color.NRGBA) {
	r.record(x, y)
	r.dst.SetBlend(x, y, c)
}

func (r *sparseRecorder) record(x, y int) {
	if r.inv == nil || !image.Pt(x, y).In(surfaceRect(r.dst)) {
		return
	}
	p := image.Pt(x, y)
	if _, seen := r.inv.Pixels[p]; !seen {
		r.inv.Pixels[p] = r.dst.At(x, y)
	}
}

// inverse returns the recorded payload, or nil when nothing was touched.
func (r *sparseRecorder) inverse() Op {
	if r.inv == nil || len(r.inv.Pixels) == 0 {
		return nil
	}
	return r.inv
}

// denseRecorder is the OptionalImage counterpart of sparseRecorder, used
// by flood fill where the touched set can be the entire canvas. Recording
// is likewise first write wins.
type denseRecorder struct {
	dst raster.Surface
	inv *OptionalImage
}

func newDenseRecorder(dst raster.Surface, inverse bool) *denseRecorder {
	r := &denseRecorder{dst: dst}
	if inverse {
		w, h := dst.Size()
		r.inv = NewOptionalImage(w, h)
	}
	return r
}

func (r *denseRecorder) Size() (int, int)       { return r.dst.Size() }
func (r *denseRecorder) At(x, y int) color.NRGBA { return r.dst.At(x, y) }

func (r *denseRecorder) Set(x, y int, c color.NRGBA) {
	r.record(x, y)
	r.dst.Set(x, y, c)
}

func (r *denseRecorder) SetBlend(x, y int, c color.NRGBA) {
	r.record(x, y)
	r.dst.SetBlend(x, y, c)
}

func (r *denseRecorder) record(x, y int) {
	if r.inv == nil || x < 0 || x >= r.inv.W || y < 0 || y >= r.inv.H {
		return
	}
	idx := y*r.inv.W + x
	if !r.inv.Present[idx] {
		r.inv.Colors[idx] = r.dst.At(x, y)
		r.inv.Present[idx] = true
	}
}

func (r *denseRecorder) inverse() Op {
	if r.inv == nil || r.inv.Count() == 0 {
		return nil
	}
	return r.inv
}
