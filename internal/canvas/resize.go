package canvas

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Resample rescales every layer to w x h with a triangle filter and updates
// the canvas dimensions. Hidden and deleted layers are resampled too, so
// unhiding after a resample yields a consistent stack.
func (img *Image) Resample(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for _, l := range img.Layers {
		l.Pix = imaging.Resize(l.Pix, w, h, imaging.Linear)
	}
	img.W, img.H = w, h
}

// ResizeCanvas crops or pads every layer to w x h. The region overlapping
// the old bounds is copied verbatim and any newly exposed area is fully
// transparent.
func (img *Image) ResizeCanvas(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for _, l := range img.Layers {
		fresh := image.NewNRGBA(image.Rect(0, 0, w, h))
		overlap := fresh.Bounds().Intersect(l.Pix.Bounds())
		draw.Draw(fresh, overlap, l.Pix, overlap.Min, draw.Src)
		l.Pix = fresh
	}
	img.W, img.H = w, h
}
