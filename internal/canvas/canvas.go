package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
)

// Image is a multi-layer canvas plus the save metadata it was loaded with.
// Layers[0] is the bottom of the stack.
type Image struct {
	W, H   int
	Layers []*Layer

	// Path is the file the canvas was loaded from or last saved to.
	Path string
	// Format is the encoding used on save: "png", "jpeg", "gif", "bmp"
	// or "tiff".
	Format string
	// Quality is the JPEG quality in [1, 100]. Ignored by other formats.
	Quality int
}

// New returns a canvas of the given size with a single transparent layer
// and PNG save defaults.
func New(w, h int) *Image {
	return &Image{
		W:       w,
		H:       h,
		Layers:  []*Layer{NewLayer(w, h)},
		Format:  "png",
		Quality: 90,
	}
}

// FromNRGBA wraps a decoded pixel buffer as a single-layer canvas.
func FromNRGBA(pix *image.NRGBA) *Image {
	b := pix.Bounds()
	img := New(b.Dx(), b.Dy())
	img.Layers[0].Pix = imaging.Clone(pix)
	return img
}

// Clone returns a deep copy of the canvas, layer states and metadata
// included.
func (img *Image) Clone() *Image {
	out := &Image{
		W:       img.W,
		H:       img.H,
		Layers:  make([]*Layer, len(img.Layers)),
		Path:    img.Path,
		Format:  img.Format,
		Quality: img.Quality,
	}
	for i, l := range img.Layers {
		c := l.Clone()
		c.State = l.State
		out.Layers[i] = c
	}
	return out
}

// AddLayer appends a transparent visible layer and returns its index.
func (img *Image) AddLayer() int {
	img.Layers = append(img.Layers, NewLayer(img.W, img.H))
	return len(img.Layers) - 1
}

// DuplicateLayer appends a visible copy of layer i and returns the new
// index.
func (img *Image) DuplicateLayer(i int) int {
	img.Layers = append(img.Layers, img.Layers[i].Clone())
	return len(img.Layers) - 1
}

// AliveCount returns the number of layers that are not soft-deleted.
func (img *Image) AliveCount() int {
	n := 0
	for _, l := range img.Layers {
		if l.Alive() {
			n++
		}
	}
	return n
}

// FirstAlive returns the index of the lowest non-deleted layer, skipping
// the excluded index, or -1 if none remains.
func (img *Image) FirstAlive(exclude int) int {
	for i, l := range img.Layers {
		if i != exclude && l.Alive() {
			return i
		}
	}
	return -1
}

// Flatten composes all visible layers bottom to top over a transparent
// background using source-over blending and returns the result.
func (img *Image) Flatten() *image.NRGBA {
	var acc image.Image = image.NewNRGBA(image.Rect(0, 0, img.W, img.H))
	for _, l := range img.Layers {
		if l.State != LayerVisible {
			continue
		}
		acc = blend.Normal(acc, l.Pix)
	}
	return imaging.Clone(acc)
}

// ColorSample is the result of picking a color off the composed canvas.
type ColorSample struct {
	X, Y  int
	Color color.NRGBA
	Hex   string
}

// SampleColor reads the flattened composite at (x, y): the eyedropper.
// Coordinates outside the canvas report fully transparent black.
func (img *Image) SampleColor(x, y int) ColorSample {
	s := ColorSample{X: x, Y: y}
	if x >= 0 && y >= 0 && x < img.W && y < img.H {
		s.Color = img.Flatten().NRGBAAt(x, y)
	}
	s.Hex = fmt.Sprintf("#%02X%02X%02X", s.Color.R, s.Color.G, s.Color.B)
	return s
}
