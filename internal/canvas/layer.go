package canvas

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-edit/internal/raster"
)

// LayerState is the lifecycle tag of a layer.
type LayerState int

const (
	// LayerVisible layers are drawn when the canvas is flattened.
	LayerVisible LayerState = iota
	// LayerHidden layers keep their pixels but are skipped by flattening.
	LayerHidden
	// LayerDeleted layers are soft-deleted: skipped everywhere but never
	// removed, so stored layer indices stay valid.
	LayerDeleted
)

// Layer is one raster layer of a canvas: a pixel buffer plus its state tag.
type Layer struct {
	Pix   *image.NRGBA
	State LayerState
}

// NewLayer returns a fully transparent visible layer of the given size.
func NewLayer(w, h int) *Layer {
	return &Layer{Pix: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// Surface returns the layer's pixel buffer as a drawing surface.
func (l *Layer) Surface() *raster.Image {
	return &raster.Image{Pix: l.Pix}
}

// Clone returns a visible deep copy of the layer's pixels.
func (l *Layer) Clone() *Layer {
	return &Layer{Pix: imaging.Clone(l.Pix)}
}

// Alive reports whether the layer has not been soft-deleted.
func (l *Layer) Alive() bool {
	return l.State != LayerDeleted
}
