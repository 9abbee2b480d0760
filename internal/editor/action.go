package editor

import (
	"github.com/ironsheep/pixel-edit/internal/canvas"
	"github.com/ironsheep/pixel-edit/internal/op"
)

// Action is one reversible editor change. Applying an action returns the
// action that undoes it, or nil when nothing changed.
//
// The interface is sealed: all variants live in this package.
type Action interface {
	apply(e *Editor, computeInverse bool) Action
}

// PixelAction runs a pixel operation against one layer's surface,
// restricted to the editor's selection when one is set.
type PixelAction struct {
	Layer int
	Op    op.Op
}

func (a *PixelAction) apply(e *Editor, computeInverse bool) Action {
	inv := op.Apply(a.Op, e.layerSurface(a.Layer), computeInverse)
	if inv == nil {
		return nil
	}
	return &PixelAction{Layer: a.Layer, Op: inv}
}

// AddLayerAction makes the layer at Index exist and be visible. On first
// application Index is the append position; replaying after an undo finds
// the layer already allocated and only flips it back to visible.
type AddLayerAction struct {
	Index int
}

func (a *AddLayerAction) apply(e *Editor, computeInverse bool) Action {
	img := e.img
	if a.Index == len(img.Layers) {
		img.AddLayer()
	} else {
		img.Layers[a.Index].State = canvas.LayerVisible
	}
	return &LayerStateAction{Index: a.Index, State: canvas.LayerDeleted}
}

// DuplicateLayerAction appends a copy of the Source layer at Index, or
// revives the copy when replayed after an undo.
type DuplicateLayerAction struct {
	Source int
	Index  int
}

func (a *DuplicateLayerAction) apply(e *Editor, computeInverse bool) Action {
	img := e.img
	if a.Index == len(img.Layers) {
		img.DuplicateLayer(a.Source)
	} else {
		img.Layers[a.Index].State = canvas.LayerVisible
	}
	return &LayerStateAction{Index: a.Index, State: canvas.LayerDeleted}
}

// LayerStateAction sets the state tag of one layer. Hiding, unhiding and
// soft deletion are all this action.
type LayerStateAction struct {
	Index int
	State canvas.LayerState
}

func (a *LayerStateAction) apply(e *Editor, computeInverse bool) Action {
	l := e.img.Layers[a.Index]
	prev := l.State
	if prev == a.State {
		return nil
	}
	l.State = a.State
	return &LayerStateAction{Index: a.Index, State: prev}
}

// ActiveLayerAction retargets which layer subsequent pixel actions edit.
type ActiveLayerAction struct {
	Index int
}

func (a *ActiveLayerAction) apply(e *Editor, computeInverse bool) Action {
	prev := e.active
	if prev == a.Index {
		return nil
	}
	e.active = a.Index
	return &ActiveLayerAction{Index: prev}
}

// ReplaceCanvasAction swaps the entire canvas. It is the inverse payload
// of the whole-canvas edits below and the forward action for loading or
// starting a new image.
type ReplaceCanvasAction struct {
	Img *canvas.Image
}

func (a *ReplaceCanvasAction) apply(e *Editor, computeInverse bool) Action {
	prev := e.img
	e.img = a.Img
	return &ReplaceCanvasAction{Img: prev}
}

// ResampleAction rescales all layers to W x H. Its inverse restores a
// snapshot of the canvas taken before resampling, since resampling loses
// information and cannot be reversed arithmetically.
type ResampleAction struct {
	W, H int
}

func (a *ResampleAction) apply(e *Editor, computeInverse bool) Action {
	if a.W == e.img.W && a.H == e.img.H {
		return nil
	}
	var inv Action
	if computeInverse {
		inv = &ReplaceCanvasAction{Img: e.img.Clone()}
	}
	e.img.Resample(a.W, a.H)
	return inv
}

// ResizeCanvasAction crops or pads all layers to W x H. Cropping discards
// pixels, so the inverse is a pre-change snapshot like ResampleAction.
type ResizeCanvasAction struct {
	W, H int
}

func (a *ResizeCanvasAction) apply(e *Editor, computeInverse bool) Action {
	if a.W == e.img.W && a.H == e.img.H {
		return nil
	}
	var inv Action
	if computeInverse {
		inv = &ReplaceCanvasAction{Img: e.img.Clone()}
	}
	e.img.ResizeCanvas(a.W, a.H)
	return inv
}

// SeqAction applies child actions in order and undoes them atomically:
// its inverse is the child inverses in reverse order.
type SeqAction struct {
	Actions []Action
}

func (a *SeqAction) apply(e *Editor, computeInverse bool) Action {
	var inverses []Action
	for _, child := range a.Actions {
		inv := child.apply(e, computeInverse)
		if inv != nil && computeInverse {
			inverses = append([]Action{inv}, inverses...)
		}
	}
	if len(inverses) == 0 {
		return nil
	}
	if len(inverses) == 1 {
		return inverses[0]
	}
	return &SeqAction{Actions: inverses}
}
