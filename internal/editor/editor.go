package editor

import (
	"image"
	"image/color"

	"github.com/ironsheep/pixel-edit/internal/canvas"
	"github.com/ironsheep/pixel-edit/internal/op"
	"github.com/ironsheep/pixel-edit/internal/raster"
)

// entry pairs an applied action with the inverse computed when it ran,
// plus the selection that was active at the time so undo and redo mask
// pixel writes identically to the original application.
type entry struct {
	forward   Action
	inverse   Action
	selection *image.Rectangle
}

// Editor owns a canvas, the active layer and selection, the tool state the
// host reports, and the undo/redo history.
type Editor struct {
	img       *canvas.Image
	active    int
	selection *image.Rectangle

	undo []entry
	redo []entry

	// pendingStroke holds the BeginStroke label until the first edit of
	// the stroke arrives and absorbs the marker.
	pendingStroke *string

	dirty bool

	// Host-reported tool state. Opaque to the engine.
	Tool      string
	Primary   color.NRGBA
	Secondary color.NRGBA
}

// New returns an editor over img with layer 0 active and a clean history.
func New(img *canvas.Image) *Editor {
	return &Editor{img: img, Primary: color.NRGBA{A: 0xff}}
}

// Canvas returns the canvas currently being edited.
func (e *Editor) Canvas() *canvas.Image { return e.img }

// ActiveLayer returns the index pixel actions currently target.
func (e *Editor) ActiveLayer() int { return e.active }

// Selection returns the active selection rectangle, or nil when edits are
// unrestricted.
func (e *Editor) Selection() *image.Rectangle { return e.selection }

// SetSelection restricts subsequent pixel writes to r. Reads are not
// restricted, so strokes near the border still blend against pixels
// outside it.
func (e *Editor) SetSelection(r image.Rectangle) {
	r = r.Canon()
	e.selection = &r
}

// ClearSelection lifts the write restriction.
func (e *Editor) ClearSelection() { e.selection = nil }

// Dirty reports whether the canvas changed since the last Commit.
func (e *Editor) Dirty() bool { return e.dirty }

// Commit marks the current canvas state as saved.
func (e *Editor) Commit() { e.dirty = false }

// CanUndo reports whether the undo stack is non-empty.
func (e *Editor) CanUndo() bool { return len(e.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (e *Editor) CanRedo() bool { return len(e.redo) > 0 }

func (e *Editor) layerSurface(i int) raster.Surface {
	var s raster.Surface = e.img.Layers[i].Surface()
	if e.selection != nil {
		s = raster.WithRegion(s, *e.selection)
	}
	return s
}

// Do applies an action, records it for undo if it changed anything, and
// clears the redo stack. New edits after an undo discard the undone future.
func (e *Editor) Do(a Action) {
	inv := a.apply(e, true)
	e.dirty = true
	e.redo = e.redo[:0]
	if inv != nil {
		e.undo = append(e.undo, entry{forward: a, inverse: inv, selection: e.selection})
	}
}

// ApplyOp runs a pixel operation against the active layer. A pending
// BeginStroke label is folded into the operation so the stroke start
// travels with the first entry it produced. The label stays armed until
// some edit actually enters the history: an opening edit that touches
// nothing (off canvas, or fully outside the selection) must not swallow
// the marker, or the rest of the stroke would never coalesce.
func (e *Editor) ApplyOp(o op.Op) {
	if e.pendingStroke != nil {
		msg := *e.pendingStroke
		wrapped := &op.Sequential{
			Message: msg,
			Ops:     []op.Op{&op.Marker{Kind: op.BeginDraw, Message: msg}, o},
		}
		before := len(e.undo)
		e.Do(&PixelAction{Layer: e.active, Op: wrapped})
		if len(e.undo) > before {
			e.pendingStroke = nil
		}
		return
	}
	e.Do(&PixelAction{Layer: e.active, Op: o})
}

// Undo reverses the most recent history entry. It reports false when the
// history is empty.
func (e *Editor) Undo() bool {
	if len(e.undo) == 0 {
		return false
	}
	ent := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.withSelection(ent.selection, func() {
		ent.inverse.apply(e, false)
	})
	e.redo = append(e.redo, ent)
	e.dirty = true
	return true
}

// Redo re-applies the most recently undone action through the normal apply
// path, computing a fresh inverse. It reports false when there is nothing
// to redo.
func (e *Editor) Redo() bool {
	if len(e.redo) == 0 {
		return false
	}
	ent := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.withSelection(ent.selection, func() {
		if inv := ent.forward.apply(e, true); inv != nil {
			e.undo = append(e.undo, entry{forward: ent.forward, inverse: inv, selection: ent.selection})
		}
	})
	e.dirty = true
	return true
}

// withSelection runs fn with the history entry's recorded selection in
// place of the live one, so undone and redone pixel writes are masked
// exactly as the original application was.
func (e *Editor) withSelection(sel *image.Rectangle, fn func()) {
	saved := e.selection
	e.selection = sel
	fn()
	e.selection = saved
}

// AddLayer appends a new transparent layer and makes it active.
func (e *Editor) AddLayer() {
	idx := len(e.img.Layers)
	e.Do(&SeqAction{Actions: []Action{
		&AddLayerAction{Index: idx},
		&ActiveLayerAction{Index: idx},
	}})
}

// DuplicateLayer copies layer i to the top of the stack and makes the copy
// active. Only visible layers may be duplicated.
func (e *Editor) DuplicateLayer(i int) bool {
	if i < 0 || i >= len(e.img.Layers) || e.img.Layers[i].State != canvas.LayerVisible {
		return false
	}
	idx := len(e.img.Layers)
	e.Do(&SeqAction{Actions: []Action{
		&DuplicateLayerAction{Source: i, Index: idx},
		&ActiveLayerAction{Index: idx},
	}})
	return true
}

// DeleteLayer soft-deletes layer i. Deleting the active layer retargets
// the lowest surviving layer in the same history entry, so undo restores
// both the layer and the active index together. The last alive layer
// cannot be deleted.
func (e *Editor) DeleteLayer(i int) bool {
	if i < 0 || i >= len(e.img.Layers) || !e.img.Layers[i].Alive() {
		return false
	}
	survivor := e.img.FirstAlive(i)
	if survivor < 0 {
		return false
	}
	actions := []Action{&LayerStateAction{Index: i, State: canvas.LayerDeleted}}
	if e.active == i {
		actions = append(actions, &ActiveLayerAction{Index: survivor})
	}
	e.Do(&SeqAction{Actions: actions})
	return true
}

// SetLayerState hides, unhides or deletes layer i as one history entry.
func (e *Editor) SetLayerState(i int, s canvas.LayerState) {
	if i < 0 || i >= len(e.img.Layers) {
		return
	}
	if s == canvas.LayerDeleted {
		e.DeleteLayer(i)
		return
	}
	e.Do(&LayerStateAction{Index: i, State: s})
}

// SetActiveLayer retargets pixel actions to layer i. The target must be
// alive.
func (e *Editor) SetActiveLayer(i int) bool {
	if i < 0 || i >= len(e.img.Layers) || !e.img.Layers[i].Alive() {
		return false
	}
	e.Do(&ActiveLayerAction{Index: i})
	return true
}

// Replace swaps in a different canvas, resetting the active layer to its
// bottom layer. Used for loading a file and for starting a new image.
func (e *Editor) Replace(img *canvas.Image) {
	e.Do(&SeqAction{Actions: []Action{
		&ReplaceCanvasAction{Img: img},
		&ActiveLayerAction{Index: 0},
	}})
}

// Resample rescales the whole canvas to w x h.
func (e *Editor) Resample(w, h int) {
	e.Do(&ResampleAction{W: w, H: h})
}

// ResizeCanvas crops or pads the whole canvas to w x h.
func (e *Editor) ResizeCanvas(w, h int) {
	e.Do(&ResizeCanvasAction{W: w, H: h})
}
