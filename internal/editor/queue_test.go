package editor

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/pixel-edit/internal/op"
)

func TestQueueDrainOrder(t *testing.T) {
	e := newEditor(8, 8)
	var q Queue

	q.Push(ApplyCommand{Op: &op.FillRect{Rect: image.Rect(0, 0, 8, 8), Color: red}})
	q.Push(ApplyCommand{Op: &op.Block{X: 2, Y: 2, Color: blue}})
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}

	if n := q.Drain(e); n != 2 {
		t.Fatalf("Drain ran %d commands, want 2", n)
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after drain: %d", q.Len())
	}

	// The block ran after the fill, so it is on top.
	pix := e.Canvas().Layers[0].Pix
	if got := pix.NRGBAAt(2, 2); got != blue {
		t.Errorf("pixel (2,2) = %v, want %v", got, blue)
	}
	if got := pix.NRGBAAt(6, 6); got != red {
		t.Errorf("pixel (6,6) = %v, want %v", got, red)
	}
}

func TestQueueStrokeThenUndo(t *testing.T) {
	e := newEditor(16, 16)
	var q Queue

	q.Push(BeginStrokeCommand{Label: "Pencil"})
	q.Push(ApplyCommand{Op: &op.Block{X: 2, Y: 2, HalfWidth: 1, Color: red}})
	q.Push(ApplyCommand{Op: &op.Block{X: 5, Y: 2, HalfWidth: 1, Color: red}})
	q.Push(EndStrokeCommand{})
	q.Drain(e)

	if n := len(e.undo); n != 1 {
		t.Fatalf("history entries = %d, want 1 coalesced stroke", n)
	}

	q.Push(UndoCommand{})
	q.Drain(e)
	if got := e.Canvas().Layers[0].Pix.NRGBAAt(2, 2); got != (color.NRGBA{}) {
		t.Errorf("pixel after undo = %v, want transparent", got)
	}

	q.Push(RedoCommand{})
	q.Drain(e)
	if got := e.Canvas().Layers[0].Pix.NRGBAAt(2, 2); got != red {
		t.Errorf("pixel after redo = %v, want %v", got, red)
	}
}

func TestQueueToolAndColorState(t *testing.T) {
	e := newEditor(4, 4)
	var q Queue

	q.Push(SetToolCommand{Tool: "eraser"})
	q.Push(SetColorCommand{Color: green})
	q.Push(SetColorCommand{Color: blue, Secondary: true})
	q.Drain(e)

	if e.Tool != "eraser" {
		t.Errorf("Tool = %q, want eraser", e.Tool)
	}
	if e.Primary != green || e.Secondary != blue {
		t.Errorf("colors = %v / %v, want %v / %v", e.Primary, e.Secondary, green, blue)
	}
	if e.CanUndo() {
		t.Error("tool state changes entered the history")
	}
}

func TestQueueLayerCommands(t *testing.T) {
	e := newEditor(8, 8)
	var q Queue

	q.Push(AddLayerCommand{})
	q.Push(ApplyCommand{Op: &op.Block{X: 3, Y: 3, Color: green}})
	q.Push(SetActiveLayerCommand{Index: 0})
	q.Push(DeleteLayerCommand{Index: 1})
	q.Drain(e)

	if e.Canvas().Layers[1].Alive() {
		t.Error("layer 1 still alive after delete command")
	}
	if e.ActiveLayer() != 0 {
		t.Errorf("active layer = %d, want 0", e.ActiveLayer())
	}
}

func TestQueueNewImage(t *testing.T) {
	e := newEditor(8, 8)
	var q Queue

	q.Push(NewImageCommand{W: 32, H: 24})
	q.Drain(e)

	if e.Canvas().W != 32 || e.Canvas().H != 24 {
		t.Errorf("canvas = %dx%d, want 32x24", e.Canvas().W, e.Canvas().H)
	}
	if e.ActiveLayer() != 0 {
		t.Errorf("active layer = %d, want 0", e.ActiveLayer())
	}
}
