package editor

import (
	"github.com/ironsheep/pixel-edit/internal/op"
)

// BeginStroke opens a freehand stroke. The label is carried into the
// coalesced history entry; it is what an undo list would display.
//
// The stroke start marker only enters the history attached to the first
// edit, so an aborted stroke with no edits leaves no trace.
func (e *Editor) BeginStroke(label string) {
	e.pendingStroke = &label
}

// EndStroke closes the current stroke and merges every history entry it
// produced into one, so a multi-event drag undoes in a single step.
func (e *Editor) EndStroke() {
	e.pendingStroke = nil
	e.coalesceStroke()
}

// coalesceStroke rewrites the tail of the undo stack: it finds the entry
// holding the stroke's begin marker, takes the contiguous run of pixel
// entries from there on the same layer, and replaces the run with one
// merged entry. Forward operations keep their order; inverses are applied
// newest first so intermediate states unwind correctly.
func (e *Editor) coalesceStroke() {
	start := -1
	var layer int
	for i := len(e.undo) - 1; i >= 0; i-- {
		pa, ok := e.undo[i].forward.(*PixelAction)
		if !ok {
			break
		}
		if op.ContainsMarker(pa.Op, op.BeginDraw) {
			start = i
			layer = pa.Layer
			break
		}
	}
	if start < 0 {
		return
	}

	end := start
	for end < len(e.undo) {
		pa, ok := e.undo[end].forward.(*PixelAction)
		if !ok || pa.Layer != layer {
			break
		}
		end++
	}
	run := e.undo[start:end]
	if len(run) == 0 {
		return
	}

	var label string
	var forwards, inverses []op.Op
	for _, ent := range run {
		fwd := ent.forward.(*PixelAction)
		if label == "" {
			label = markerMessage(fwd.Op)
		}
		if o := op.StripMarkers(fwd.Op); o != nil {
			forwards = append(forwards, o)
		}
		inv := ent.inverse.(*PixelAction)
		if o := op.StripMarkers(inv.Op); o != nil {
			inverses = append([]op.Op{o}, inverses...)
		}
	}
	if len(forwards) == 0 || len(inverses) == 0 {
		e.undo = append(e.undo[:start], e.undo[end:]...)
		return
	}

	merged := entry{
		forward:   &PixelAction{Layer: layer, Op: wrapRun(label, forwards)},
		inverse:   &PixelAction{Layer: layer, Op: wrapRun(label, inverses)},
		selection: run[0].selection,
	}
	tail := append([]entry{merged}, e.undo[end:]...)
	e.undo = append(e.undo[:start], tail...)
}

func wrapRun(label string, ops []op.Op) op.Op {
	if len(ops) == 1 && label == "" {
		return ops[0]
	}
	return &op.Sequential{Message: label, Ops: ops}
}

func markerMessage(o op.Op) string {
	seq, ok := o.(*op.Sequential)
	if !ok {
		return ""
	}
	for _, child := range seq.Ops {
		if m, ok := child.(*op.Marker); ok && m.Kind == op.BeginDraw {
			return m.Message
		}
	}
	return ""
}
