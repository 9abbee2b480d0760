package editor

import (
	"image"
	"image/color"

	"github.com/ironsheep/pixel-edit/internal/canvas"
	"github.com/ironsheep/pixel-edit/internal/op"
)

// Command is one deferred editor intent. Hosts push commands as input
// events arrive and drain them once per frame, so edits land between
// renders rather than during one.
type Command interface {
	run(e *Editor)
}

// Queue is the FIFO of pending commands. The zero value is ready to use.
// It is not safe for concurrent use; hosts push and drain from one
// goroutine.
type Queue struct {
	cmds []Command
}

// Push appends a command to the queue.
func (q *Queue) Push(c Command) {
	q.cmds = append(q.cmds, c)
}

// Len returns the number of pending commands.
func (q *Queue) Len() int { return len(q.cmds) }

// Drain runs every pending command against e in push order and empties
// the queue, commands pushed mid-drain included. It returns the number of
// commands run.
func (q *Queue) Drain(e *Editor) int {
	n := 0
	for len(q.cmds) > 0 {
		c := q.cmds[0]
		q.cmds = q.cmds[1:]
		c.run(e)
		n++
	}
	return n
}

// ApplyCommand runs a pixel operation on the active layer.
type ApplyCommand struct {
	Op op.Op
}

func (c ApplyCommand) run(e *Editor) { e.ApplyOp(c.Op) }

// UndoCommand reverses the most recent history entry.
type UndoCommand struct{}

func (UndoCommand) run(e *Editor) { e.Undo() }

// RedoCommand re-applies the most recently undone entry.
type RedoCommand struct{}

func (RedoCommand) run(e *Editor) { e.Redo() }

// BeginStrokeCommand opens a freehand stroke with a display label.
type BeginStrokeCommand struct {
	Label string
}

func (c BeginStrokeCommand) run(e *Editor) { e.BeginStroke(c.Label) }

// EndStrokeCommand closes the current stroke and coalesces its entries.
type EndStrokeCommand struct{}

func (EndStrokeCommand) run(e *Editor) { e.EndStroke() }

// NewImageCommand replaces the canvas with a blank one.
type NewImageCommand struct {
	W, H int
}

func (c NewImageCommand) run(e *Editor) { e.Replace(canvas.New(c.W, c.H)) }

// ResampleCommand rescales the canvas.
type ResampleCommand struct {
	W, H int
}

func (c ResampleCommand) run(e *Editor) { e.Resample(c.W, c.H) }

// ResizeCanvasCommand crops or pads the canvas.
type ResizeCanvasCommand struct {
	W, H int
}

func (c ResizeCanvasCommand) run(e *Editor) { e.ResizeCanvas(c.W, c.H) }

// SelectCommand sets the selection rectangle.
type SelectCommand struct {
	Region image.Rectangle
}

func (c SelectCommand) run(e *Editor) { e.SetSelection(c.Region) }

// ClearSelectionCommand lifts the selection.
type ClearSelectionCommand struct{}

func (ClearSelectionCommand) run(e *Editor) { e.ClearSelection() }

// AddLayerCommand appends a layer and makes it active.
type AddLayerCommand struct{}

func (AddLayerCommand) run(e *Editor) { e.AddLayer() }

// DuplicateLayerCommand copies a visible layer to the top of the stack.
type DuplicateLayerCommand struct {
	Index int
}

func (c DuplicateLayerCommand) run(e *Editor) { e.DuplicateLayer(c.Index) }

// DeleteLayerCommand soft-deletes a layer.
type DeleteLayerCommand struct {
	Index int
}

func (c DeleteLayerCommand) run(e *Editor) { e.DeleteLayer(c.Index) }

// SetLayerStateCommand hides, unhides or deletes a layer.
type SetLayerStateCommand struct {
	Index int
	State canvas.LayerState
}

func (c SetLayerStateCommand) run(e *Editor) { e.SetLayerState(c.Index, c.State) }

// SetActiveLayerCommand retargets pixel edits.
type SetActiveLayerCommand struct {
	Index int
}

func (c SetActiveLayerCommand) run(e *Editor) { e.SetActiveLayer(c.Index) }

// SetToolCommand records the host's tool choice. Not undoable.
type SetToolCommand struct {
	Tool string
}

func (c SetToolCommand) run(e *Editor) { e.Tool = c.Tool }

// SetColorCommand records the host's color choice. Not undoable.
type SetColorCommand struct {
	Color     color.NRGBA
	Secondary bool
}

func (c SetColorCommand) run(e *Editor) {
	if c.Secondary {
		e.Secondary = c.Color
	} else {
		e.Primary = c.Color
	}
}
