// Package editor binds pixel operations to a canvas and keeps the
// reversible history that drives undo and redo.
//
// Every change goes through an Action. Applying an action produces its
// inverse, and the pair is pushed as one history entry. Undo pops an entry,
// applies the stored inverse, and moves the entry to the redo stack. Redo
// re-runs the original action through the normal apply path, computing a
// fresh inverse against the current canvas rather than trusting the stored
// one.
//
// Actions that change nothing produce no inverse and never enter the
// history, so undo always has a visible effect.
//
// # Strokes
//
// Freehand tools emit one action per pointer event. BeginStroke marks where
// a stroke starts and EndStroke coalesces the entries recorded since then
// into a single history entry, so one undo removes the whole stroke.
//
// # Commands
//
// Queue is the FIFO feeding the editor from a host loop: commands pushed
// during a frame are drained in order, one Drain per frame.
package editor
