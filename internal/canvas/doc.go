// Package canvas implements the layer and canvas model: an ordered set of
// raster layers with visibility state, composed into a single image for
// saving or display.
//
// Layers are never physically removed from a canvas. Deleting a layer only
// flips its state tag to LayerDeleted, so layer indices stored in the undo
// history stay valid for the lifetime of the canvas.
//
// # Resizing
//
// The model distinguishes two size changes:
//
//   - Resample: every layer is resampled to the new dimensions with a
//     triangle filter, as when scaling the artwork itself.
//
//   - ResizeCanvas: every layer gets a fresh buffer at the new size, the
//     overlapping region is copied verbatim, and newly exposed area is
//     fully transparent. No resampling or blending occurs.
package canvas
