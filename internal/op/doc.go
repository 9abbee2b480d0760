// Package op defines the closed algebra of edit operations and their
// apply/inverse semantics.
//
// Every editing action, from stroke drawing to region fills to image
// pastes, is a value of the sealed Op interface. Applying an operation
// mutates a raster.Surface and, on request, yields the exact inverse
// operation: applying the inverse to the surface state produced by the
// forward operation restores the prior state bit for bit.
//
// # Inverse Payloads
//
// Operations fall into three families by how their inverse is captured:
//
//   - Region writes (SetImage, FillRect, Gradient and the scale/rotate
//     variants that delegate to SetImage) pre-read the destination
//     rectangle, clipped to the surface, into a full rectangular buffer.
//     The inverse is a non-blending SetImage of that buffer.
//
//   - Sparse writes (Block, Line, Pencil, RectOutline, CircleOutline)
//     accumulate touched pixels into a SparseImage. A pixel's original
//     color is recorded only the first time it is touched during one
//     apply, so self-overlapping strokes restore the true original.
//
//   - BucketFill accumulates into an OptionalImage, a dense array of
//     optional colors, because the touched set can approach the whole
//     canvas and "untouched" must stay distinguishable from "transparent".
//
// Markers carry no pixel mutation and never produce an inverse; they only
// delimit interactive strokes for the undo engine's coalescing.
//
// # Edge Cases
//
// Coordinates outside the surface are silently dropped from both the write
// and the inverse pre-read; no operation in this package can fail.
package op
