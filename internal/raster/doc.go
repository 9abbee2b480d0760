// Package raster implements pixel-level drawing algorithms over an abstract
// surface capability.
//
// All algorithms in this package are generic over the Surface interface and
// never assume a concrete storage layout. The coordinate system is 0-based
// with the origin at the top-left corner: X increases rightward, Y increases
// downward.
//
// # Surface Capability
//
// A Surface exposes width, height, pixel read, plain pixel write, and
// alpha-blended pixel write. Out-of-bounds reads return the zero (fully
// transparent) color and out-of-bounds writes are silently dropped; the
// algorithms in this package rely on that clipping behavior and never
// bounds-check on their own.
//
// # Algorithms
//
// The package provides integer (Bresenham) and anti-aliased (Wu) line
// rasterization, thick strokes swept along the perpendicular, midpoint
// circles (border and filled), a two-row anti-aliased circle, an iterative
// 8-connected flood fill with color tolerance, and linear/radial color
// gradients.
//
// # Error Handling
//
// Nothing in this package fails. Degenerate geometry (zero-length lines,
// zero radii, empty rectangles) rasterizes to whatever pixel set the
// algorithm naturally produces, which may be empty.
package raster
