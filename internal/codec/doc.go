// Package codec reads image files into single-layer canvases and writes
// flattened canvases back out.
//
// Supported formats are PNG, JPEG, GIF, BMP and TIFF. Loading records the
// detected format on the canvas so a plain save round-trips through the
// same encoder; saving with a different extension switches format.
package codec
