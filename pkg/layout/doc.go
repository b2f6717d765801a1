// Package layout computes 2D placement coordinates for division scheme
// components on a GOST sheet.
//
// # Coordinate Convention
//
// All coordinates are in millimeters. The origin is the top-left corner of
// the sheet and y increases DOWNWARD: the first row of a layout sits at the
// top margin and later rows and levels grow toward the bottom edge. Renderers
// that use a bottom-left, upward-increasing origin must invert the axis
// explicitly; the engine never guesses.
//
// # Strategies
//
// Three placement strategies are supported:
//   - tree: components grouped by hierarchy level, one band of rows per
//     level, each level centered horizontally and wrapped when it exceeds
//     the usable sheet width
//   - vertical: a single centered column in input order
//   - horizontal: a single centered row in input order, never wrapped
//
// The engine is deliberately permissive: it never fails for a structurally
// valid component list, even when the result overflows the sheet. Overflow
// is reported separately by the advisory [Engine.CheckBounds] post-check.
// An unknown layout type degrades to tree and is reported as a warning.
//
// Tree centering quirk, kept for compatibility with the reference behavior:
// the per-level centering offset is computed from the full level count, so
// when a level wraps across rows only the first row is actually centered.
package layout
