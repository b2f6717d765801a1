// Package gost validates division schemes against GOST 2.701 structure rules.
//
// The validator is a pure function over one scheme request: it runs every
// check in a single pass, never mutates its input, and never stops at the
// first violation, so a caller always receives the complete picture.
// Findings are split into blocking errors (the scheme must not be laid out
// or rendered) and advisory warnings (surfaced but non-blocking).
//
// Checked rules:
//   - title block presence, mandatory designation/name, designation format
//   - designation format XXXX.XX.XX.XXX for every component
//   - positional number uniqueness, quantity >= 1, level >= 0
//   - parent references resolve and parents sit at a strictly lower level
//   - exactly one main product (level 0)
//   - page format, orientation, and layout type are from the supported sets
package gost
