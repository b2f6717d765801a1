package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/Denizche/divscheme/pkg/scheme"
)

// Engine places division scheme components on a sheet. It is stateless apart
// from its constants and safe for concurrent use.
type Engine struct {
	c Constants
}

// NewEngine creates an engine with the given constants.
func NewEngine(c Constants) *Engine {
	return &Engine{c: c}
}

// Constants returns the engine's geometry configuration.
func (e *Engine) Constants() Constants { return e.c }

// CalculatePositions computes a coordinate for every component and returns
// the position → point map together with advisory warnings. It never fails
// for a structurally valid component list: an unknown layout type falls back
// to tree (with a warning), an unknown page format falls back to A3, and
// overflowing components are still placed.
func (e *Engine) CalculatePositions(
	components []scheme.Component,
	layoutType scheme.LayoutType,
	format scheme.PageFormat,
	orientation scheme.Orientation,
) (map[int]Point, []string) {
	pageW, pageH := pageSize(format, orientation)

	switch layoutType {
	case scheme.LayoutTree:
		return e.layoutTree(components, pageW), nil
	case scheme.LayoutVertical:
		return e.layoutVertical(components, pageW), nil
	case scheme.LayoutHorizontal:
		return e.layoutHorizontal(components, pageW, pageH)
	default:
		warns := []string{fmt.Sprintf("unknown layout type %q, falling back to tree", string(layoutType))}
		return e.layoutTree(components, pageW), warns
	}
}

// pageSize resolves the oriented sheet dimensions. Unknown formats fall back
// to A3; the validator rejects them before layout in the normal sequence.
func pageSize(format scheme.PageFormat, orientation scheme.Orientation) (width, height float64) {
	long, short, ok := format.Size()
	if !ok {
		long, short, _ = scheme.FormatA3.Size()
	}
	return orientation.Apply(long, short)
}

// layoutTree places components level by level from the top margin downward.
// Each level is wrapped into rows of itemsPerRow and centered using the full
// level count, so only the first row of a wrapped level is truly centered.
// See the package docs for the coordinate convention.
func (e *Engine) layoutTree(components []scheme.Component, pageW float64) map[int]Point {
	positions := make(map[int]Point, len(components))
	levels, order := groupByLevel(components)

	availableWidth := pageW - e.c.MarginLeft - e.c.MarginRight
	itemsPerRow := int(math.Max(1, math.Floor(availableWidth/(e.c.BoxWidth+e.c.HSpacing))))

	y := e.c.MarginTop
	for _, level := range order {
		items := levels[level]

		totalWidth := float64(len(items)) * (e.c.BoxWidth + e.c.HSpacing)
		xOffset := (availableWidth-totalWidth)/2 + e.c.MarginLeft

		x := xOffset
		for i, comp := range items {
			if i > 0 && i%itemsPerRow == 0 {
				x = xOffset
				y += e.c.BoxHeight + e.c.VSpacing
			}
			positions[comp.Position] = Point{X: x, Y: y}
			x += e.c.BoxWidth + e.c.HSpacing
		}

		y += e.c.LevelSpacing
	}

	return positions
}

// layoutVertical places components in one horizontally centered column, in
// input order. Hierarchy levels are ignored in this mode.
func (e *Engine) layoutVertical(components []scheme.Component, pageW float64) map[int]Point {
	positions := make(map[int]Point, len(components))

	x := (pageW - e.c.BoxWidth) / 2
	y := e.c.MarginTop
	for _, comp := range components {
		positions[comp.Position] = Point{X: x, Y: y}
		y += e.c.BoxHeight + e.c.VSpacing
	}

	return positions
}

// layoutHorizontal places components in one vertically centered row, in input
// order. The row never wraps: components that pass the right margin are still
// placed and reported as warnings.
func (e *Engine) layoutHorizontal(components []scheme.Component, pageW, pageH float64) (map[int]Point, []string) {
	positions := make(map[int]Point, len(components))
	var warns []string

	y := (pageH - e.c.BoxHeight) / 2
	x := e.c.MarginLeft
	for _, comp := range components {
		if x+e.c.BoxWidth > pageW-e.c.MarginRight {
			warns = append(warns, fmt.Sprintf("component %d extends past the right sheet margin", comp.Position))
		}
		positions[comp.Position] = Point{X: x, Y: y}
		x += e.c.BoxWidth + e.c.HSpacing
	}

	return positions, warns
}

// CheckBounds is the advisory post-check over computed positions: one warning
// per component whose box leaves the sheet. It neither mutates nor rejects
// positions, and callers may consume positions without running it.
func (e *Engine) CheckBounds(positions map[int]Point, pageW, pageH float64) []string {
	ids := make([]int, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var warns []string
	for _, id := range ids {
		p := positions[id]
		if p.X < 0 || p.Y < 0 {
			warns = append(warns, fmt.Sprintf("component %d extends past the left or top sheet edge (negative coordinate)", id))
		}
		if p.X+e.c.BoxWidth > pageW {
			warns = append(warns, fmt.Sprintf("component %d extends past the right sheet edge", id))
		}
		if p.Y+e.c.BoxHeight > pageH {
			warns = append(warns, fmt.Sprintf("component %d extends past the bottom sheet edge", id))
		}
	}

	return warns
}

// groupByLevel buckets components by hierarchy level, preserving the input
// order within each level, and returns the levels in ascending order.
func groupByLevel(components []scheme.Component) (map[int][]scheme.Component, []int) {
	levels := make(map[int][]scheme.Component)
	for _, c := range components {
		levels[c.Level] = append(levels[c.Level], c)
	}

	order := make([]int, 0, len(levels))
	for level := range levels {
		order = append(order, level)
	}
	sort.Ints(order)

	return levels, order
}
