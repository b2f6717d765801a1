// Package pkg provides the core libraries for divscheme division scheme
// validation and layout.
//
// # Overview
//
// Divscheme checks product division schemes (GOST 2.701) for structural
// integrity and computes 2D placement coordinates for their components on a
// drawing sheet. The pkg directory is organized into:
//
//  1. [scheme] - Data model (components, title block, sheet configuration, index)
//  2. [gost] - Structural validation against GOST 2.701
//  3. [layout] - Placement strategies (tree, vertical, horizontal) and bounds checks
//  4. [bom] - Bill of materials rows
//  5. [pipeline] - Orchestration (validate → layout), used by CLI and API
//  6. [cache], [io], [errors], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Scheme request (JSON)
//	         ↓
//	    [gost] package (validate, collect errors and warnings)
//	         ↓
//	    [layout] package (compute positions, advisory bounds check)
//	         ↓
//	    positions + report + BOM, consumed by an external renderer
//
// Validation and layout are pure functions over immutable input: no shared
// state, no I/O, O(n) in the number of components. Concurrent requests need
// no coordination.
//
// # Quick Start
//
//	v := gost.NewValidator()
//	report := v.Report(s)
//	if !report.Valid {
//	    // surface report.Errors, stop here
//	}
//
//	engine := layout.NewEngine(layout.DefaultConstants())
//	positions, warns := engine.CalculatePositions(s.Components, s.LayoutType, s.Format, s.Orientation)
//
// Coordinates are in millimeters with a top-left origin; y increases
// downward. Renderers with a bottom-left origin must invert the axis.
//
// [scheme]: https://pkg.go.dev/github.com/Denizche/divscheme/pkg/scheme
// [gost]: https://pkg.go.dev/github.com/Denizche/divscheme/pkg/gost
// [layout]: https://pkg.go.dev/github.com/Denizche/divscheme/pkg/layout
// [bom]: https://pkg.go.dev/github.com/Denizche/divscheme/pkg/bom
// [pipeline]: https://pkg.go.dev/github.com/Denizche/divscheme/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/Denizche/divscheme/pkg/cache
// [io]: https://pkg.go.dev/github.com/Denizche/divscheme/pkg/io
// [errors]: https://pkg.go.dev/github.com/Denizche/divscheme/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/Denizche/divscheme/pkg/buildinfo
package pkg
