// Package pipeline runs the validate → layout sequence shared by the CLI
// and the HTTP API.
//
// Centralizing the sequence keeps the contract in one place: the validator
// always runs first, the engine only sees schemes that passed it, and the
// advisory bounds check always accompanies computed positions. Results are
// optionally cached by a hash of the canonical request, so identical
// requests are served from cache without recomputation (the computation is
// pure, so a hit and a recomputation are indistinguishable).
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	res, err := runner.Run(ctx, s, pipeline.Options{Constants: layout.DefaultConstants()})
//	if err != nil {
//	    return err
//	}
//	if !res.Report.Valid {
//	    // surface res.Report to the caller
//	}
package pipeline

import (
	"time"

	"github.com/Denizche/divscheme/pkg/bom"
	"github.com/Denizche/divscheme/pkg/gost"
	"github.com/Denizche/divscheme/pkg/layout"
)

// DefaultCacheTTL bounds the life of cached layout results.
const DefaultCacheTTL = 24 * time.Hour

// Options configures one pipeline run.
type Options struct {
	// Constants is the layout geometry. The zero value is replaced with
	// layout.DefaultConstants.
	Constants layout.Constants

	// NoCache skips the cache entirely for this run.
	NoCache bool

	// CacheTTL overrides DefaultCacheTTL when positive.
	CacheTTL time.Duration
}

// Result is the outcome of one pipeline run.
type Result struct {
	// RequestID identifies this run in logs and API responses.
	RequestID string `json:"request_id"`

	// Report is the full validation report. When Report.Valid is false the
	// remaining fields are empty: no layout is computed for invalid schemes.
	Report gost.Report `json:"report"`

	// Positions maps each component position number to its placement
	// coordinate in millimeters (top-left origin, y downward).
	Positions map[int]layout.Point `json:"positions,omitempty"`

	// PageWidth and PageHeight are the oriented sheet dimensions the
	// positions were computed for.
	PageWidth  float64 `json:"page_width,omitempty"`
	PageHeight float64 `json:"page_height,omitempty"`

	// LayoutWarnings are advisory notes from the engine itself (layout type
	// fallback, horizontal overflow).
	LayoutWarnings []string `json:"layout_warnings,omitempty"`

	// BoundsWarnings are the advisory post-check findings.
	BoundsWarnings []string `json:"bounds_warnings,omitempty"`

	// BOM is the bill of materials, present when the scheme asked for it.
	BOM []bom.Row `json:"bom,omitempty"`

	// Cached reports whether the layout came from the cache.
	Cached bool `json:"-"`
}
