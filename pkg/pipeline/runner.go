package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Denizche/divscheme/pkg/bom"
	"github.com/Denizche/divscheme/pkg/cache"
	"github.com/Denizche/divscheme/pkg/gost"
	"github.com/Denizche/divscheme/pkg/layout"
	"github.com/Denizche/divscheme/pkg/scheme"
)

// Runner executes the pipeline with a shared validator, cache, and logger.
// It is safe for concurrent use.
type Runner struct {
	validator *gost.Validator
	cache     cache.Cache
	logger    *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil logger
// falls back to log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		validator: gost.NewValidator(),
		cache:     c,
		logger:    logger,
	}
}

// Validate runs only the validation stage and returns the full report.
func (r *Runner) Validate(s *scheme.Scheme) gost.Report {
	return r.validator.Report(s)
}

// Run validates s and, when valid, computes its layout. Validation findings
// are data on the Result, never an error: Run returns an error only for
// operational failures. Cache trouble degrades to recomputation and is
// logged, not returned.
func (r *Runner) Run(ctx context.Context, s *scheme.Scheme, opts Options) (*Result, error) {
	requestID := uuid.NewString()
	logger := r.logger.With("request_id", requestID)

	if (opts.Constants == layout.Constants{}) {
		opts.Constants = layout.DefaultConstants()
	}
	if err := opts.Constants.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	report := r.validator.Report(s)
	logger.Debug("validated scheme",
		"product", s.ProductName,
		"components", report.ComponentCount,
		"errors", report.ErrorCount,
		"warnings", report.WarningCount,
		"took", time.Since(start).Round(time.Microsecond))

	res := &Result{RequestID: requestID, Report: report}
	if !report.Valid {
		logger.Warn("scheme failed validation", "errors", report.ErrorCount)
		return res, nil
	}

	key := cache.Key("layout", s, opts.Constants)
	if !opts.NoCache {
		if cached, ok := r.lookup(ctx, logger, key); ok {
			cached.RequestID = requestID
			cached.Report = report
			cached.Cached = true
			return cached, nil
		}
	}

	engine := layout.NewEngine(opts.Constants)
	start = time.Now()
	positions, layoutWarns := engine.CalculatePositions(s.Components, s.LayoutType, s.Format, s.Orientation)
	pageW, pageH := s.PageSize()

	res.Positions = positions
	res.PageWidth = pageW
	res.PageHeight = pageH
	res.LayoutWarnings = layoutWarns
	res.BoundsWarnings = engine.CheckBounds(positions, pageW, pageH)
	if s.IncludeBOM {
		res.BOM = bom.Build(s.Components)
	}

	logger.Debug("computed layout",
		"layout_type", s.LayoutType,
		"placed", len(positions),
		"bounds_warnings", len(res.BoundsWarnings),
		"took", time.Since(start).Round(time.Microsecond))

	if !opts.NoCache {
		r.store(ctx, logger, key, res, opts.CacheTTL)
	}

	return res, nil
}

// lookup fetches and decodes a cached result. Any failure is logged and
// treated as a miss.
func (r *Runner) lookup(ctx context.Context, logger *log.Logger, key string) (*Result, bool) {
	data, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "err", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		logger.Warn("cache entry corrupt, ignoring", "err", err)
		return nil, false
	}

	logger.Debug("layout served from cache")
	return &res, true
}

// store writes a computed result to the cache.
func (r *Runner) store(ctx context.Context, logger *log.Logger, key string, res *Result, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	data, err := json.Marshal(res)
	if err != nil {
		logger.Warn("cache encode failed", "err", err)
		return
	}
	if err := r.cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache store failed", "err", err)
	}
}
