package gost

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/Denizche/divscheme/pkg/scheme"
)

// designationRe matches GOST designations: four digits, then three dot-separated
// groups of two, two, and three digits (XXXX.XX.XX.XXX).
var designationRe = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}\.\d{3}$`)

// ValidDesignation reports whether s matches the GOST designation format.
func ValidDesignation(s string) bool {
	return designationRe.MatchString(s)
}

// Result is the outcome of validating one scheme.
// Valid is true iff Errors is empty; Warnings never affect validity.
type Result struct {
	Valid    bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validator checks division schemes against GOST 2.701.
// It is stateless and safe for concurrent use.
type Validator struct{}

// NewValidator creates a validator.
func NewValidator() *Validator { return &Validator{} }

// Validate runs every structural check over s and returns the collected
// errors and warnings. The input is never mutated and the check order is
// deterministic: title block, components, page format, orientation, layout
// type, hierarchy.
func (v *Validator) Validate(s *scheme.Scheme) Result {
	var errs, warns []string

	e, w := v.checkTitleBlock(s.TitleBlock)
	errs, warns = append(errs, e...), append(warns, w...)

	e, w = v.checkComponents(s.Components)
	errs, warns = append(errs, e...), append(warns, w...)

	if s.ProductCode != "" && !ValidDesignation(s.ProductCode) {
		errs = append(errs, fmt.Sprintf("product code %q does not match the GOST format (XXXX.XX.XX.XXX)", s.ProductCode))
	}

	if !s.Format.Valid() {
		errs = append(errs, fmt.Sprintf("unsupported page format: %q (allowed: %s)", string(s.Format), scheme.FormatNames()))
	}
	if !s.Orientation.Valid() {
		errs = append(errs, fmt.Sprintf("unsupported orientation: %q (allowed: %s)", string(s.Orientation), scheme.OrientationNames()))
	}
	if !s.LayoutType.Valid() {
		errs = append(errs, fmt.Sprintf("unsupported layout type: %q (allowed: %s)", string(s.LayoutType), scheme.LayoutTypeNames()))
	}

	errs = append(errs, v.checkHierarchy(s.Components)...)

	return Result{Valid: len(errs) == 0, Errors: errs, Warnings: warns}
}

// checkTitleBlock verifies the main inscription. Designation and name are
// mandatory; developer and organization are only recommended.
func (v *Validator) checkTitleBlock(tb *scheme.TitleBlock) (errs, warns []string) {
	if tb == nil {
		return []string{"title block is required"}, nil
	}

	if tb.Designation == "" {
		errs = append(errs, "title block: designation is required")
	} else if !ValidDesignation(tb.Designation) {
		errs = append(errs, fmt.Sprintf("title block: designation %q does not match the GOST format (XXXX.XX.XX.XXX)", tb.Designation))
	}

	if tb.Name == "" {
		errs = append(errs, "title block: name is required")
	}

	if tb.Developer == "" {
		warns = append(warns, "title block: specifying the developer is recommended")
	}
	if tb.Organization == "" {
		warns = append(warns, "title block: specifying the organization is recommended")
	}

	return errs, warns
}

// checkComponents verifies the component list and each entry in it.
func (v *Validator) checkComponents(components []scheme.Component) (errs, warns []string) {
	if len(components) == 0 {
		return []string{"component list cannot be empty"}, nil
	}

	if dups := duplicatePositions(components); len(dups) > 0 {
		errs = append(errs, fmt.Sprintf("duplicate position numbers: %v", dups))
	}

	for _, c := range components {
		if !ValidDesignation(c.Designation) {
			errs = append(errs, fmt.Sprintf("component %d: designation %q does not match the GOST format (XXXX.XX.XX.XXX)", c.Position, c.Designation))
		}
		if c.Quantity < 1 {
			errs = append(errs, fmt.Sprintf("component %d: quantity must be at least 1", c.Position))
		}
		if c.Level < 0 {
			errs = append(errs, fmt.Sprintf("component %d: level cannot be negative", c.Position))
		}
		if c.Name == "" {
			warns = append(warns, fmt.Sprintf("component %d: specifying a name is recommended", c.Position))
		}
	}

	return errs, warns
}

// checkHierarchy verifies parent references and the single-root rule using
// a position index instead of repeated scans.
func (v *Validator) checkHierarchy(components []scheme.Component) []string {
	var errs []string
	idx := scheme.NewIndex(components)

	for _, c := range components {
		if c.ParentPosition == nil {
			continue
		}
		parent, ok := idx.Component(*c.ParentPosition)
		if !ok {
			errs = append(errs, fmt.Sprintf("component %d references unknown parent %d", c.Position, *c.ParentPosition))
			continue
		}
		if parent.Level >= c.Level {
			errs = append(errs, fmt.Sprintf("component %d: parent %d must be at a strictly lower hierarchy level", c.Position, parent.Position))
		}
	}

	if n := len(idx.Roots()); n != 1 {
		errs = append(errs, fmt.Sprintf("exactly one main product (level 0) is required, found %d", n))
	}

	return errs
}

// duplicatePositions returns the sorted set of position numbers that occur
// more than once.
func duplicatePositions(components []scheme.Component) []int {
	counts := make(map[int]int, len(components))
	for _, c := range components {
		counts[c.Position]++
	}

	var dups []int
	for pos, n := range counts {
		if n > 1 {
			dups = append(dups, pos)
		}
	}
	sort.Ints(dups)
	return dups
}
