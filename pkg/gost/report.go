package gost

import "github.com/Denizche/divscheme/pkg/scheme"

// Report is a display-oriented validation summary: the raw findings plus
// counts and the identifying fields of the scheme they belong to.
type Report struct {
	Valid          bool     `json:"is_valid"`
	Errors         []string `json:"errors"`
	Warnings       []string `json:"warnings"`
	ErrorCount     int      `json:"error_count"`
	WarningCount   int      `json:"warning_count"`
	ProductName    string   `json:"product_name"`
	ProductCode    string   `json:"product_code"`
	ComponentCount int      `json:"component_count"`
	LayoutType     string   `json:"layout_type"`
	Format         string   `json:"gost_format"`
}

// Report validates s and aggregates the result with summary counts and
// product identifiers for display by a CLI or HTTP caller.
func (v *Validator) Report(s *scheme.Scheme) Report {
	res := v.Validate(s)
	return Report{
		Valid:          res.Valid,
		Errors:         res.Errors,
		Warnings:       res.Warnings,
		ErrorCount:     len(res.Errors),
		WarningCount:   len(res.Warnings),
		ProductName:    s.ProductName,
		ProductCode:    s.ProductCode,
		ComponentCount: len(s.Components),
		LayoutType:     s.LayoutType.String(),
		Format:         s.Format.String(),
	}
}
