package scheme

// Scheme is one division scheme request: the product identification, its
// component hierarchy, and the sheet/layout configuration.
//
// JSON field names follow the interchange format accepted by the HTTP API
// and the CLI importer.
type Scheme struct {
	ProductName string      `json:"product_name"`
	ProductCode string      `json:"product_code"`
	Components  []Component `json:"components"`
	Format      PageFormat  `json:"gost_format"`
	Orientation Orientation `json:"orientation"`
	LayoutType  LayoutType  `json:"layout_type"`
	TitleBlock  *TitleBlock `json:"title_block_data"`
	IncludeBOM  bool        `json:"include_bom"`
}

// PageSize returns the oriented sheet dimensions in millimeters.
// Unknown formats fall back to A3, matching the layout engine's permissive
// stance; the validator rejects them separately.
func (s *Scheme) PageSize() (width, height float64) {
	long, short, ok := s.Format.Size()
	if !ok {
		long, short, _ = FormatA3.Size()
	}
	return s.Orientation.Apply(long, short)
}
