package scheme

import "strings"

// PageFormat is a GOST sheet format.
type PageFormat string

// Supported sheet formats.
const (
	FormatA0 PageFormat = "A0"
	FormatA1 PageFormat = "A1"
	FormatA2 PageFormat = "A2"
	FormatA3 PageFormat = "A3"
	FormatA4 PageFormat = "A4"
)

// pageSizes maps each format to its nominal (long, short) side in millimeters.
var pageSizes = map[PageFormat][2]float64{
	FormatA0: {1189, 841},
	FormatA1: {841, 594},
	FormatA2: {594, 420},
	FormatA3: {420, 297},
	FormatA4: {297, 210},
}

// PageFormats lists the supported formats, largest first.
func PageFormats() []PageFormat {
	return []PageFormat{FormatA0, FormatA1, FormatA2, FormatA3, FormatA4}
}

// Valid reports whether f is a supported sheet format.
func (f PageFormat) Valid() bool {
	_, ok := pageSizes[f]
	return ok
}

// Size returns the nominal (long, short) side lengths in millimeters.
// The second result is false for unknown formats.
func (f PageFormat) Size() (long, short float64, ok bool) {
	s, ok := pageSizes[f]
	return s[0], s[1], ok
}

func (f PageFormat) String() string { return string(f) }

// FormatNames returns the supported format names joined for error messages.
func FormatNames() string {
	names := make([]string, 0, len(pageSizes))
	for _, f := range PageFormats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Orientation is the sheet orientation.
type Orientation string

// Supported orientations.
const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Valid reports whether o is a supported orientation.
func (o Orientation) Valid() bool {
	return o == Portrait || o == Landscape
}

// Apply orders the sheet sides for the orientation: width >= height for
// landscape, height >= width for portrait.
func (o Orientation) Apply(long, short float64) (width, height float64) {
	if o == Portrait {
		return short, long
	}
	return long, short
}

func (o Orientation) String() string { return string(o) }

// OrientationNames returns the supported orientations joined for error messages.
func OrientationNames() string {
	return string(Portrait) + ", " + string(Landscape)
}

// LayoutType selects the component placement strategy.
type LayoutType string

// Supported layout types.
const (
	// LayoutTree places components row by row, grouped by hierarchy level.
	LayoutTree LayoutType = "tree"
	// LayoutVertical places all components in one centered column.
	LayoutVertical LayoutType = "vertical"
	// LayoutHorizontal places all components in one centered row.
	LayoutHorizontal LayoutType = "horizontal"
)

// Valid reports whether t is a supported layout type.
func (t LayoutType) Valid() bool {
	return t == LayoutTree || t == LayoutVertical || t == LayoutHorizontal
}

func (t LayoutType) String() string { return string(t) }

// LayoutTypeNames returns the supported layout types joined for error messages.
func LayoutTypeNames() string {
	return string(LayoutTree) + ", " + string(LayoutVertical) + ", " + string(LayoutHorizontal)
}
