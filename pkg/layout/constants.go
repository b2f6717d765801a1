package layout

import (
	"github.com/BurntSushi/toml"

	"github.com/Denizche/divscheme/pkg/errors"
)

// Constants holds the box geometry, spacing, and sheet margins used by the
// engine, all in millimeters. It is plain configuration: construct one per
// engine instead of relying on globals, and copy it freely.
type Constants struct {
	// BoxWidth and BoxHeight are the component rectangle dimensions.
	BoxWidth  float64 `toml:"box_width"`
	BoxHeight float64 `toml:"box_height"`

	// HSpacing is the horizontal gap between boxes in a row.
	HSpacing float64 `toml:"horizontal_spacing"`
	// VSpacing is the vertical gap between wrapped rows within a level.
	VSpacing float64 `toml:"vertical_spacing"`
	// LevelSpacing is the vertical gap added after each hierarchy level.
	LevelSpacing float64 `toml:"level_spacing"`

	// Margins from the sheet edges to the working area.
	MarginTop    float64 `toml:"margin_top"`
	MarginLeft   float64 `toml:"margin_left"`
	MarginRight  float64 `toml:"margin_right"`
	MarginBottom float64 `toml:"margin_bottom"`
}

// DefaultConstants returns the standard GOST element sizes: a 60×20 mm box,
// 20/40/80 mm spacing, and 40 mm margins on every side.
func DefaultConstants() Constants {
	return Constants{
		BoxWidth:     60,
		BoxHeight:    20,
		HSpacing:     20,
		VSpacing:     40,
		LevelSpacing: 80,
		MarginTop:    40,
		MarginLeft:   40,
		MarginRight:  40,
		MarginBottom: 40,
	}
}

// LoadConstants reads layout constants from a TOML file. Keys not present in
// the file keep their default values, so partial overrides are fine:
//
//	box_width = 80
//	level_spacing = 100
func LoadConstants(path string) (Constants, error) {
	c := DefaultConstants()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Constants{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load layout constants from %s", path)
	}
	if err := c.Validate(); err != nil {
		return Constants{}, err
	}
	return c, nil
}

// Validate checks that the geometry is usable: positive box dimensions and
// non-negative spacing and margins.
func (c Constants) Validate() error {
	if c.BoxWidth <= 0 || c.BoxHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "box dimensions must be positive (got %gx%g)", c.BoxWidth, c.BoxHeight)
	}
	if c.HSpacing < 0 || c.VSpacing < 0 || c.LevelSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "spacing values cannot be negative")
	}
	if c.MarginTop < 0 || c.MarginLeft < 0 || c.MarginRight < 0 || c.MarginBottom < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margins cannot be negative")
	}
	return nil
}
