package scheme

import "testing"

func TestPageFormatSize(t *testing.T) {
	tests := []struct {
		format      PageFormat
		long, short float64
		ok          bool
	}{
		{FormatA0, 1189, 841, true},
		{FormatA1, 841, 594, true},
		{FormatA2, 594, 420, true},
		{FormatA3, 420, 297, true},
		{FormatA4, 297, 210, true},
		{PageFormat("A5"), 0, 0, false},
		{PageFormat(""), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			long, short, ok := tt.format.Size()
			if ok != tt.ok {
				t.Fatalf("Size() ok = %v, want %v", ok, tt.ok)
			}
			if long != tt.long || short != tt.short {
				t.Errorf("Size() = (%v, %v), want (%v, %v)", long, short, tt.long, tt.short)
			}
		})
	}
}

func TestOrientationApply(t *testing.T) {
	tests := []struct {
		name          string
		o             Orientation
		width, height float64
	}{
		{"landscape is wide", Landscape, 420, 297},
		{"portrait is tall", Portrait, 297, 420},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.o.Apply(420, 297)
			if w != tt.width || h != tt.height {
				t.Errorf("Apply(420, 297) = (%v, %v), want (%v, %v)", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestEnumValidity(t *testing.T) {
	if !FormatA4.Valid() || PageFormat("B5").Valid() {
		t.Error("PageFormat.Valid misclassified a format")
	}
	if !Portrait.Valid() || !Landscape.Valid() || Orientation("diagonal").Valid() {
		t.Error("Orientation.Valid misclassified an orientation")
	}
	if !LayoutTree.Valid() || !LayoutVertical.Valid() || !LayoutHorizontal.Valid() {
		t.Error("LayoutType.Valid rejected a supported type")
	}
	if LayoutType("circular").Valid() {
		t.Error("LayoutType.Valid accepted an unknown type")
	}
}

func TestSchemePageSize(t *testing.T) {
	tests := []struct {
		name          string
		format        PageFormat
		orientation   Orientation
		width, height float64
	}{
		{"A4 landscape", FormatA4, Landscape, 297, 210},
		{"A4 portrait", FormatA4, Portrait, 210, 297},
		{"A0 landscape", FormatA0, Landscape, 1189, 841},
		{"unknown falls back to A3", PageFormat("A9"), Landscape, 420, 297},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scheme{Format: tt.format, Orientation: tt.orientation}
			w, h := s.PageSize()
			if w != tt.width || h != tt.height {
				t.Errorf("PageSize() = (%v, %v), want (%v, %v)", w, h, tt.width, tt.height)
			}
		})
	}
}
