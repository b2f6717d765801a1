package bom

import (
	"reflect"
	"testing"

	"github.com/Denizche/divscheme/pkg/scheme"
)

func TestBuildSortsByPosition(t *testing.T) {
	components := []scheme.Component{
		{Position: 3, Name: "Shaft", Designation: "1234.02.00.000", Quantity: 2, Level: 1},
		{Position: 1, Name: "Gearbox", Designation: "1234.00.00.000", Quantity: 1, Level: 0},
		{Position: 2, Name: "Housing", Designation: "1234.01.00.000", Quantity: 1, Level: 1, Notes: "cast iron"},
	}

	rows := Build(components)

	want := []Row{
		{Position: 1, Designation: "1234.00.00.000", Name: "Gearbox", Quantity: 1},
		{Position: 2, Designation: "1234.01.00.000", Name: "Housing", Quantity: 1, Notes: "cast iron"},
		{Position: 3, Designation: "1234.02.00.000", Name: "Shaft", Quantity: 2},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v, want %+v", rows, want)
	}

	// Input order is untouched.
	if components[0].Position != 3 {
		t.Error("component slice was reordered")
	}
}

func TestBuildEmpty(t *testing.T) {
	rows := Build(nil)
	if len(rows) != 0 {
		t.Errorf("rows = %+v, want none", rows)
	}
}
