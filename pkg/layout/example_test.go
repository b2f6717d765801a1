package layout_test

import (
	"fmt"

	"github.com/Denizche/divscheme/pkg/layout"
	"github.com/Denizche/divscheme/pkg/scheme"
)

func ExampleEngine_CalculatePositions() {
	// A gearbox with two subassemblies on an A4 landscape sheet.
	parent := 1
	components := []scheme.Component{
		{Position: 1, Name: "Gearbox", Designation: "1234.00.00.000", Quantity: 1, Level: 0},
		{Position: 2, Name: "Housing", Designation: "1234.01.00.000", Quantity: 1, Level: 1, ParentPosition: &parent},
		{Position: 3, Name: "Shaft", Designation: "1234.02.00.000", Quantity: 2, Level: 1, ParentPosition: &parent},
	}

	engine := layout.NewEngine(layout.DefaultConstants())
	positions, _ := engine.CalculatePositions(components, scheme.LayoutTree, scheme.FormatA4, scheme.Landscape)

	for _, id := range []int{1, 2, 3} {
		p := positions[id]
		fmt.Printf("component %d at (%g, %g)\n", id, p.X, p.Y)
	}
	// Output:
	// component 1 at (108.5, 40)
	// component 2 at (68.5, 120)
	// component 3 at (148.5, 120)
}

func ExampleEngine_CheckBounds() {
	engine := layout.NewEngine(layout.DefaultConstants())
	positions := map[int]layout.Point{
		1: {X: 40, Y: 40},
		2: {X: 260, Y: 40}, // box is 60 wide, sheet 297: sticks out
	}

	warns := engine.CheckBounds(positions, 297, 210)
	for _, w := range warns {
		fmt.Println(w)
	}
	// Output:
	// component 2 extends past the right sheet edge
}
