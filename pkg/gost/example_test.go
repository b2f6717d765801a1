package gost_test

import (
	"fmt"

	"github.com/Denizche/divscheme/pkg/gost"
	"github.com/Denizche/divscheme/pkg/scheme"
)

func ExampleValidator_Validate() {
	// A scheme whose only component has a malformed designation.
	s := &scheme.Scheme{
		ProductName: "Gearbox",
		ProductCode: "1234.00.00.000",
		Format:      scheme.FormatA3,
		Orientation: scheme.Landscape,
		LayoutType:  scheme.LayoutTree,
		TitleBlock: &scheme.TitleBlock{
			Designation:  "1234.00.00.000",
			Name:         "Division scheme",
			Developer:    "Ivanov I.I.",
			Organization: "Some Company LLC",
		},
		Components: []scheme.Component{
			{Position: 1, Name: "Gearbox", Designation: "12-34", Quantity: 1, Level: 0},
		},
	}

	res := gost.NewValidator().Validate(s)
	fmt.Println("valid:", res.Valid)
	for _, e := range res.Errors {
		fmt.Println(e)
	}
	// Output:
	// valid: false
	// component 1: designation "12-34" does not match the GOST format (XXXX.XX.XX.XXX)
}

func ExampleValidDesignation() {
	fmt.Println(gost.ValidDesignation("1234.01.00.000"))
	fmt.Println(gost.ValidDesignation("12.3.4.5"))
	// Output:
	// true
	// false
}
