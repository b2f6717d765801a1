// Package bom builds bill-of-materials tables from division scheme
// components. The output is tabular data only; drawing the table onto a
// sheet is the renderer's job.
package bom

import (
	"sort"

	"github.com/Denizche/divscheme/pkg/scheme"
)

// Row is one specification line: position, designation, name, quantity, and
// optional remarks.
type Row struct {
	Position    int    `json:"position"`
	Designation string `json:"designation"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes,omitempty"`
}

// Build produces BOM rows for the given components, sorted by position
// number ascending. The component list is not modified.
func Build(components []scheme.Component) []Row {
	rows := make([]Row, 0, len(components))
	for _, c := range components {
		rows = append(rows, Row{
			Position:    c.Position,
			Designation: c.Designation,
			Name:        c.Name,
			Quantity:    c.Quantity,
			Notes:       c.Notes,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	return rows
}
