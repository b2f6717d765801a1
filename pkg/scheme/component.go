package scheme

// Component is a single entry in a division scheme: the main product, an
// assembly, or a part. Components are immutable for the lifetime of a request.
type Component struct {
	// Position is the positional reference number, unique within a scheme.
	// Must be >= 1.
	Position int `json:"position"`

	// Name is the human-readable component name. May be empty, which the
	// validator reports as a warning rather than an error.
	Name string `json:"name"`

	// Designation is the GOST identifier in XXXX.XX.XX.XXX form.
	Designation string `json:"designation"`

	// Quantity is how many of this component the parent contains. Must be >= 1.
	Quantity int `json:"quantity"`

	// Level is the hierarchy depth: 0 for the main product, 1+ for nested
	// subcomponents. Exactly one component per scheme has level 0.
	Level int `json:"level"`

	// ParentPosition references the Position of the parent component.
	// Nil for the root. A parent must exist and sit at a strictly lower level.
	ParentPosition *int `json:"parent_position,omitempty"`

	// Notes holds free-form remarks carried through to the BOM.
	Notes string `json:"notes,omitempty"`
}

// IsRoot reports whether the component is the main product (level 0).
func (c Component) IsRoot() bool { return c.Level == 0 }
