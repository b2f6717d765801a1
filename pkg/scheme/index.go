package scheme

// Index provides O(1) hierarchy lookups over one component list.
// Build it once per request with NewIndex; it never mutates the components.
type Index struct {
	byPosition map[int]Component
	children   map[int][]int
	roots      []int
	order      []int
}

// NewIndex builds the position and children maps for components.
// Duplicate positions keep the first occurrence; the validator reports
// duplicates separately.
func NewIndex(components []Component) *Index {
	idx := &Index{
		byPosition: make(map[int]Component, len(components)),
		children:   make(map[int][]int),
		order:      make([]int, 0, len(components)),
	}
	for _, c := range components {
		if _, seen := idx.byPosition[c.Position]; !seen {
			idx.byPosition[c.Position] = c
			idx.order = append(idx.order, c.Position)
		}
		if c.IsRoot() {
			idx.roots = append(idx.roots, c.Position)
		}
		if c.ParentPosition != nil {
			p := *c.ParentPosition
			idx.children[p] = append(idx.children[p], c.Position)
		}
	}
	return idx
}

// Component returns the component at the given position.
func (idx *Index) Component(position int) (Component, bool) {
	c, ok := idx.byPosition[position]
	return c, ok
}

// Children returns the positions that name position as their parent,
// in input order.
func (idx *Index) Children(position int) []int {
	return idx.children[position]
}

// Roots returns the positions of all level-0 components, in input order.
// A valid scheme has exactly one.
func (idx *Index) Roots() []int { return idx.roots }

// Positions returns the distinct positions in input order.
func (idx *Index) Positions() []int { return idx.order }

// Len returns the number of distinct positions.
func (idx *Index) Len() int { return len(idx.byPosition) }
