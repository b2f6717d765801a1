package scheme

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestIndexLookups(t *testing.T) {
	components := []Component{
		{Position: 1, Name: "Gearbox", Level: 0},
		{Position: 2, Name: "Housing", Level: 1, ParentPosition: intPtr(1)},
		{Position: 3, Name: "Shaft", Level: 1, ParentPosition: intPtr(1)},
		{Position: 4, Name: "Bearing", Level: 2, ParentPosition: intPtr(3)},
	}
	idx := NewIndex(components)

	if idx.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", idx.Len())
	}

	c, ok := idx.Component(3)
	if !ok || c.Name != "Shaft" {
		t.Errorf("Component(3) = %+v, %v", c, ok)
	}
	if _, ok := idx.Component(99); ok {
		t.Error("Component(99) reported a hit for a missing position")
	}

	if got := idx.Children(1); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("Children(1) = %v, want [2 3]", got)
	}
	if got := idx.Children(2); len(got) != 0 {
		t.Errorf("Children(2) = %v, want none", got)
	}

	if got := idx.Roots(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("Roots() = %v, want [1]", got)
	}

	if got := idx.Positions(); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("Positions() = %v, want input order", got)
	}
}

func TestIndexDuplicatesKeepFirst(t *testing.T) {
	components := []Component{
		{Position: 1, Name: "first", Level: 0},
		{Position: 1, Name: "second", Level: 1},
	}
	idx := NewIndex(components)

	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}
	c, _ := idx.Component(1)
	if c.Name != "first" {
		t.Errorf("Component(1).Name = %q, want the first occurrence", c.Name)
	}
}
