// Package scheme defines the data model for product division schemes.
//
// A division scheme describes a product and its constituent components as a
// hierarchy: the main product at level 0, assemblies and parts at increasing
// levels below it. Each component carries a unique positional number, a GOST
// designation, and an optional reference to its parent's position.
//
// The types in this package are read-only inputs for one validation/layout
// request. Nothing here mutates components, and nothing is persisted: every
// request is self-contained.
//
// # Hierarchy Index
//
// The reference behavior resolved parent links with repeated linear scans.
// [NewIndex] builds position → component and position → children maps once
// per request so that validation and layout stay O(n) overall:
//
//	idx := scheme.NewIndex(s.Components)
//	parent, ok := idx.Component(5)
//	kids := idx.Children(1)
package scheme
