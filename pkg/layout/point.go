package layout

// Point is a placement coordinate in millimeters. It addresses the top-left
// corner of a component box, measured from the sheet's top-left corner with
// y increasing downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
