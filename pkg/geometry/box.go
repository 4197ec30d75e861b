package geometry

// BoxEdges connects BoxVertices indices into the 12 edges of a box:
// the base cycle, the top cycle and the four verticals.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxVertices returns the 8 corners of a box whose base is centered on the
// origin at z=0 and whose top lies at z=h.
//
// Indices 0-3 walk the base counter-clockwise seen from +Z, starting at
// (-w/2, -d/2). Index i+4 is the corner above index i.
func BoxVertices(w, d, h float64) [8]Vector3 {
	hw, hd := w*0.5, d*0.5
	return [8]Vector3{
		{X: -hw, Y: -hd, Z: 0}, {X: hw, Y: -hd, Z: 0},
		{X: hw, Y: hd, Z: 0}, {X: -hw, Y: hd, Z: 0},
		{X: -hw, Y: -hd, Z: h}, {X: hw, Y: -hd, Z: h},
		{X: hw, Y: hd, Z: h}, {X: -hw, Y: hd, Z: h},
	}
}
