package scaffold

import (
	"github.com/philipparndt/scaffoldview/pkg/geometry"
)

// Part is a named box with its own dimensions and placement matrix
type Part struct {
	Name   string
	Width  float64
	Depth  float64
	Height float64
	// ECSBox is a 3x4 row-major matrix mapping local box coordinates to
	// assembly space; the fourth entry of each row is the translation.
	ECSBox [12]float64
}

// Placement returns the local-to-assembly map of the part
func (p Part) Placement() geometry.Affine {
	return geometry.AffineFromRowMajor(p.ECSBox)
}

// LocalVertices returns the box corners in part-local coordinates
func (p Part) LocalVertices() [8]geometry.Vector3 {
	return geometry.BoxVertices(p.Width, p.Depth, p.Height)
}

// Model represents a complete scaffold description
type Model struct {
	Source string
	Parts  []Part
}

// NewModel creates an empty model
func NewModel(source string) *Model {
	return &Model{
		Source: source,
		Parts:  make([]Part, 0),
	}
}

// AddPart appends a part to the model
func (m *Model) AddPart(part Part) {
	m.Parts = append(m.Parts, part)
}

// PartCount returns the number of parts in the model
func (m *Model) PartCount() int {
	return len(m.Parts)
}

// Named returns the indices of all parts with exactly the given name
func (m *Model) Named(name string) []int {
	var indices []int
	for i, p := range m.Parts {
		if p.Name == name {
			indices = append(indices, i)
		}
	}
	return indices
}
