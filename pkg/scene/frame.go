package scene

import (
	"github.com/philipparndt/scaffoldview/pkg/geometry"
	"github.com/philipparndt/scaffoldview/pkg/scaffold"
)

// Segment is one wireframe edge in display space
type Segment struct {
	Part        int // index of the part in the input
	Name        string
	Start, End  geometry.Vector3
	Highlighted bool
	Style       Style
}

// Length returns the length of the segment
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Frame is everything a renderer needs to draw one scene. A frame is built
// per render and owned by the caller; nothing in it is shared.
type Frame struct {
	Segments []Segment
	View     View
	Bounds   geometry.BoundingBox
	Parts    int
}

// PlaceVertices returns the 8 display-space corners of a part: the local box
// moved into assembly space by the part's placement, then through the scene
// transform.
func PlaceVertices(part scaffold.Part, sceneTransform geometry.Affine) [8]geometry.Vector3 {
	toDisplay := part.Placement().Then(sceneTransform)

	vertices := part.LocalVertices()
	for i, v := range vertices {
		vertices[i] = toDisplay.Apply(v)
	}
	return vertices
}

// Build emits the 12 edges of every part, in input order
func Build(parts []scaffold.Part, opts Options, styles Styles) *Frame {
	frame := &Frame{
		Segments: make([]Segment, 0, len(parts)*len(geometry.BoxEdges)),
		View:     opts.View(),
		Bounds:   geometry.NewBoundingBox(),
		Parts:    len(parts),
	}

	sceneTransform := opts.Transform()

	for i, part := range parts {
		vertices := PlaceVertices(part, sceneTransform)
		for _, v := range vertices {
			frame.Bounds.Extend(v)
		}

		highlighted := opts.Highlights(part.Name)
		style := styles.pick(highlighted)

		for _, edge := range geometry.BoxEdges {
			frame.Segments = append(frame.Segments, Segment{
				Part:        i,
				Name:        part.Name,
				Start:       vertices[edge[0]],
				End:         vertices[edge[1]],
				Highlighted: highlighted,
				Style:       style,
			})
		}
	}

	return frame
}

// HighlightedParts returns the number of parts drawn with the highlight style
func (f *Frame) HighlightedParts() int {
	seen := make(map[int]bool)
	for _, s := range f.Segments {
		if s.Highlighted {
			seen[s.Part] = true
		}
	}
	return len(seen)
}

// Loader rebuilds a frame from its inputs
type Loader func() (*Frame, error)
