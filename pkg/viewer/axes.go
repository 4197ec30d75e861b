package viewer

import (
	"image/color"

	"github.com/philipparndt/scaffoldview/pkg/geometry"
)

// AxisLine is one labelled axis drawn along an edge of the bounding cube
type AxisLine struct {
	Label      string
	Start, End geometry.Vector3
	LabelAt    geometry.Vector3
}

// axisColor is used for the axis lines and labels in every backend
var axisColor = color.RGBA{R: 110, G: 110, B: 110, A: 255}

// Axes returns the X, Y and Z axes starting at the minimum corner of the
// bounding cube of bounds.
func Axes(bounds geometry.BoundingBox) [3]AxisLine {
	cube := bounds.Cube()
	origin := cube.Min
	size := cube.Size()
	pad := size.X * 0.06

	x := origin.Add(geometry.NewVector3(size.X, 0, 0))
	y := origin.Add(geometry.NewVector3(0, size.Y, 0))
	z := origin.Add(geometry.NewVector3(0, 0, size.Z))

	return [3]AxisLine{
		{Label: "X", Start: origin, End: x, LabelAt: x.Add(geometry.NewVector3(pad, 0, 0))},
		{Label: "Y", Start: origin, End: y, LabelAt: y.Add(geometry.NewVector3(0, pad, 0))},
		{Label: "Z", Start: origin, End: z, LabelAt: z.Add(geometry.NewVector3(0, 0, pad))},
	}
}

// AxisColor returns the color used for axes and their labels
func AxisColor() color.RGBA {
	return axisColor
}
