package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/scaffoldview/pkg/viewer"
)

const cylinderSegments = int32(8)

// drawWireframe renders every segment; strokes wider than one pixel are
// drawn as thin cylinders since raylib lines have no width
func (app *App) drawWireframe() {
	perPixel := app.worldPerPixel()

	for _, segment := range app.Frame.frame.Segments {
		start := toRaylib(segment.Start)
		end := toRaylib(segment.End)
		c := segment.Style.Color
		col := rl.NewColor(c.R, c.G, c.B, c.A)

		if segment.Style.Width <= 1 {
			rl.DrawLine3D(start, end, col)
			continue
		}

		radius := segment.Style.Width / 2 * perPixel
		rl.DrawCylinderEx(start, end, radius, radius, cylinderSegments, col)
	}
}

// drawAxes draws the axis lines in 3D mode
func (app *App) drawAxes() {
	c := viewer.AxisColor()
	col := rl.NewColor(c.R, c.G, c.B, c.A)

	for _, axis := range app.Frame.axes {
		rl.DrawLine3D(toRaylib(axis.Start), toRaylib(axis.End), col)
	}
}

// drawAxisLabels draws the X/Y/Z labels in screen space, after 3D mode
func (app *App) drawAxisLabels() {
	const fontSize = float32(20)
	c := viewer.AxisColor()
	font := rl.GetFontDefault()

	for _, axis := range app.Frame.axes {
		label := Label{
			Text:      axis.Label,
			ScreenPos: rl.GetWorldToScreen(toRaylib(axis.LabelAt), app.Camera.camera),
			Color:     rl.NewColor(c.R, c.G, c.B, c.A),
		}
		label.Draw(font, fontSize)
	}
}
