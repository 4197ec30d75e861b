package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/scaffoldview/pkg/geometry"
	"github.com/philipparndt/scaffoldview/pkg/viewer"
)

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// cameraFor builds a raylib camera that shows what view.Project shows for
// a viewport of width x height pixels
func cameraFor(view *viewer.Camera, width, height int32) rl.Camera3D {
	_, _, up := view.Basis()
	w, h := float64(width), float64(height)

	camera := rl.Camera3D{
		Position: toRaylib(view.Position()),
		Target:   toRaylib(view.Target),
		Up:       toRaylib(up),
	}

	if view.Orthographic {
		camera.Projection = rl.CameraOrthographic
		camera.Fovy = float32(view.ViewHeight(w, h))
	} else {
		camera.Projection = rl.CameraPerspective
		camera.Fovy = float32(view.FieldOfView(w, h))
	}

	return camera
}

// fitCamera refits the camera when the window size changed
func (app *App) fitCamera() {
	width, height := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if width == app.Camera.width && height == app.Camera.height {
		return
	}

	app.Camera.width = width
	app.Camera.height = height
	app.Camera.camera = cameraFor(app.Camera.view, width, height)
}

// worldPerPixel returns the world length covered by one pixel at the target
func (app *App) worldPerPixel() float32 {
	h := float64(app.Camera.height)
	return float32(app.Camera.view.ViewHeight(float64(app.Camera.width), h) / h)
}
