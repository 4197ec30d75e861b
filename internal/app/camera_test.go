package app

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/scaffoldview/pkg/geometry"
	"github.com/philipparndt/scaffoldview/pkg/scene"
	"github.com/philipparndt/scaffoldview/pkg/viewer"
)

func bounds() geometry.BoundingBox {
	b := geometry.NewBoundingBox()
	b.Extend(geometry.NewVector3(0, 0, 0))
	b.Extend(geometry.NewVector3(2, 2, 2))
	return b
}

func TestCameraForOrthographic(t *testing.T) {
	view := viewer.NewCamera(bounds(), scene.Options{Orthographic: true, AxisView: scene.AxisZ}.View())
	camera := cameraFor(view, 800, 600)

	assert.Equal(t, rl.CameraOrthographic, camera.Projection)
	assert.InDelta(t, view.ViewHeight(800, 600), float64(camera.Fovy), 1e-4)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, camera.Target)

	// Looking straight down: eye above the target, screen up is +Y
	assert.Greater(t, camera.Position.Z, camera.Target.Z)
	assert.InDelta(t, 1, float64(camera.Up.Y), 1e-6)
}

func TestCameraForPerspective(t *testing.T) {
	view := viewer.NewCamera(bounds(), scene.Options{}.View())
	camera := cameraFor(view, 800, 600)

	assert.Equal(t, rl.CameraPerspective, camera.Projection)
	assert.True(t, camera.Fovy > 0 && camera.Fovy < 90, "fovy %v", camera.Fovy)

	d := math.Sqrt(math.Pow(float64(camera.Position.X-camera.Target.X), 2) +
		math.Pow(float64(camera.Position.Y-camera.Target.Y), 2) +
		math.Pow(float64(camera.Position.Z-camera.Target.Z), 2))
	assert.InDelta(t, view.Distance, d, 1e-4)
}

func TestToRaylib(t *testing.T) {
	assert.Equal(t, rl.Vector3{X: 1.5, Y: -2, Z: 3}, toRaylib(geometry.NewVector3(1.5, -2, 3)))
}
