package viewer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/scaffoldview/pkg/geometry"
	"github.com/philipparndt/scaffoldview/pkg/scene"
)

func unitBounds() geometry.BoundingBox {
	b := geometry.NewBoundingBox()
	b.Extend(geometry.NewVector3(-1, -1, -1))
	b.Extend(geometry.NewVector3(1, 1, 1))
	return b
}

func TestCameraBasisOrthonormal(t *testing.T) {
	for _, view := range []scene.View{
		scene.Options{}.View(),
		scene.Options{AxisView: scene.AxisX}.View(),
		scene.Options{AxisView: scene.AxisY}.View(),
		scene.Options{AxisView: scene.AxisZ}.View(),
	} {
		eye, right, up := NewCamera(unitBounds(), view).Basis()
		assert.InDelta(t, 1, eye.Length(), 1e-10)
		assert.InDelta(t, 1, right.Length(), 1e-10)
		assert.InDelta(t, 1, up.Length(), 1e-10)
		assert.InDelta(t, 0, eye.Dot(right), 1e-10)
		assert.InDelta(t, 0, eye.Dot(up), 1e-10)
		assert.InDelta(t, 0, right.Dot(up), 1e-10)
	}
}

func TestCameraTopView(t *testing.T) {
	camera := NewCamera(unitBounds(), scene.View{Orthographic: true, Elevation: 90, Azimuth: -90})

	cx, cy, _ := camera.Project(geometry.NewVector3(0, 0, 0), 400, 400)
	assert.InDelta(t, 200, cx, 1e-9)
	assert.InDelta(t, 200, cy, 1e-9)

	// +X to the right, +Y up the screen
	x, y, _ := camera.Project(geometry.NewVector3(1, 0, 0), 400, 400)
	assert.Greater(t, x, cx)
	assert.InDelta(t, cy, y, 1e-9)

	x, y, _ = camera.Project(geometry.NewVector3(0, 1, 0), 400, 400)
	assert.InDelta(t, cx, x, 1e-9)
	assert.Less(t, y, cy)

	// Z collapses onto the same point from above
	x, y, _ = camera.Project(geometry.NewVector3(0, 0, 1), 400, 400)
	assert.InDelta(t, cx, x, 1e-9)
	assert.InDelta(t, cy, y, 1e-9)
}

func TestCameraXView(t *testing.T) {
	camera := NewCamera(unitBounds(), scene.View{Orthographic: true, Elevation: 0, Azimuth: 0})

	cx, cy, _ := camera.Project(geometry.NewVector3(0, 0, 0), 400, 300)

	x, _, _ := camera.Project(geometry.NewVector3(0, 1, 0), 400, 300)
	assert.Greater(t, x, cx, "+Y should point right when looking along X")

	_, y, _ := camera.Project(geometry.NewVector3(0, 0, 1), 400, 300)
	assert.Less(t, y, cy, "+Z should point up")

	nearX, nearY, near := camera.Project(geometry.NewVector3(1, 0.5, 0.5), 400, 300)
	farX, farY, far := camera.Project(geometry.NewVector3(-1, 0.5, 0.5), 400, 300)
	assert.InDelta(t, nearX, farX, 1e-9, "orthographic projection ignores depth")
	assert.InDelta(t, nearY, farY, 1e-9)
	assert.Less(t, near, far)
}

func TestCameraPerspectiveShrinksDistantPoints(t *testing.T) {
	camera := NewCamera(unitBounds(), scene.View{Elevation: 0, Azimuth: 0})

	cx, _, _ := camera.Project(geometry.NewVector3(0, 0, 0), 400, 400)
	nearX, _, _ := camera.Project(geometry.NewVector3(1, 1, 0), 400, 400)
	farX, _, _ := camera.Project(geometry.NewVector3(-1, 1, 0), 400, 400)

	assert.Greater(t, nearX-cx, farX-cx)
}

func TestCameraFitsBoundingCube(t *testing.T) {
	camera := NewCamera(unitBounds(), scene.Options{Orthographic: true}.View())

	for _, corner := range geometry.BoxVertices(2, 2, 2) {
		p := corner.Sub(geometry.NewVector3(0, 0, 1))
		x, y, _ := camera.Project(p, 400, 300)
		assert.True(t, x >= 0 && x <= 400 && y >= 0 && y <= 300, "corner %v projected off screen to (%v, %v)", p, x, y)
	}
}

func TestCameraFieldOfView(t *testing.T) {
	camera := NewCamera(unitBounds(), scene.View{})
	fov := camera.FieldOfView(400, 400)

	// Half the view height at the target plane over the eye distance
	half := camera.ViewHeight(400, 400) / 2
	assert.InDelta(t, math.Atan(half/camera.Distance)*2*180/math.Pi, fov, 1e-9)
	assert.True(t, fov > 0 && fov < 90)
}
