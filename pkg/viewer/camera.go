package viewer

import (
	"math"

	"github.com/philipparndt/scaffoldview/pkg/geometry"
	"github.com/philipparndt/scaffoldview/pkg/scene"
)

const (
	// eyeDistanceFactor places the perspective eye this many bounding radii
	// away from the target.
	eyeDistanceFactor = 4.0
	// fitMargin leaves room around the scene inside the viewport.
	fitMargin = 0.85
)

// Camera looks at the bounding cube of a frame from a fixed orientation
type Camera struct {
	Target       geometry.Vector3
	Radius       float64 // radius of the sphere enclosing the bounding cube
	Distance     float64 // eye distance from the target
	Elevation    float64 // degrees
	Azimuth      float64 // degrees
	Orthographic bool
}

// NewCamera creates a camera framing bounds with the given view.
// The bounds are first expanded to a cube so all axes share one scale.
func NewCamera(bounds geometry.BoundingBox, view scene.View) *Camera {
	cube := bounds.Cube()
	radius := cube.Diagonal() / 2

	return &Camera{
		Target:       cube.Center(),
		Radius:       radius,
		Distance:     radius * eyeDistanceFactor,
		Elevation:    view.Elevation,
		Azimuth:      view.Azimuth,
		Orthographic: view.Orthographic,
	}
}

// Basis returns the unit vector from the target toward the eye and the
// screen right and up directions in world space.
func (c *Camera) Basis() (eye, right, up geometry.Vector3) {
	e := c.Elevation * math.Pi / 180
	a := c.Azimuth * math.Pi / 180

	eye = geometry.NewVector3(math.Cos(e)*math.Cos(a), math.Cos(e)*math.Sin(a), math.Sin(e))
	// right stays in the XY plane, so looking straight down is well defined
	right = geometry.NewVector3(-math.Sin(a), math.Cos(a), 0)
	up = eye.Cross(right).Normalize()
	return eye, right, up
}

// Position returns the eye position in world space
func (c *Camera) Position() geometry.Vector3 {
	eye, _, _ := c.Basis()
	return c.Target.Add(eye.Mul(c.Distance))
}

// scale returns pixels per world unit at the target plane
func (c *Camera) scale(width, height float64) float64 {
	if c.Radius == 0 {
		return 1
	}
	return fitMargin * math.Min(width, height) / 2 / c.Radius
}

// Project projects a 3D point to 2D screen coordinates. The third result
// is the distance from the eye along the view direction.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	eye, right, up := c.Basis()

	relative := point.Sub(c.Target)
	x := relative.Dot(right)
	y := relative.Dot(up)
	depth := c.Distance - relative.Dot(eye)

	k := c.scale(width, height)
	if !c.Orthographic {
		if depth <= 0.01 {
			depth = 0.01 // Prevent division by zero
		}
		k *= c.Distance / depth
	}

	screenX := width/2 + x*k
	screenY := height/2 - y*k

	return screenX, screenY, depth
}

// ViewHeight returns the world-space height visible at the target plane
// for a viewport of the given size.
func (c *Camera) ViewHeight(width, height float64) float64 {
	return height / c.scale(width, height)
}

// FieldOfView returns the vertical perspective angle in degrees that shows
// the same area at the target plane as Project does.
func (c *Camera) FieldOfView(width, height float64) float64 {
	half := c.ViewHeight(width, height) / 2
	return 2 * math.Atan2(half, c.Distance) * 180 / math.Pi
}
