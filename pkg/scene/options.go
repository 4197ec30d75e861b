package scene

import (
	"github.com/philipparndt/scaffoldview/pkg/geometry"
)

// AxisView selects a fixed camera orientation
type AxisView int

const (
	AxisNone AxisView = iota
	AxisX
	AxisY
	AxisZ
)

func (a AxisView) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "none"
	}
}

// ResolveAxisView maps the three axis flags to a view.
// When several are set the first of x, y, z wins.
func ResolveAxisView(x, y, z bool) AxisView {
	switch {
	case x:
		return AxisX
	case y:
		return AxisY
	case z:
		return AxisZ
	default:
		return AxisNone
	}
}

// Default camera orientation when no axis view is requested, in degrees
const (
	DefaultElevation = 30.0
	DefaultAzimuth   = -60.0
)

// View is the camera configuration handed to a renderer
type View struct {
	Orthographic bool
	Elevation    float64 // degrees above the XY plane
	Azimuth      float64 // degrees about Z, measured from +X
}

// Options is the scene configuration of one invocation
type Options struct {
	TX, TY, TZ float64
	RZ         float64 // degrees, counter-clockwise about Z

	// Highlight names the parts drawn with the highlight style.
	// nil matches nothing.
	Highlight *string

	Orthographic bool
	AxisView     AxisView
}

// Transform returns the global scene transform: translate, then rotate about Z
func (o Options) Transform() geometry.Affine {
	return Transform(o.TX, o.TY, o.TZ, o.RZ)
}

// Highlights reports whether the part name matches the highlight exactly
func (o Options) Highlights(name string) bool {
	return o.Highlight != nil && *o.Highlight == name
}

// View maps the projection flag and axis view to a camera configuration
func (o Options) View() View {
	v := View{
		Orthographic: o.Orthographic,
		Elevation:    DefaultElevation,
		Azimuth:      DefaultAzimuth,
	}

	switch o.AxisView {
	case AxisX:
		v.Elevation, v.Azimuth = 0, 0
	case AxisY:
		v.Elevation, v.Azimuth = 0, 90
	case AxisZ:
		v.Elevation, v.Azimuth = 90, -90
	}

	return v
}

// Transform builds the scene transform for a translation (tx, ty, tz)
// followed by a counter-clockwise rotation of rz degrees about Z.
// The order is fixed: translation happens before rotation.
func Transform(tx, ty, tz, rz float64) geometry.Affine {
	return geometry.Translation(tx, ty, tz).Then(geometry.RotationZ(rz))
}
