package geometry

import "github.com/go-gl/mathgl/mgl64"

// Affine is an affine map of 3D space stored as a homogeneous 4x4 matrix.
// The zero value is not usable; start from a constructor.
type Affine struct {
	m mgl64.Mat4
}

// AffineFromRowMajor builds an affine map from a 3x4 row-major matrix.
// Row i is m[4i:4i+4]; its last entry is the translation component.
// No orthogonality or invertibility check is made.
func AffineFromRowMajor(m [12]float64) Affine {
	return Affine{m: mgl64.Mat4FromRows(
		mgl64.Vec4{m[0], m[1], m[2], m[3]},
		mgl64.Vec4{m[4], m[5], m[6], m[7]},
		mgl64.Vec4{m[8], m[9], m[10], m[11]},
		mgl64.Vec4{0, 0, 0, 1},
	)}
}

// Translation returns the map p -> p + (x, y, z)
func Translation(x, y, z float64) Affine {
	return Affine{m: mgl64.Translate3D(x, y, z)}
}

// RotationZ returns a counter-clockwise rotation about the Z axis
func RotationZ(degrees float64) Affine {
	return Affine{m: mgl64.HomogRotate3DZ(mgl64.DegToRad(degrees))}
}

// Then returns the map that applies a first and next second
func (a Affine) Then(next Affine) Affine {
	return Affine{m: next.m.Mul4(a.m)}
}

// Apply maps a point
func (a Affine) Apply(v Vector3) Vector3 {
	return fromHomogeneous(a.m.Mul4x1(v.homogeneous()))
}

