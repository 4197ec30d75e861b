package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a point or direction in scene space
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec(m mgl64.Vec3) Vector3 {
	return Vector3{X: m[0], Y: m[1], Z: m[2]}
}

func (v Vector3) Add(other Vector3) Vector3 { return fromVec(v.vec().Add(other.vec())) }

func (v Vector3) Sub(other Vector3) Vector3 { return fromVec(v.vec().Sub(other.vec())) }

// Mul scales the vector
func (v Vector3) Mul(scalar float64) Vector3 { return fromVec(v.vec().Mul(scalar)) }

func (v Vector3) Dot(other Vector3) float64 { return v.vec().Dot(other.vec()) }

func (v Vector3) Cross(other Vector3) Vector3 { return fromVec(v.vec().Cross(other.vec())) }

// Length returns the magnitude of the vector. Hypot keeps large but finite
// components from overflowing in the squares.
func (v Vector3) Length() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction, or the zero vector
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return v.Mul(1 / length)
}

// Min returns the componentwise minimum
func (v Vector3) Min(other Vector3) Vector3 {
	return NewVector3(math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z))
}

// Max returns the componentwise maximum
func (v Vector3) Max(other Vector3) Vector3 {
	return NewVector3(math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z))
}

// ApproxEqual reports whether every component differs by at most tolerance
func (v Vector3) ApproxEqual(other Vector3, tolerance float64) bool {
	d := v.Sub(other)
	return math.Abs(d.X) <= tolerance && math.Abs(d.Y) <= tolerance && math.Abs(d.Z) <= tolerance
}

// homogeneous returns the point as a homogeneous coordinate (w = 1)
func (v Vector3) homogeneous() mgl64.Vec4 {
	return v.vec().Vec4(1)
}

func fromHomogeneous(h mgl64.Vec4) Vector3 {
	return fromVec(h.Vec3())
}
