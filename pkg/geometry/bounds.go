package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that any Extend call will replace
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether no point was ever added
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Cube returns the smallest cube sharing this box's center that contains it.
// Drawing inside the cube gives all three axes the same scale.
// An empty box becomes the unit cube around the origin, a flat one gets edge 1.
func (b BoundingBox) Cube() BoundingBox {
	if b.IsEmpty() {
		return BoundingBox{Min: NewVector3(-0.5, -0.5, -0.5), Max: NewVector3(0.5, 0.5, 0.5)}
	}

	size := b.Size()
	half := math.Max(size.X, math.Max(size.Y, size.Z)) / 2
	if half == 0 {
		half = 0.5
	}

	center := b.Center()
	extent := NewVector3(half, half, half)
	return BoundingBox{Min: center.Sub(extent), Max: center.Add(extent)}
}
