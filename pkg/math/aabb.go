package math

import "github.com/chewxy/math32"

// AABB is an axis-aligned bounding box given by its minimum and maximum
// corners. The empty box has Min=+Inf and Max=-Inf, so growing or merging
// into it yields the other operand unchanged.
type AABB struct {
	Min Vec3
	Max Vec3
}

// EmptyAABB returns the inverted box that contains nothing.
func EmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// NewAABB returns the box spanned by two arbitrary corner points.
func NewAABB(a, b Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// IsEmpty reports whether the box contains no points.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Grow returns the box extended to contain p.
func (b AABB) Grow(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the smallest box containing both boxes.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Contains reports whether p lies inside the box, boundary included.
func (b AABB) Contains(p Vec3) bool {
	return b.Min.LessEq(p) && p.LessEq(b.Max)
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extents returns Max - Min.
func (b AABB) Extents() Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corner points.
func (b AABB) Corners() [8]Vec3 {
	lo, hi := b.Min, b.Max
	return [8]Vec3{
		{lo.X, lo.Y, lo.Z},
		{hi.X, lo.Y, lo.Z},
		{lo.X, hi.Y, lo.Z},
		{hi.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z},
		{hi.X, lo.Y, hi.Z},
		{lo.X, hi.Y, hi.Z},
		{hi.X, hi.Y, hi.Z},
	}
}

// Transform maps all eight corners through m and returns their axis-aligned
// envelope. The empty box stays empty.
func (b AABB) Transform(m Mat4) AABB {
	if b.IsEmpty() {
		return EmptyAABB()
	}
	out := EmptyAABB()
	for _, c := range b.Corners() {
		out = out.Grow(m.TransformPoint(c))
	}
	return out
}
