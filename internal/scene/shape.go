package scene

import "github.com/Faultbox/scenecore/pkg/math"

// Shape is a renderable piece of geometry with a material, a transform and a
// shadow flag.
//
// LocalAABB returns a box tight to the shape's own geometry in untransformed
// space. WorldAABB maps that box through the transform; it is recomputed on
// every call, while any expensive geometry walk is cached at the local level.
type Shape interface {
	ID() uint64
	Name() string
	IsDirty() bool
	SetDirty(dirty bool)
	Generation() uint64

	Material() *Material
	SetMaterial(m *Material)
	Transform() math.Mat4
	SetTransform(t math.Mat4)
	CastsShadow() bool
	SetShadow(shadow bool)

	LocalAABB() math.AABB
	WorldAABB() math.AABB
}

// shapeBase holds the state common to all shapes. Its setters mark the
// object dirty but never touch subtype caches.
type shapeBase struct {
	Object
	material  *Material
	transform math.Mat4
	shadow    bool
}

func newShapeBase() shapeBase {
	return shapeBase{
		Object:    newObject(),
		transform: math.Identity(),
		shadow:    true,
	}
}

// Material returns the borrowed material, or nil for the renderer default.
func (s *shapeBase) Material() *Material {
	return s.material
}

// SetMaterial replaces the material reference.
func (s *shapeBase) SetMaterial(m *Material) {
	s.material = m
	s.markDirty()
}

// Transform returns the local-to-world matrix.
func (s *shapeBase) Transform() math.Mat4 {
	return s.transform
}

// SetTransform replaces the local-to-world matrix. It is stored as given.
func (s *shapeBase) SetTransform(t math.Mat4) {
	s.transform = t
	s.markDirty()
}

// CastsShadow reports whether the shape occludes light.
func (s *shapeBase) CastsShadow() bool {
	return s.shadow
}

// SetShadow sets whether the shape occludes light.
func (s *shapeBase) SetShadow(shadow bool) {
	s.shadow = shadow
	s.markDirty()
}

// worldAABB is the single definition of world bounds for every shape.
func worldAABB(s Shape) math.AABB {
	return s.LocalAABB().Transform(s.Transform())
}

// WorldBounds returns the union of the world boxes of shapes. With no shapes
// it returns the empty box.
func WorldBounds(shapes ...Shape) math.AABB {
	box := math.EmptyAABB()
	for _, s := range shapes {
		box = box.Union(s.WorldAABB())
	}
	return box
}
