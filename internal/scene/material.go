package scene

// Material is an opaque surface description. Shapes reference materials by
// pointer identity only and never own them; the scene that created a
// material keeps it alive for as long as any shape points at it.
type Material struct {
	Object
}

// NewMaterial creates a named material.
func NewMaterial(name string) *Material {
	m := &Material{Object: newObject()}
	m.name = name
	return m
}
