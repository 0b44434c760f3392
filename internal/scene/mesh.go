package scene

import (
	"fmt"
	"slices"

	"github.com/Faultbox/scenecore/pkg/math"
)

// MeshData bundles the geometry arrays of a triangle mesh.
type MeshData struct {
	Vertices []math.Vec3
	Normals  []math.Vec3
	UVs      []math.Vec2
	Indices  []uint32
}

// Mesh is an indexed triangle mesh.
//
// Set* methods copy their argument; Adopt* methods take ownership of the
// slice, and the caller must not touch it afterwards. Every setter validates
// the resulting geometry before storing it, so a Mesh that was only changed
// through its setters always has indices inside the vertex array.
//
// Only vertex positions feed the bounding box, so only vertex replacement
// (or an explicit SetDirty(true)) invalidates the cached local AABB.
type Mesh struct {
	shapeBase

	vertices []math.Vec3
	normals  []math.Vec3
	uvs      []math.Vec2
	indices  []uint32

	strictArity bool

	// Derived from vertices. LocalAABB fills it in on demand, which is why
	// it takes a pointer receiver even though it is a query.
	aabb             math.AABB
	aabbValid        bool
	aabbComputations int
}

// MeshOption configures a Mesh at construction.
type MeshOption func(*Mesh)

// WithStrictArity requires non-empty normal and UV arrays to have exactly one
// entry per vertex.
func WithStrictArity(strict bool) MeshOption {
	return func(m *Mesh) {
		m.strictArity = strict
	}
}

// NewMesh creates an empty mesh with an identity transform that casts shadows.
func NewMesh(opts ...MeshOption) *Mesh {
	m := &Mesh{shapeBase: newShapeBase()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetDirty sets the dirty flag. Marking a mesh dirty also drops its cached
// bounds.
func (m *Mesh) SetDirty(dirty bool) {
	m.Object.SetDirty(dirty)
	if dirty {
		m.aabbValid = false
	}
}

// SetGeometry replaces all four arrays at once. The arrays are validated
// together, which avoids ordering constraints between the single setters.
func (m *Mesh) SetGeometry(d MeshData) error {
	if err := m.check(d.Vertices, d.Normals, d.UVs, d.Indices); err != nil {
		return err
	}
	m.vertices = slices.Clone(d.Vertices)
	m.normals = slices.Clone(d.Normals)
	m.uvs = slices.Clone(d.UVs)
	m.indices = slices.Clone(d.Indices)
	m.SetDirty(true)
	return nil
}

// SetVertices copies vertex positions into the mesh.
func (m *Mesh) SetVertices(vertices []math.Vec3) error {
	return m.AdoptVertices(slices.Clone(vertices))
}

// SetVerticesFlat copies positions given as consecutive x, y, z floats.
func (m *Mesh) SetVerticesFlat(xyz []float32) error {
	vertices, err := unflatten3(xyz)
	if err != nil {
		return fmt.Errorf("vertices: %w", err)
	}
	return m.AdoptVertices(vertices)
}

// AdoptVertices takes ownership of vertices. It fails if existing indices
// would point past the new array.
func (m *Mesh) AdoptVertices(vertices []math.Vec3) error {
	if err := m.check(vertices, m.normals, m.uvs, m.indices); err != nil {
		return err
	}
	m.vertices = vertices
	m.SetDirty(true)
	return nil
}

// SetNormals copies vertex normals into the mesh.
func (m *Mesh) SetNormals(normals []math.Vec3) error {
	return m.AdoptNormals(slices.Clone(normals))
}

// SetNormalsFlat copies normals given as consecutive x, y, z floats.
func (m *Mesh) SetNormalsFlat(xyz []float32) error {
	normals, err := unflatten3(xyz)
	if err != nil {
		return fmt.Errorf("normals: %w", err)
	}
	return m.AdoptNormals(normals)
}

// AdoptNormals takes ownership of normals.
func (m *Mesh) AdoptNormals(normals []math.Vec3) error {
	if err := m.check(m.vertices, normals, m.uvs, m.indices); err != nil {
		return err
	}
	m.normals = normals
	m.markDirty()
	return nil
}

// SetUVs copies texture coordinates into the mesh.
func (m *Mesh) SetUVs(uvs []math.Vec2) error {
	return m.AdoptUVs(slices.Clone(uvs))
}

// SetUVsFlat copies texture coordinates given as consecutive u, v floats.
func (m *Mesh) SetUVsFlat(uv []float32) error {
	if len(uv)%2 != 0 {
		return fmt.Errorf("uvs: %w: %d floats is not a multiple of 2", ErrArityMismatch, len(uv))
	}
	uvs := make([]math.Vec2, len(uv)/2)
	for i := range uvs {
		uvs[i] = math.Vec2{X: uv[2*i], Y: uv[2*i+1]}
	}
	return m.AdoptUVs(uvs)
}

// AdoptUVs takes ownership of uvs.
func (m *Mesh) AdoptUVs(uvs []math.Vec2) error {
	if err := m.check(m.vertices, m.normals, uvs, m.indices); err != nil {
		return err
	}
	m.uvs = uvs
	m.markDirty()
	return nil
}

// SetIndices copies the triangle index buffer into the mesh.
func (m *Mesh) SetIndices(indices []uint32) error {
	return m.AdoptIndices(slices.Clone(indices))
}

// AdoptIndices takes ownership of the triangle index buffer. Every index must
// address an existing vertex, so set vertices first.
func (m *Mesh) AdoptIndices(indices []uint32) error {
	if err := m.check(m.vertices, m.normals, m.uvs, indices); err != nil {
		return err
	}
	m.indices = indices
	m.markDirty()
	return nil
}

// Vertices returns the vertex positions. The slice is owned by the mesh.
func (m *Mesh) Vertices() []math.Vec3 { return m.vertices }

// Normals returns the vertex normals. The slice is owned by the mesh.
func (m *Mesh) Normals() []math.Vec3 { return m.normals }

// UVs returns the texture coordinates. The slice is owned by the mesh.
func (m *Mesh) UVs() []math.Vec2 { return m.uvs }

// Indices returns the triangle index buffer. The slice is owned by the mesh.
func (m *Mesh) Indices() []uint32 { return m.indices }

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumNormals returns the normal count.
func (m *Mesh) NumNormals() int { return len(m.normals) }

// NumUVs returns the texture coordinate count.
func (m *Mesh) NumUVs() int { return len(m.uvs) }

// NumIndices returns the index count.
func (m *Mesh) NumIndices() int { return len(m.indices) }

// NumTriangles returns the number of indexed triangles.
func (m *Mesh) NumTriangles() int { return len(m.indices) / 3 }

// LocalAABB returns the min/max envelope of the vertex positions. The result
// is cached until the vertices change. A mesh without vertices returns the
// empty box. Setters reject NaN and infinite positions, so the box is always
// finite or empty.
func (m *Mesh) LocalAABB() math.AABB {
	if m.aabbValid {
		return m.aabb
	}

	box := math.EmptyAABB()
	for _, v := range m.vertices {
		box = box.Grow(v)
	}

	m.aabb = box
	m.aabbValid = true
	m.aabbComputations++
	return box
}

// WorldAABB returns the local box mapped through the transform.
func (m *Mesh) WorldAABB() math.AABB {
	return worldAABB(m)
}

// check validates a candidate set of arrays.
func (m *Mesh) check(vertices, normals []math.Vec3, uvs []math.Vec2, indices []uint32) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices do not form whole triangles", ErrArityMismatch, len(indices))
	}
	for i, v := range vertices {
		if !v.IsFinite() {
			return fmt.Errorf("%w: vertices[%d]=%v", ErrNonFiniteVertex, i, v)
		}
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return fmt.Errorf("%w: indices[%d]=%d with %d vertices", ErrIndexOutOfRange, i, idx, len(vertices))
		}
	}

	if !m.strictArity {
		return nil
	}
	if len(normals) != 0 && len(normals) != len(vertices) {
		return fmt.Errorf("%w: %d normals for %d vertices", ErrArityMismatch, len(normals), len(vertices))
	}
	if len(uvs) != 0 && len(uvs) != len(vertices) {
		return fmt.Errorf("%w: %d uvs for %d vertices", ErrArityMismatch, len(uvs), len(vertices))
	}
	return nil
}

func unflatten3(xyz []float32) ([]math.Vec3, error) {
	if len(xyz)%3 != 0 {
		return nil, fmt.Errorf("%w: %d floats is not a multiple of 3", ErrArityMismatch, len(xyz))
	}
	out := make([]math.Vec3, len(xyz)/3)
	for i := range out {
		out[i] = math.Vec3{X: xyz[3*i], Y: xyz[3*i+1], Z: xyz[3*i+2]}
	}
	return out, nil
}
