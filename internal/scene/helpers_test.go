package scene

import "github.com/Faultbox/scenecore/pkg/math"

func identity() math.Mat4 { return math.Identity() }

func testTranslate() math.Mat4 { return math.Translate(1, 2, 3) }

func v3(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }

// triangleMesh returns the mesh used throughout the bounds tests.
func triangleMesh() *Mesh {
	m := NewMesh()
	if err := m.SetVertices([]math.Vec3{v3(0, 0, 0), v3(1, 2, 3), v3(-1, 0, 5)}); err != nil {
		panic(err)
	}
	if err := m.SetIndices([]uint32{0, 1, 2}); err != nil {
		panic(err)
	}
	return m
}
