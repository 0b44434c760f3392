package main

import (
	"encoding/binary"
	"fmt"
	gomath "math"

	"github.com/x448/float16"

	"github.com/Faultbox/scenecore/internal/config"
	"github.com/Faultbox/scenecore/internal/scene"
	"github.com/Faultbox/scenecore/pkg/math"
)

// demoScene is a unit cube plus instances of it laid out along X.
type demoScene struct {
	material  *scene.Material
	cube      *scene.Mesh
	instances []*scene.Instance
}

func (d *demoScene) shapes() []scene.Shape {
	out := []scene.Shape{d.cube}
	for _, in := range d.instances {
		out = append(out, in)
	}
	return out
}

func buildScene(demo config.DemoConfig, geo config.GeometryConfig) (*demoScene, error) {
	cube, err := cubeMesh(geo.StrictArity)
	if err != nil {
		return nil, fmt.Errorf("cube: %w", err)
	}

	d := &demoScene{
		material: scene.NewMaterial("default"),
		cube:     cube,
	}
	cube.SetMaterial(d.material)

	for i := 0; i < demo.Instances; i++ {
		in, err := scene.NewInstance(cube)
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", i, err)
		}
		in.SetName(fmt.Sprintf("cube#%d", i))
		in.SetMaterial(d.material)

		xf := math.Translate(demo.Spacing*float32(i+1), 0, 0)
		if demo.Rotate {
			xf = xf.Mul(math.RotateY(float32(i+1) * gomath.Pi / 8))
		}
		in.SetTransform(xf)
		d.instances = append(d.instances, in)
	}
	return d, nil
}

// cubeMesh returns an axis-aligned cube spanning [-0.5, 0.5] on every axis.
func cubeMesh(strict bool) (*scene.Mesh, error) {
	m := scene.NewMesh(scene.WithStrictArity(strict))
	m.SetName("cube")

	var vertices, normals []math.Vec3
	var uvs []math.Vec2
	for i := 0; i < 8; i++ {
		v := math.Vec3{
			X: float32(i&1) - 0.5,
			Y: float32(i>>1&1) - 0.5,
			Z: float32(i>>2&1) - 0.5,
		}
		vertices = append(vertices, v)
		normals = append(normals, v.Normalize())
		uvs = append(uvs, math.Vec2{X: v.X + 0.5, Y: v.Y + 0.5})
	}

	// Two triangles per face; corner bit 0 is X, bit 1 is Y, bit 2 is Z.
	indices := []uint32{
		0, 2, 1, 1, 2, 3, // -Z
		4, 5, 6, 5, 7, 6, // +Z
		0, 4, 2, 2, 4, 6, // -X
		1, 3, 5, 3, 7, 5, // +X
		0, 1, 4, 1, 5, 4, // -Y
		2, 6, 3, 3, 6, 7, // +Y
	}

	err := m.SetGeometry(scene.MeshData{
		Vertices: vertices,
		Normals:  normals,
		UVs:      uvs,
		Indices:  indices,
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// gradientTextures returns one size x size texture per format. Red ramps
// along X, green along Y and blue is constant 0.5, so every average is close
// to (0.5, 0.5, 0.5).
func gradientTextures(size int) ([]*scene.Texture, error) {
	formats := []scene.Format{scene.FormatRgba8, scene.FormatRgba16Half, scene.FormatRgba32Float}

	var out []*scene.Texture
	for _, f := range formats {
		tex, err := scene.NewTexture(f, size, size, gradient(f, size))
		if err != nil {
			return nil, fmt.Errorf("%s gradient: %w", f, err)
		}
		tex.SetName("gradient-" + f.String())
		out = append(out, tex)
	}
	return out, nil
}

func gradient(f scene.Format, size int) []byte {
	bpp := f.BytesPerPixel()
	data := make([]byte, size*size*bpp)
	step := float32(1)
	if size > 1 {
		step = 1 / float32(size-1)
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px := data[(y*size+x)*bpp:]
			rgba := [4]float32{float32(x) * step, float32(y) * step, 0.5, 1}
			for c, v := range rgba {
				switch f {
				case scene.FormatRgba8:
					px[c] = uint8(gomath.Round(float64(v) * 255))
				case scene.FormatRgba16Half:
					binary.LittleEndian.PutUint16(px[2*c:], float16.Fromfloat32(v).Bits())
				case scene.FormatRgba32Float:
					binary.LittleEndian.PutUint32(px[4*c:], gomath.Float32bits(v))
				}
			}
		}
	}
	return data
}
