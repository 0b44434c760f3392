package scene

import (
	"encoding/binary"
	"fmt"
	"image"
	gomath "math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/x448/float16"

	"github.com/Faultbox/scenecore/pkg/math"
)

// Format identifies the pixel encoding of a texture. Every format stores four
// channels per pixel in R, G, B, A order, little-endian.
type Format uint8

const (
	FormatUnknown     Format = iota
	FormatRgba8              // 8-bit unsigned normalized
	FormatRgba16Half         // IEEE 754 half precision
	FormatRgba32Float        // IEEE 754 single precision
)

// ChannelsPerPixel is the channel count of every supported format.
const ChannelsPerPixel = 4

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatRgba8:
		return "Rgba8"
	case FormatRgba16Half:
		return "Rgba16Half"
	case FormatRgba32Float:
		return "Rgba32Float"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// BytesPerChannel returns the channel size in bytes, or 0 for unknown formats.
func (f Format) BytesPerChannel() int {
	switch f {
	case FormatRgba8:
		return 1
	case FormatRgba16Half:
		return 2
	case FormatRgba32Float:
		return 4
	default:
		return 0
	}
}

// BytesPerPixel returns the pixel size in bytes.
func (f Format) BytesPerPixel() int {
	return ChannelsPerPixel * f.BytesPerChannel()
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return f.BytesPerChannel() != 0
}

// Texture is a width x height pixel buffer in one of the supported formats.
//
// The average colour is cached against the object generation. Code that
// edits the slice returned by Data in place must call SetDirty(true)
// afterwards.
type Texture struct {
	Object

	format Format
	width  int
	height int
	data   []byte

	avg             math.Vec3
	avgGeneration   uint64
	avgValid        bool
	avgComputations int
}

// NewTexture creates a texture over a copy of data.
func NewTexture(format Format, width, height int, data []byte) (*Texture, error) {
	t := &Texture{Object: newObject()}
	if err := t.SetData(format, width, height, data); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTextureFromImage converts img to an Rgba8 texture. Colours are stored
// alpha-premultiplied, as image.RGBA holds them.
func NewTextureFromImage(img image.Image) (*Texture, error) {
	rgba := clone.AsRGBA(img)
	size := rgba.Bounds().Size()
	t := &Texture{Object: newObject()}
	if err := t.AdoptData(FormatRgba8, size.X, size.Y, rgba.Pix); err != nil {
		return nil, err
	}
	return t, nil
}

// SetData replaces the pixels with a copy of data.
func (t *Texture) SetData(format Format, width, height int, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	return t.AdoptData(format, width, height, buf)
}

// AdoptData replaces the pixels and takes ownership of data. The slice must
// hold exactly width*height pixels of the given format.
func (t *Texture) AdoptData(format Format, width, height int, data []byte) error {
	if !format.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrTextureSize, width, height)
	}
	bpp := format.BytesPerPixel()
	if width != 0 && height > gomath.MaxInt/bpp/width {
		return fmt.Errorf("%w: %dx%d %s overflows", ErrTextureSize, width, height, format)
	}
	if want := width * height * bpp; len(data) != want {
		return fmt.Errorf("%w: %dx%d %s needs %d bytes, got %d",
			ErrTextureSize, width, height, format, want, len(data))
	}

	t.format = format
	t.width = width
	t.height = height
	t.data = data
	t.markDirty()
	return nil
}

// Format returns the pixel encoding.
func (t *Texture) Format() Format { return t.format }

// Width returns the width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the height in pixels.
func (t *Texture) Height() int { return t.height }

// Data returns the raw pixel bytes. The slice is owned by the texture.
func (t *Texture) Data() []byte { return t.data }

// Pixel decodes the pixel at (x, y) to normalized RGBA. Coordinates outside
// the texture return zero.
func (t *Texture) Pixel(x, y int) [4]float32 {
	decode := decoderFor(t.format)
	if decode == nil || x < 0 || y < 0 || x >= t.width || y >= t.height {
		return [4]float32{}
	}
	bpp := t.format.BytesPerPixel()
	off := (y*t.width + x) * bpp
	return decode(t.data[off : off+bpp])
}

// ComputeAverageValue returns the mean RGB over all pixels. Alpha does not
// take part. An empty texture averages to zero.
func (t *Texture) ComputeAverageValue() math.Vec3 {
	if t.avgValid && t.avgGeneration == t.generation {
		return t.avg
	}

	t.avg = t.average()
	t.avgGeneration = t.generation
	t.avgValid = true
	t.avgComputations++
	return t.avg
}

func (t *Texture) average() math.Vec3 {
	decode := decoderFor(t.format)
	n := t.width * t.height
	if decode == nil || n == 0 {
		return math.Vec3{}
	}

	// Sum in float64 so large textures do not lose low-order contributions.
	var r, g, b float64
	bpp := t.format.BytesPerPixel()
	for i := 0; i < n; i++ {
		px := decode(t.data[i*bpp : (i+1)*bpp])
		r += float64(px[0])
		g += float64(px[1])
		b += float64(px[2])
	}

	scale := 1 / float64(n)
	return math.Vec3{X: float32(r * scale), Y: float32(g * scale), Z: float32(b * scale)}
}

type pixelDecoder func(px []byte) [4]float32

func decoderFor(f Format) pixelDecoder {
	switch f {
	case FormatRgba8:
		return decodeRgba8
	case FormatRgba16Half:
		return decodeRgba16Half
	case FormatRgba32Float:
		return decodeRgba32Float
	default:
		return nil
	}
}

func decodeRgba8(px []byte) [4]float32 {
	return [4]float32{
		float32(px[0]) / 255,
		float32(px[1]) / 255,
		float32(px[2]) / 255,
		float32(px[3]) / 255,
	}
}

func decodeRgba16Half(px []byte) [4]float32 {
	var out [4]float32
	for c := range out {
		bits := binary.LittleEndian.Uint16(px[2*c:])
		out[c] = float16.Frombits(bits).Float32()
	}
	return out
}

func decodeRgba32Float(px []byte) [4]float32 {
	var out [4]float32
	for c := range out {
		out[c] = gomath.Float32frombits(binary.LittleEndian.Uint32(px[4*c:]))
	}
	return out
}
