// Package imageio decodes image files into textures for the command-line
// tools. TGA is handled here; PNG, JPEG and GIF come from the standard
// library and BMP, TIFF and WebP from golang.org/x/image.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Faultbox/scenecore/internal/scene"
)

// Decode decodes image data. TGA has no magic number, so the caller names it
// through ext (".tga"); everything else is sniffed from its header.
func Decode(data []byte, ext string) (image.Image, string, error) {
	if strings.EqualFold(ext, ".tga") {
		img, err := DecodeTGA(data)
		return img, "tga", err
	}
	return image.Decode(bytes.NewReader(data))
}

// LoadTexture reads an image file and converts it to an Rgba8 texture named
// after the file.
func LoadTexture(path string) (*scene.Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	tex, err := scene.NewTextureFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", path, err)
	}
	tex.SetName(filepath.Base(path))
	return tex, nil
}
