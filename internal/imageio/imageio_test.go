package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	img, format, err := Decode(buf.Bytes(), ".png")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r>>8 != 10 {
		t.Errorf("red = %d, want 10", r>>8)
	}
}

func TestLoadTextureTGA(t *testing.T) {
	data := tgaHeader(TGATypeUncompressed, 2, 1, 24, 0)
	data = append(data, 0, 0, 255, 0, 0, 255) // two red pixels

	path := filepath.Join(t.TempDir(), "red.TGA")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if tex.Name() != "red.TGA" {
		t.Errorf("name = %q, want red.TGA", tex.Name())
	}
	if tex.Width() != 2 || tex.Height() != 1 {
		t.Errorf("size = %dx%d, want 2x1", tex.Width(), tex.Height())
	}
	avg := tex.ComputeAverageValue()
	if avg.X != 1 || avg.Y != 0 || avg.Z != 0 {
		t.Errorf("average = %v, want (1, 0, 0)", avg)
	}
}

func TestLoadTextureMissing(t *testing.T) {
	if _, err := LoadTexture("/nonexistent/texture.png"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadTextureGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if _, err := LoadTexture(path); err == nil {
		t.Error("expected decode error, got nil")
	}
}
