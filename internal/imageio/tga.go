package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

// TGA errors.
var (
	ErrTGATruncated   = errors.New("TGA data truncated")
	ErrTGAUnsupported = errors.New("unsupported TGA variant")
)

// DecodeTGA decodes an uncompressed (type 2) or RLE (type 10) true-color TGA
// with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.NRGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("%w: %d byte header", ErrTGATruncated, len(data))
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped", ErrTGAUnsupported)
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("%w: type %d", ErrTGAUnsupported, imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrTGAUnsupported, bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, ErrTGATruncated
	}

	r := &tgaReader{
		src:   data[offset:],
		bytes: bpp / 8,
		rle:   imageType == TGATypeRLE,
	}
	if width*height > r.maxPixels() {
		return nil, fmt.Errorf("%w: %dx%d needs more than %d bytes of pixel data",
			ErrTGATruncated, width, height, len(r.src))
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		c, err := r.next()
		if err != nil {
			return nil, err
		}
		x, y := i%width, i/width
		if !topToBottom {
			y = height - 1 - y
		}
		img.SetNRGBA(x, y, c)
	}
	return img, nil
}

// tgaReader yields pixels in file order, expanding RLE packets.
type tgaReader struct {
	src   []byte
	pos   int
	bytes int
	rle   bool

	left   int  // pixels remaining in the current packet
	repeat bool // current packet repeats one pixel
	last   color.NRGBA
}

// maxPixels bounds how many pixels the remaining data can describe. An RLE
// packet is one header byte plus at least one pixel and expands to at most
// 128 pixels.
func (r *tgaReader) maxPixels() int {
	if !r.rle {
		return len(r.src) / r.bytes
	}
	return len(r.src) / (1 + r.bytes) * 128
}

func (r *tgaReader) next() (color.NRGBA, error) {
	if !r.rle {
		return r.pixel()
	}

	if r.left == 0 {
		if r.pos >= len(r.src) {
			return color.NRGBA{}, ErrTGATruncated
		}
		header := r.src[r.pos]
		r.pos++
		r.left = int(header&0x7F) + 1
		r.repeat = header&0x80 != 0
		if r.repeat {
			c, err := r.pixel()
			if err != nil {
				return c, err
			}
			r.last = c
		}
	}
	r.left--

	if r.repeat {
		return r.last, nil
	}
	return r.pixel()
}

// pixel reads one BGR(A) pixel.
func (r *tgaReader) pixel() (color.NRGBA, error) {
	if r.pos+r.bytes > len(r.src) {
		return color.NRGBA{}, ErrTGATruncated
	}
	p := r.src[r.pos : r.pos+r.bytes]
	r.pos += r.bytes

	c := color.NRGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bytes == 4 {
		c.A = p[3]
	}
	return c, nil
}
