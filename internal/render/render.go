// Package render converts the machine framebuffer to images for the window
// front-end and for screenshots.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/vm"
	"golang.org/x/image/bmp"
)

var (
	// Background is the color of unset pixels.
	Background = color.RGBA{R: 143, G: 145, B: 133, A: 255}
	// Foreground is the color of set pixels.
	Foreground = color.RGBA{R: 17, G: 29, B: 43, A: 255}

	palette = color.Palette{Background, Foreground}
)

// Image returns the framebuffer as paletted image with every pixel enlarged
// to a scale x scale square. A scale below 1 is treated as 1.
func Image(fb *vm.Framebuffer, scale int) *image.Paletted {
	scale = max(scale, 1)
	img := image.NewPaletted(image.Rect(0, 0, vm.ScreenWidth*scale, vm.ScreenHeight*scale), palette)

	for y, row := range fb {
		for x, set := range row {
			if !set {
				continue
			}
			for dy := range scale {
				offset := img.PixOffset(x*scale, y*scale+dy)
				for dx := range scale {
					img.Pix[offset+dx] = 1
				}
			}
		}
	}
	return img
}

// RGBA writes the framebuffer as RGBA pixel data of 64x32 pixels into dst
// and returns it. dst is allocated if it is too small.
func RGBA(fb *vm.Framebuffer, dst []byte) []byte {
	const size = vm.ScreenWidth * vm.ScreenHeight * 4
	if len(dst) < size {
		dst = make([]byte, size)
	}

	i := 0
	for _, row := range fb {
		for _, set := range row {
			c := Background
			if set {
				c = Foreground
			}
			dst[i+0] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = c.A
			i += 4
		}
	}
	return dst[:size]
}

// WriteBMP encodes the scaled framebuffer as BMP image.
func WriteBMP(w io.Writer, fb *vm.Framebuffer, scale int) error {
	if err := bmp.Encode(w, Image(fb, scale)); err != nil {
		return fmt.Errorf("encoding bmp: %w", err)
	}
	return nil
}

// SaveBMP writes the scaled framebuffer as BMP image to the given file.
func SaveBMP(path string, fb *vm.Framebuffer, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", path, err)
	}

	if err := WriteBMP(f, fb, scale); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file '%s': %w", path, err)
	}
	return nil
}
