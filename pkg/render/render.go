// Package render builds whole images with colorize and writes them as PNG.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/willbeason/mandel-sweep/pkg/colorize"
)

var ErrInvalidSize = errors.New("invalid image size")

// Filename is the name of the image rendered for size and samples.
func Filename(size, samples int) string {
	return fmt.Sprintf("mandel-%d-%d.png", size, samples)
}

// Image renders a size x size image row by row. The first pixel that fails
// aborts the render; no partial image is returned.
func Image(ctx context.Context, size int, p colorize.Params) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cz, err := colorize.New(p)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for row := 0; row < size; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for col := 0; col < size; col++ {
			c, err := cz.Pixel(row, col, size)
			if err != nil {
				return nil, err
			}
			img.SetRGBA(col, row, c)
		}
	}

	return img, nil
}

// Write encodes img as PNG.
func Write(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Save writes img as a PNG file at path.
func Save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = Write(f, img)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}

// Render renders the image for size and samples with the fixed run
// parameters and saves it in dir, returning the file's path.
func Render(ctx context.Context, dir string, size, samples int) (string, error) {
	img, err := Image(ctx, size, colorize.DefaultParams(samples))
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(size, samples))
	err = Save(path, img)
	if err != nil {
		return "", err
	}

	return path, nil
}
