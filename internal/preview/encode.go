package preview

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// Encode writes img as lossless WebP.
func Encode(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("preview: webp encode: %w", err)
	}
	return nil
}

// WriteFile encodes img into path.
func WriteFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
