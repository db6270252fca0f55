package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsSupported reports whether path has an image extension that Open can decode
func IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Open decodes the image at path, honouring EXIF orientation
func Open(path string) (image.Image, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("unsupported image type: %s", filepath.Ext(path))
	}

	if strings.EqualFold(filepath.Ext(path), ".webp") {
		return openWebP(path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func openWebP(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}

	// Fallback: the pure Go decoder registered with image.Decode
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to rewind image: %w", err)
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Fit scales img down to fit within maxWidth x maxHeight, keeping the aspect
// ratio. Images that already fit are returned unchanged together with scale 1.
// The returned scale converts image coordinates to display coordinates.
func Fit(img image.Image, maxWidth, maxHeight int) (image.Image, float64) {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth && bounds.Dy() <= maxHeight {
		return img, 1
	}

	fitted := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	return fitted, float64(fitted.Bounds().Dx()) / float64(bounds.Dx())
}

// Thumbnail returns a square thumbnail cropped from the center of img
func Thumbnail(img image.Image, size int) *image.NRGBA {
	return imaging.Thumbnail(img, size, size, imaging.Lanczos)
}

// Save encodes img to path, choosing the format from the extension
func Save(img image.Image, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create image: %w", err)
		}
		defer f.Close()

		if err := webp.Encode(f, img, &webp.Options{Lossless: true}); err != nil {
			return fmt.Errorf("failed to encode image: %w", err)
		}
		return nil
	}

	if err := imaging.Save(img, path, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
