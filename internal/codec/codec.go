package codec

import (
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ironsheep/pixel-edit/internal/canvas"
)

// DefaultJPEGQuality is used when a canvas carries no quality setting.
const DefaultJPEGQuality = 90

// Load reads an image file into a single-layer canvas. The detected format,
// the source path and a default JPEG quality are recorded on the canvas.
func Load(path string) (*canvas.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	decoded, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img := canvas.FromNRGBA(imaging.Clone(decoded))
	img.Path = path
	img.Format = format
	img.Quality = DefaultJPEGQuality
	return img, nil
}

// Save flattens the canvas and writes it to path. The encoder is chosen by
// the path's extension, falling back to the canvas's recorded format and
// then to PNG. On success the canvas's path and format are updated to what
// was written.
func Save(img *canvas.Image, path string) error {
	format := formatForExt(filepath.Ext(path))
	if format == "" {
		format = img.Format
	}
	if format == "" {
		format = "png"
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	flat := img.Flatten()
	switch format {
	case "png":
		err = imaging.Encode(f, flat, imaging.PNG)
	case "jpeg":
		q := img.Quality
		if q <= 0 || q > 100 {
			q = DefaultJPEGQuality
		}
		err = imaging.Encode(f, flat, imaging.JPEG, imaging.JPEGQuality(q))
	case "gif":
		err = gif.Encode(f, flat, nil)
	case "bmp":
		err = bmp.Encode(f, flat)
	case "tiff":
		err = tiff.Encode(f, flat, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s image: %w", format, err)
	}

	img.Path = path
	img.Format = format
	return nil
}

// formatForExt maps a file extension to an encoder name, or "" when the
// extension is unknown.
func formatForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	default:
		return ""
	}
}
