package service

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"file-converter/internal/domain"
)

const jpegQuality = 90

// ImageTranscoder re-encodes any registered raster format as RGB JPEG.
type ImageTranscoder struct{}

// NewImageTranscoder creates a new image transcoder
func NewImageTranscoder() *ImageTranscoder {
	return &ImageTranscoder{}
}

// TranscodeJPEG decodes the input and encodes it as JPEG. Transparency
// is flattened onto a white background; JPEG carries no alpha plane, so
// this step is lossy and irreversible.
func (t *ImageTranscoder) TranscodeJPEG(inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnsupportedImageFormat, err)
	}

	bounds := src.Bounds()
	flattened := image.NewRGBA(bounds)
	draw.Draw(flattened, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flattened, bounds, src, bounds.Min, draw.Over)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, flattened, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return nil
}
