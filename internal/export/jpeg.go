// Package export encodes a finished drawing for download.
package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"
)

const (
	// FileName is what a downloaded drawing is offered as.
	FileName    = "paint-example.jpeg"
	PDFFileName = "paint-example.pdf"

	DefaultQuality = 100
)

// WriteJPEG encodes img at the given quality (1-100).
func WriteJPEG(w io.Writer, img image.Image, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}
