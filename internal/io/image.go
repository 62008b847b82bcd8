package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService provides image processing operations for cover art.
//
// ImageService is used to:
//   - Resize cover images to fit maximum dimensions before embedding
//   - Convert images to JPEG format (for better player compatibility)
//
// Both operations are optional and off by default; when neither is
// enabled the cover bytes are embedded exactly as read from disk.
//
// Example usage:
//
//	svc := NewImageService()
//	resized, _ := svc.ResizeImage(coverData, 1000, 1000)
//	jpegData, _ := svc.ConvertToJPEG(resized)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// ResizeImage resizes an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved. If the image is already smaller than the
// maximum dimensions, it will still be processed (re-encoded as JPEG).
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// Resize to fit within 1000x1000, maintaining aspect ratio
//	resized, err := svc.ResizeImage(imageData, 1000, 1000)
//	// A 1500x1000 image becomes 1000x667
//	// A 800x600 image remains 800x600 (but re-encoded)
func (s *ImageService) ResizeImage(data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Calculate new dimensions maintaining aspect ratio
	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			// Height is the limiting factor
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			// Width is the limiting factor
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ConvertToJPEG converts an image to JPEG format.
//
// Useful before embedding: JPEG covers are smaller than PNG and are
// handled by effectively every player. When conversion is enabled the
// embedded MIME type is always image/jpeg regardless of the source
// file's extension.
//
// Returns the image as JPEG-encoded bytes with 90% quality. If the input
// is already JPEG it is re-encoded.
func (s *ImageService) ConvertToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
