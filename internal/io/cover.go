package ioutils

import (
	"os"
	"path/filepath"
	"strings"

	"aiffmerge/internal/model"
)

// LoadCover reads a cover image and derives its MIME type.
//
// The MIME type comes from the file extension alone, never from content
// sniffing:
//
//	.jpg, .jpeg → image/jpeg
//	.png        → image/png
//	anything else defaults to image/jpeg, with a warning
//
// The returned warning is non-empty only for the default case. An
// unreadable path is an error; a cover that was asked for but cannot be
// loaded is fatal to the run before any file is written.
func LoadCover(path string) (*model.Cover, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	var warning string
	var mimeType string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mimeType = "image/jpeg"
	case ".png":
		mimeType = "image/png"
	default:
		mimeType = "image/jpeg"
		warning = "unknown cover image type; defaulting to image/jpeg"
	}

	return &model.Cover{Data: data, MIMEType: mimeType}, warning, nil
}
