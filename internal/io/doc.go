// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Reading external track-title lists
//   - Loading cover images with extension-derived MIME types
//   - Filename sanitization for playlist files
//   - Image resizing and format conversion
//
// # Track Lists
//
//	titles, err := ioutils.ReadTrackList("/path/to/titles.txt")
//	// one title per non-blank line, order preserved
//
// # Cover Art
//
//	cover, warning, err := ioutils.LoadCover("/path/to/cover.png")
//	// cover.MIMEType derived from the extension, never sniffed
//
// # Image Processing
//
// The ImageService optionally transforms cover art before embedding:
//
//	svc := ioutils.NewImageService()
//	resized, _ := svc.ResizeImage(imageData, 1000, 1000)
//	jpegData, _ := svc.ConvertToJPEG(pngData)
package ioutils
