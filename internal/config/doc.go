// Package config provides configuration management for aiffmerge.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Matches ".aiff" files
//	// Alphabetical in-folder sorting
//	// Tag modification enabled, cover art embedded unmodified
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - The matched file extension and default sort mode
//   - ID3 tag modification
//   - Cover art resizing and JPEG conversion before embedding
//   - M3U playlist generation
//
// Command-line flags take precedence over values loaded from a file.
package config
