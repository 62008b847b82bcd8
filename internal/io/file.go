package ioutils

import (
	"os"
	"regexp"
	"strings"
)

// ReadTrackList reads an external track-title file.
//
// The file is UTF-8 text with one title per line. Lines are trimmed of
// surrounding whitespace (which also strips Windows line endings), blank
// lines are dropped, and order is preserved. Titles are consumed by
// position against the flattened track sequence, independent of disc
// boundaries.
//
// Returns an error if the file cannot be read; a supplied-but-unreadable
// track list is fatal to the run before any file is written.
func ReadTrackList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var titles []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			titles = append(titles, line)
		}
	}
	return titles, nil
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names, used when a derived album title becomes a playlist
// filename.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Band – 2024/09/15") // "Band – 2024_09_15"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space for cleaner names
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
