package model

import (
	"path/filepath"
	"strings"
)

// Track represents one audio file in the merged album.
//
// Tracks are produced by scanning the source folders in their supplied
// order. The numbering fields encode the track's place in the unified
// album:
//   - DiscNumber is the 1-based position of the track's source folder in
//     the folder list the user supplied. Skipped folders keep their
//     position, so disc numbers can have gaps but never reorder.
//   - TrackNumber is the 1-based index across the whole run, counted in
//     folder order then in-folder sort order. Numbers are contiguous:
//     a run with N files always assigns exactly 1..N.
//
// Example:
//
//	track := model.Track{
//	    Path:        "/shows/2024-09-15/cd2/03 encore.aiff",
//	    Folder:      "cd2",
//	    DiscNumber:  2,
//	    TrackNumber: 14,
//	    Title:       "Encore",
//	}
type Track struct {
	// Path is the full path to the audio file.
	Path string

	// Folder is the source folder name the file was found in.
	Folder string

	// DiscNumber is the 1-based position of Folder in the supplied list.
	DiscNumber int

	// TrackNumber is the 1-based global track index across all folders.
	TrackNumber int

	// Title is the resolved track title: the external track-list entry
	// for this position if one was supplied, otherwise the file's base
	// name without extension. Empty until title resolution runs.
	Title string
}

// Stem returns the track file's base name without its extension,
// used as the fallback title when no external track list covers it.
func (t *Track) Stem() string {
	return Stem(t.Path)
}

// Stem returns a path's base name with the extension stripped.
//
// Example:
//
//	model.Stem("/music/cd1/02 jam.aiff") // "02 jam"
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TagRecord is the fully resolved write request for a single file.
//
// It combines the run-scoped album metadata with one track's numbering and
// title, plus the run totals a consistent TRCK frame needs. TagRecord is
// the only value handed to the tag writer; it is produced after planning
// completes so every record already knows the final track count.
type TagRecord struct {
	// Album is the shared album metadata.
	Album *Album

	// Track is the file being written.
	Track Track

	// TotalTracks is the run-wide file count, fixed before any write.
	TotalTracks int

	// Cover is the album artwork to embed, or nil to leave any existing
	// artwork untouched.
	Cover *Cover
}
