package scan

import (
	"errors"

	"aiffmerge/internal/model"
)

// ErrNoFiles is returned when every supplied folder yields zero matching
// files. This is the one case where collection emptiness is fatal: with
// nothing to write, the run must not report success.
var ErrNoFiles = errors.New("no matching audio files found in any supplied folder")

// Enumerate flattens per-folder file lists into the globally numbered
// track sequence.
//
// folders and lists are parallel: lists[i] holds the sorted file paths of
// folders[i]. The concatenation preserves folder order, then in-folder
// order, and assigns global track numbers 1, 2, 3, ... across the whole
// run. Disc numbers come straight from each folder's original position,
// so they are non-decreasing over the sequence.
//
// Returns ErrNoFiles if the concatenation is empty. Track titles are left
// empty; title resolution is a separate, later step.
func Enumerate(folders []Folder, lists [][]string) ([]model.Track, error) {
	var tracks []model.Track

	number := 1
	for i, folder := range folders {
		for _, path := range lists[i] {
			tracks = append(tracks, model.Track{
				Path:        path,
				Folder:      folder.Name,
				DiscNumber:  folder.Disc,
				TrackNumber: number,
			})
			number++
		}
	}

	if len(tracks) == 0 {
		return nil, ErrNoFiles
	}
	return tracks, nil
}
