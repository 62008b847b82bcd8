package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	"aiffmerge/internal/model"
)

// PlaylistCreator generates an M3U playlist for the merged album.
//
// The playlist lists every track in global track order with paths
// relative to the root directory (folder name plus filename), so playing
// the file from the root walks the unified album front to back, a quick
// way to verify the merge ordering without a media library rescan.
//
// Example:
//
//	creator := NewPlaylistCreator(true) // extended M3U
//	content := creator.CreatePlaylist(album, tracks)
//	os.WriteFile(filepath.Join(root, "album.m3u"), []byte(content), 0644)
type PlaylistCreator struct {
	extended bool // include #EXTINF lines with artist/title info
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// When extended is true the playlist carries #EXTINF lines; track
// durations are not probed, so the standard -1 placeholder is used.
func NewPlaylistCreator(extended bool) *PlaylistCreator {
	return &PlaylistCreator{extended: extended}
}

// CreatePlaylist generates M3U content for the merged album.
//
// Returns the playlist as a string, ready to be written to a file in the
// root directory. Entries are root-relative folder/filename paths built
// with the platform separator.
func (p *PlaylistCreator) CreatePlaylist(album *model.Album, tracks []model.Track) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, track := range tracks {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s - %s\n", album.Artist, track.Title))
		}
		sb.WriteString(filepath.Join(track.Folder, filepath.Base(track.Path)) + "\n")
	}

	return sb.String()
}
