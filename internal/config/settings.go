package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// File discovery
	Extension string `json:"extension"`
	SortMode  string `json:"sort_mode"` // alpha, numeric

	// Tag settings
	ModifyTags bool `json:"modify_tags"`

	// Cover art settings
	EmbedCoverArt        bool `json:"embed_cover_art"`
	CoverArtResize       bool `json:"cover_art_resize"`
	CoverArtMaxSize      int  `json:"cover_art_max_size"`
	ConvertCoverArtToJPG bool `json:"convert_cover_art_to_jpg"`

	// Playlist settings
	CreatePlaylist         bool   `json:"create_playlist"`
	PlaylistFileNameFormat string `json:"playlist_file_name_format"`
	M3UExtended            bool   `json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
//
// The defaults match the documented behavior exactly: plain ".aiff"
// matching, alphabetical sorting, tags modified, cover art embedded as-is
// (no resizing or re-encoding, so the extension-derived MIME type holds),
// and no playlist file.
func DefaultSettings() *Settings {
	return &Settings{
		Extension: ".aiff",
		SortMode:  "alpha",

		ModifyTags: true,

		EmbedCoverArt:        true,
		CoverArtResize:       false,
		CoverArtMaxSize:      1000,
		ConvertCoverArtToJPG: false,

		CreatePlaylist:         false,
		PlaylistFileNameFormat: "{album}",
		M3UExtended:            false,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so the tool works
// without any configuration. Unknown keys in the file are ignored; absent
// keys keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
