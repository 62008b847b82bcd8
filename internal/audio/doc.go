// Package audio provides audio file manipulation services including
// ID3 tag writing and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to write ID3 tags into AIFF files:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.WriteRecord(&record)
//
// The tagger supports:
//   - Artist, Album Title, Recording Date
//   - Track Number with run total ("5/27"), Disc Number
//   - Track Title, Genre
//   - Venue and Location as labeled TXXX text fields
//   - Cover Art (embedded, replacing any existing pictures)
//
// Frames are serialized with the id3v2 library; the aiff package places
// the serialized tag inside the file's ID3 chunk.
//
// # Playlist Generation
//
// Generate an M3U playlist of the merged album:
//
//	creator := audio.NewPlaylistCreator(true) // extended M3U
//	content := creator.CreatePlaylist(album, tracks)
//	os.WriteFile(path, []byte(content), 0644)
package audio
