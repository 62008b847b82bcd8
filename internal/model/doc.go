// Package model defines the core data structures used throughout
// the aiffmerge utility.
//
// # Album
//
// Album carries the run-scoped metadata shared by every file, and derives
// an album title when the user does not supply one explicitly:
//
//	album := &model.Album{Artist: "Artist", Date: "2024-09-15", Venue: "Venue"}
//	album.Title() // "Artist – 2024-09-15 – Venue"
//
// # Track
//
// Track represents one discovered audio file together with its place in
// the unified album (disc number from folder position, global track
// number across all folders):
//
//	track.DiscNumber  // 1-based position of the source folder
//	track.TrackNumber // 1-based index across the entire run
//
// # TagRecord
//
// TagRecord is the per-file write request: album metadata, track
// numbering, the fixed run-wide total, and optional cover art. It is the
// only value the tag writer consumes.
package model
