package model

import "strings"

// TitleSeparator joins the components of a derived album title.
// An en dash surrounded by spaces reads well in media library UIs.
const TitleSeparator = " – "

// Album holds the run-scoped metadata shared by every track in a merge.
//
// Album describes the single logical album the merged folders are presented
// as. All fields are fixed for the duration of a run:
//   - Artist and Date are always present (required on the command line)
//   - Venue, Location and Genre are optional and may be empty
//   - TitleOverride, when set, is used verbatim as the album title
//
// When TitleOverride is empty, Title derives a name from the other fields,
// which is the common case for live recordings spread across several
// source folders.
//
// Example:
//
//	album := &model.Album{
//	    Artist:   "The Example Band",
//	    Date:     "2024-09-15",
//	    Venue:    "Red Rocks Amphitheatre",
//	    Location: "Boulder, CO",
//	}
//	album.Title() // "The Example Band – 2024-09-15 – Red Rocks Amphitheatre – Boulder, CO"
type Album struct {
	// Artist is the album artist name.
	Artist string

	// Date is the full ISO-8601 recording date (YYYY-MM-DD).
	Date string

	// Venue is the venue name. Empty if not supplied.
	Venue string

	// Location is the city/state/country. Empty if not supplied.
	Location string

	// Genre is the genre string. Empty if not supplied; an empty genre
	// is still written so stale values are cleared.
	Genre string

	// TitleOverride is an explicit album title. When non-empty it is
	// used as-is and no derivation takes place.
	TitleOverride string
}

// Title returns the album title to write into every track.
//
// If TitleOverride is set it is returned unchanged. Otherwise the title is
// built by joining Artist, Date, and any present Venue and Location, in
// that order, with TitleSeparator. Absent optional fields are omitted
// entirely, never left as empty segments.
//
// The derivation is deterministic: the same inputs always produce the same
// title, so re-running a merge leaves the album field byte-identical.
func (a *Album) Title() string {
	if a.TitleOverride != "" {
		return a.TitleOverride
	}

	parts := []string{a.Artist, a.Date}
	if a.Venue != "" {
		parts = append(parts, a.Venue)
	}
	if a.Location != "" {
		parts = append(parts, a.Location)
	}

	return strings.Join(parts, TitleSeparator)
}

// Cover is an album cover image ready for embedding.
type Cover struct {
	// Data is the raw image bytes.
	Data []byte

	// MIMEType is the image MIME type ("image/jpeg" or "image/png"),
	// derived from the source file extension.
	MIMEType string
}
