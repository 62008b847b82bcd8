package audio

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/bogem/id3v2"

	"aiffmerge/internal/aiff"
	"aiffmerge/internal/model"
)

// TagEditAction defines how to handle individual ID3 tags.
//
// Each tag field can be configured independently to determine whether
// it should be modified, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty clears the tag value (removes the frame or sets it empty).
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from the merge plan.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
//
// This allows fine-grained control over which frames are rewritten when
// processing the merged files. The default configuration modifies
// everything, which is what a merge run wants: every file should agree
// on the album-level fields.
type TagConfig struct {
	// ModifyTags is a master switch. If false, no string tags are modified.
	ModifyTags bool

	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// Album controls the TALB (Album title) frame.
	Album TagEditAction

	// Date controls the TDRC (Recording time) frame (ID3v2.4).
	Date TagEditAction

	// TrackNumber controls the TRCK frame, written as "current/total".
	TrackNumber TagEditAction

	// DiscNumber controls the TPOS (Part of a set) frame.
	DiscNumber TagEditAction

	// TrackTitle controls the TIT2 (Title) frame.
	TrackTitle TagEditAction

	// Genre controls the TCON (Content type) frame.
	Genre TagEditAction

	// Venue controls the TXXX frame with description "Venue".
	Venue TagEditAction

	// Location controls the TXXX frame with description "Location".
	Location TagEditAction
}

// DefaultTagConfig returns the default tag configuration: every field
// set to TagModify so the merged files present one consistent album.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags:  true,
		Artist:      TagModify,
		Album:       TagModify,
		Date:        TagModify,
		TrackNumber: TagModify,
		DiscNumber:  TagModify,
		TrackTitle:  TagModify,
		Genre:       TagModify,
		Venue:       TagModify,
		Location:    TagModify,
	}
}

// Tagger writes ID3 tags into AIFF files.
//
// The frame payload is serialized with the id3v2 library; placement
// inside the AIFF container is delegated to the aiff package. A file
// without an existing tag gets a fresh one; absence of metadata is
// never an error. Unrelated frames already present in the file are
// carried over untouched.
//
// Example:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.WriteRecord(&record)
//	if err != nil {
//	    // per-file write failures are fatal to the run
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// WriteRecord writes one resolved TagRecord into its file.
//
// This method:
//  1. Extracts the existing ID3 chunk, if any, and parses it
//  2. Updates string frames based on TagConfig settings
//  3. Replaces embedded cover art if the record carries one
//  4. Rewrites the file with the new chunk
//
// Any read, parse or write failure is returned to the caller; the run
// treats it as fatal and does not continue past the failing file.
func (t *Tagger) WriteRecord(rec *model.TagRecord) error {
	existing, err := aiff.ReadID3(rec.Track.Path)
	if err != nil {
		return err
	}

	var tag *id3v2.Tag
	if existing == nil {
		tag = id3v2.NewEmptyTag()
	} else {
		tag, err = id3v2.ParseReader(bytes.NewReader(existing), id3v2.Options{Parse: true})
		if err != nil {
			return fmt.Errorf("parsing existing tag in %s: %w", rec.Track.Path, err)
		}
	}

	if t.config.ModifyTags {
		t.updateStringTags(tag, rec)
	}

	if rec.Cover != nil {
		t.updateArtwork(tag, rec.Cover)
	}

	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		return fmt.Errorf("serializing tag for %s: %w", rec.Track.Path, err)
	}

	return aiff.WriteID3(rec.Track.Path, buf.Bytes())
}

// updateStringTags updates text-based ID3 frames based on configuration.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, rec *model.TagRecord) {
	// Artist (TPE1)
	switch t.config.Artist {
	case TagEmpty:
		tag.SetArtist("")
	case TagModify:
		tag.SetArtist(rec.Album.Artist)
	}

	// Album (TALB)
	switch t.config.Album {
	case TagEmpty:
		tag.SetAlbum("")
	case TagModify:
		tag.SetAlbum(rec.Album.Title())
	}

	// Date (TDRC) - full ISO date, ID3v2.4
	switch t.config.Date {
	case TagEmpty:
		tag.DeleteFrames("TDRC")
	case TagModify:
		tag.AddTextFrame("TDRC", id3v2.EncodingUTF8, rec.Album.Date)
	}

	// Track Number (TRCK) - always "current/total" so every file knows
	// its place in the unified album
	switch t.config.TrackNumber {
	case TagEmpty:
		tag.DeleteFrames("TRCK")
	case TagModify:
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8,
			fmt.Sprintf("%d/%d", rec.Track.TrackNumber, rec.TotalTracks))
	}

	// Disc Number (TPOS)
	switch t.config.DiscNumber {
	case TagEmpty:
		tag.DeleteFrames("TPOS")
	case TagModify:
		tag.AddTextFrame("TPOS", id3v2.EncodingUTF8, strconv.Itoa(rec.Track.DiscNumber))
	}

	// Track Title (TIT2)
	switch t.config.TrackTitle {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(rec.Track.Title)
	}

	// Genre (TCON) - written even when empty so stale genres are cleared
	switch t.config.Genre {
	case TagEmpty:
		tag.SetGenre("")
	case TagModify:
		tag.SetGenre(rec.Album.Genre)
	}

	// Venue and Location land in TXXX frames, which media libraries show
	// as free-form labeled text. Only written when a value is present.
	switch t.config.Venue {
	case TagEmpty:
		removeUserText(tag, "Venue")
	case TagModify:
		if rec.Album.Venue != "" {
			setUserText(tag, "Venue", rec.Album.Venue)
		}
	}

	switch t.config.Location {
	case TagEmpty:
		removeUserText(tag, "Location")
	case TagModify:
		if rec.Album.Location != "" {
			setUserText(tag, "Location", rec.Album.Location)
		}
	}
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, cover *model.Cover) {
	// Remove any existing cover pictures so exactly one remains
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    cover.MIMEType,
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     cover.Data,
	}
	tag.AddAttachedPicture(pic)
}

// setUserText replaces the TXXX frame with the given description,
// keeping TXXX frames with other descriptions intact.
func setUserText(tag *id3v2.Tag, description, value string) {
	kept := otherUserText(tag, description)
	tag.DeleteFrames(tag.CommonID("User defined text information frame"))
	for _, frame := range kept {
		tag.AddUserDefinedTextFrame(frame)
	}
	tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: description,
		Value:       value,
	})
}

// removeUserText deletes the TXXX frame with the given description.
func removeUserText(tag *id3v2.Tag, description string) {
	kept := otherUserText(tag, description)
	tag.DeleteFrames(tag.CommonID("User defined text information frame"))
	for _, frame := range kept {
		tag.AddUserDefinedTextFrame(frame)
	}
}

// otherUserText collects TXXX frames whose description differs.
func otherUserText(tag *id3v2.Tag, description string) []id3v2.UserDefinedTextFrame {
	frames := tag.GetFrames(tag.CommonID("User defined text information frame"))
	var kept []id3v2.UserDefinedTextFrame
	for _, f := range frames {
		udt, ok := f.(id3v2.UserDefinedTextFrame)
		if ok && udt.Description != description {
			kept = append(kept, udt)
		}
	}
	return kept
}
