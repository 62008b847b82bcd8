package merge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"aiffmerge/internal/audio"
	"aiffmerge/internal/config"
	ioutils "aiffmerge/internal/io"
	"aiffmerge/internal/model"
	"aiffmerge/internal/scan"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a merge progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Options carries the per-run invocation arguments.
//
// Root, Artist, Date and FolderNames are required; everything else is
// optional. Options are fixed once the run starts.
type Options struct {
	// Root is the directory containing the source folders.
	Root string

	// FolderNames is the ordered folder list; position defines the
	// disc number.
	FolderNames []string

	// Artist and Date are the required album metadata.
	Artist string
	Date   string

	// Venue, Location and Genre are optional album metadata.
	Venue    string
	Location string
	Genre    string

	// AlbumTitle, when non-empty, overrides the derived album title.
	AlbumTitle string

	// CoverPath is an optional JPEG/PNG image to embed as artwork.
	CoverPath string

	// TrackListPath is an optional text file with one title per line.
	TrackListPath string

	// SortMode orders files inside each folder.
	SortMode scan.SortMode
}

// Plan is the fully resolved write plan for one run.
//
// Planning is a pure function of the filesystem snapshot and the options:
// running it twice over unchanged input produces identical records, which
// is what makes re-running the tool safe.
type Plan struct {
	// Album is the shared album metadata with the final title.
	Album *model.Album

	// Tracks is the flattened, globally numbered, title-resolved sequence.
	Tracks []model.Track

	// Records are the per-file write requests, one per track, each
	// already carrying the final total track count.
	Records []model.TagRecord

	// Cover is the loaded artwork, nil when none was supplied.
	Cover *model.Cover
}

// Manager coordinates a merge run.
//
// A Manager performs two phases: Plan gathers and numbers every file and
// resolves all metadata without touching any file, then Run writes tags
// strictly sequentially. The split guarantees every written file reports
// the same "current/total" track pair even though files are tagged one
// at a time.
type Manager struct {
	settings *config.Settings
	opts     Options
	tagger   *audio.Tagger
	images   *ioutils.ImageService

	plan *Plan

	totalFiles   int32
	writtenFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new merge Manager.
func NewManager(settings *config.Settings, opts Options, onProgress func(ProgressEvent)) *Manager {
	tagCfg := audio.DefaultTagConfig()
	tagCfg.ModifyTags = settings.ModifyTags

	return &Manager{
		settings:   settings,
		opts:       opts,
		tagger:     audio.NewTagger(tagCfg),
		images:     ioutils.NewImageService(),
		onProgress: onProgress,
	}
}

// Plan resolves folders, collects and numbers files, loads auxiliary
// resources, and produces the full write plan.
//
// Nothing is written. All fatal conditions that can be detected before
// writing are detected here: an unusable root, an empty folder list,
// zero matching files across every folder, and an unreadable track list
// or cover image. Individually missing or empty folders only warn.
func (m *Manager) Plan(ctx context.Context) (*Plan, error) {
	info, err := os.Stat(m.opts.Root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("root path does not exist or is not a directory: %s", m.opts.Root)
	}
	if len(m.opts.FolderNames) == 0 {
		return nil, fmt.Errorf("no source folders supplied")
	}

	folders, warnings := scan.ResolveFolders(m.opts.Root, m.opts.FolderNames)
	for _, warning := range warnings {
		m.progress(ProgressEvent{Message: warning, Level: LevelWarning})
	}

	lists := make([][]string, len(folders))
	for i, folder := range folders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		files, err := scan.CollectFiles(folder, m.settings.Extension, m.opts.SortMode)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("skipping unreadable folder %s: %v", folder.Path, err), Level: LevelWarning})
			continue
		}
		if len(files) == 0 {
			m.progress(ProgressEvent{Message: fmt.Sprintf("folder %s contains no %s files", folder.Name, m.settings.Extension), Level: LevelInfo})
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("folder %s (disc %d): %d files", folder.Name, folder.Disc, len(files)), Level: LevelVerbose})
		}
		lists[i] = files
	}

	tracks, err := scan.Enumerate(folders, lists)
	if err != nil {
		return nil, err
	}

	var titles []string
	if m.opts.TrackListPath != "" {
		titles, err = ioutils.ReadTrackList(m.opts.TrackListPath)
		if err != nil {
			return nil, fmt.Errorf("reading track list %s: %w", m.opts.TrackListPath, err)
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("loaded %d track titles", len(titles)), Level: LevelVerbose})
	}
	ResolveTitles(tracks, titles)

	cover, err := m.loadCover()
	if err != nil {
		return nil, err
	}

	album := &model.Album{
		Artist:        m.opts.Artist,
		Date:          m.opts.Date,
		Venue:         m.opts.Venue,
		Location:      m.opts.Location,
		Genre:         m.opts.Genre,
		TitleOverride: m.opts.AlbumTitle,
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("using album title: %s", album.Title()), Level: LevelInfo})

	records := make([]model.TagRecord, len(tracks))
	for i := range tracks {
		records[i] = model.TagRecord{
			Album:       album,
			Track:       tracks[i],
			TotalTracks: len(tracks),
			Cover:       cover,
		}
	}

	m.plan = &Plan{Album: album, Tracks: tracks, Records: records, Cover: cover}
	atomic.StoreInt32(&m.totalFiles, int32(len(tracks)))
	atomic.StoreInt32(&m.writtenFiles, 0)

	return m.plan, nil
}

// loadCover loads and optionally transforms the cover image.
//
// The cover is validated eagerly even when embedding is disabled, so a
// bad -cover argument fails before any file is written.
func (m *Manager) loadCover() (*model.Cover, error) {
	if m.opts.CoverPath == "" {
		return nil, nil
	}

	cover, warning, err := ioutils.LoadCover(m.opts.CoverPath)
	if err != nil {
		return nil, fmt.Errorf("cover image not readable: %s: %w", m.opts.CoverPath, err)
	}
	if warning != "" {
		m.progress(ProgressEvent{Message: warning, Level: LevelWarning})
	}
	if !m.settings.EmbedCoverArt {
		return nil, nil
	}

	if m.settings.CoverArtResize {
		data, err := m.images.ResizeImage(cover.Data, m.settings.CoverArtMaxSize, m.settings.CoverArtMaxSize)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("cover resize failed, embedding original: %v", err), Level: LevelWarning})
		} else {
			cover.Data = data
			cover.MIMEType = "image/jpeg"
		}
	}
	if m.settings.ConvertCoverArtToJPG && cover.MIMEType != "image/jpeg" {
		data, err := m.images.ConvertToJPEG(cover.Data)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("cover conversion failed, embedding original: %v", err), Level: LevelWarning})
		} else {
			cover.Data = data
			cover.MIMEType = "image/jpeg"
		}
	}

	return cover, nil
}

// Run writes tags into every planned file, strictly sequentially.
//
// Plan is invoked first if it has not run yet. The first write failure
// aborts the run: files tagged before the failure keep their new tags,
// nothing is rolled back, and no further files are touched. onTrack, if
// non-nil, is called after each successful write with (written, total).
func (m *Manager) Run(ctx context.Context, onTrack func(written, total int)) error {
	if m.plan == nil {
		if _, err := m.Plan(ctx); err != nil {
			return err
		}
	}

	total := len(m.plan.Records)
	for i := range m.plan.Records {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec := &m.plan.Records[i]
		if err := m.tagger.WriteRecord(rec); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("error writing %s: %v", filepath.Base(rec.Track.Path), err), Level: LevelError})
			return fmt.Errorf("writing tags to %s: %w", rec.Track.Path, err)
		}

		atomic.AddInt32(&m.writtenFiles, 1)
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("%s → track %d/%d, disc %d, title: %s",
				filepath.Base(rec.Track.Path), rec.Track.TrackNumber, total, rec.Track.DiscNumber, rec.Track.Title),
			Level: LevelVerbose,
		})
		if onTrack != nil {
			onTrack(i+1, total)
		}
	}

	if m.settings.CreatePlaylist {
		m.writePlaylist()
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("tagged %d files as %q", total, m.plan.Album.Title()), Level: LevelSuccess})
	return nil
}

// GetProgress returns the current write progress.
func (m *Manager) GetProgress() (written, total int32) {
	return atomic.LoadInt32(&m.writtenFiles), atomic.LoadInt32(&m.totalFiles)
}

// writePlaylist drops an M3U playlist of the merged album into the root.
// Playlist failures never fail the run; the tags are already written.
func (m *Manager) writePlaylist() {
	name := strings.ReplaceAll(m.settings.PlaylistFileNameFormat, "{album}",
		ioutils.SanitizeFileName(m.plan.Album.Title()))
	path := filepath.Join(m.opts.Root, name+".m3u")

	content := audio.NewPlaylistCreator(m.settings.M3UExtended).CreatePlaylist(m.plan.Album, m.plan.Tracks)
	if err := ioutils.WriteFile(path, []byte(content)); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("error creating playlist: %v", err), Level: LevelWarning})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("created playlist %s", path), Level: LevelSuccess})
}

// ResolveTitles assigns each track its final title.
//
// Supplied titles are consumed purely by position against the flattened
// sequence, independent of disc boundaries: titles[0] goes to the first
// track, titles[1] to the second, and so on. Tracks beyond the supplied
// list fall back to their own file name with the extension stripped; a
// short list is not an error.
func ResolveTitles(tracks []model.Track, titles []string) {
	for i := range tracks {
		if i < len(titles) {
			tracks[i].Title = titles[i]
		} else {
			tracks[i].Title = tracks[i].Stem()
		}
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
