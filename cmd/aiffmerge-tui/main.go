package main

import (
	"flag"
	"fmt"
	"os"

	"aiffmerge/internal/config"
	"aiffmerge/internal/merge"
	"aiffmerge/internal/scan"
	"aiffmerge/internal/tui"
)

func main() {
	var (
		rootFlag      = flag.String("root", "", "Directory containing the source folders")
		dirsFlag      = flag.String("dirs", "", "Comma-separated folder names, in disc order")
		artistFlag    = flag.String("artist", "", "Artist name")
		dateFlag      = flag.String("date", "", "Recording date, e.g. 2024-09-15")
		venueFlag     = flag.String("venue", "", "Venue name (optional)")
		locationFlag  = flag.String("location", "", "Location, e.g. city (optional)")
		genreFlag     = flag.String("genre", "", "Genre (optional)")
		albumFlag     = flag.String("album", "", "Album title override (optional)")
		coverFlag     = flag.String("cover", "", "Cover image to embed, JPEG or PNG (optional)")
		tracklistFlag = flag.String("tracklist", "", "Text file with one track title per line (optional)")
		sortFlag      = flag.String("sort", "", "In-folder file order: alpha or numeric (default from config)")
		configFlag    = flag.String("config", "", "Path to config file")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	root := *rootFlag
	if root == "" && flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	if root == "" || *dirsFlag == "" || *artistFlag == "" || *dateFlag == "" {
		fmt.Println("AIFF Merge (interactive) - Tag folders of AIFF files as one album")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  aiffmerge-tui -root <dir> -dirs <cd1,cd2,...> -artist <name> -date <date> [options]")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	sortMode := *sortFlag
	if sortMode == "" {
		sortMode = settings.SortMode
	}

	opts := merge.Options{
		Root:          root,
		FolderNames:   scan.SplitFolderList(*dirsFlag),
		Artist:        *artistFlag,
		Date:          *dateFlag,
		Venue:         *venueFlag,
		Location:      *locationFlag,
		Genre:         *genreFlag,
		AlbumTitle:    *albumFlag,
		CoverPath:     *coverFlag,
		TrackListPath: *tracklistFlag,
		SortMode:      scan.ParseSortMode(sortMode),
	}

	if err := tui.Run(settings, opts, *verboseFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
