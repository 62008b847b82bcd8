package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"

	"aiffmerge/internal/config"
	"aiffmerge/internal/merge"
	"aiffmerge/internal/scan"
)

func main() {
	// Command line flags
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
		playlistFlag  = flag.Bool("playlist", false, "Write an M3U playlist into the root")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag    = flag.Bool("dry-run", false, "Plan and report without writing any tags")
	)

	flag.Parse()

	// Root may also be given as the positional argument
	root := *rootFlag
	if root == "" && flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	if root == "" || *dirsFlag == "" || *artistFlag == "" || *dateFlag == "" {
		fmt.Println("AIFF Merge - Tag folders of AIFF files as one album")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  aiffmerge -root <dir> -dirs <cd1,cd2,...> -artist <name> -date <date> [options]")
		fmt.Println("  aiffmerge -dirs <cd1,cd2,...> -artist <name> -date <date> [options] <dir>")
		fmt.Println()
		fmt.Println("For interactive mode, use: aiffmerge-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *playlistFlag {
		settings.CreatePlaylist = true
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

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := merge.NewManager(settings, opts, func(event merge.ProgressEvent) {
		if event.Level == merge.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case merge.LevelError:
			prefix = "❌ "
		case merge.LevelWarning:
			prefix = "⚠️  "
		case merge.LevelSuccess:
			prefix = "✅ "
		case merge.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🎵 AIFF Merge")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	plan, err := manager.Plan(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		fmt.Println("\n[Dry run - no tags written]")
		for _, track := range plan.Tracks {
			fmt.Printf("  %3d/%d  disc %d  %s\n",
				track.TrackNumber, len(plan.Tracks), track.DiscNumber, track.Title)
		}
		return
	}

	// Write tags
	fmt.Println("\n📝 Writing tags...")
	fmt.Println()

	bar := progressbar.Default(int64(len(plan.Tracks)))
	err = manager.Run(ctx, func(written, total int) {
		bar.Add(1)
	})
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nRun cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error writing tags: %v\n", err)
		os.Exit(1)
	}

	written, total := manager.GetProgress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Tagged %d/%d files as %q\n", written, total, plan.Album.Title())
}
