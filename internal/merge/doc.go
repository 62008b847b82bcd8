// Package merge orchestrates tagging a set of source folders into one
// logically unified album.
//
// The Manager is the core component, coordinating the whole run in two
// strictly separated phases:
//
//  1. Plan: resolve folders to disc numbers, collect and sort the audio
//     files, assign global track numbers, load the optional track-title
//     list and cover image, and derive the album title. Nothing on disk
//     is modified.
//  2. Run: rewrite every planned file's ID3 tags sequentially, then
//     optionally write an M3U playlist into the root.
//
// The two-phase split exists so that the total track count is known
// before the first write: every file's TRCK frame carries the same
// "current/total" denominator.
//
// Progress is reported through a callback:
//
//	manager := merge.NewManager(settings, opts, func(e merge.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	if _, err := manager.Plan(ctx); err != nil {
//	    // nothing was written
//	}
//	err := manager.Run(ctx, nil)
package merge
