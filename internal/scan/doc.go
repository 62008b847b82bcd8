// Package scan discovers and orders the audio files that make up a merge.
//
// Scanning is a three-step pipeline, run once per invocation:
//
//  1. ResolveFolders expands the root path plus the ordered folder-name
//     list into concrete directories. Missing folders are skipped with a
//     warning; their list position is still consumed, so the disc numbers
//     of the remaining folders never shift.
//
//  2. CollectFiles lists each folder's matching files (non-recursive,
//     exact extension match) and orders them with a SortMode:
//
//     alpha    case-insensitive filename
//     numeric  leading integer first ("2-song" before "10-track"),
//     unnumbered files last, alphabetically
//
//  3. Enumerate flattens everything in folder order then in-folder order
//     and assigns the 1-based global track numbers the unified album is
//     built from. Zero files across all folders is the one fatal case.
//
// Example:
//
//	folders, warnings := scan.ResolveFolders(root, scan.SplitFolderList("cd1,cd2"))
//	lists := make([][]string, len(folders))
//	for i, f := range folders {
//	    lists[i], _ = scan.CollectFiles(f, ".aiff", scan.SortNumeric)
//	}
//	tracks, err := scan.Enumerate(folders, lists)
package scan
