package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Folder is one resolved source directory with its disc position.
type Folder struct {
	// Name is the folder name as supplied by the user.
	Name string

	// Path is the resolved absolute or root-relative directory path.
	Path string

	// Disc is the 1-based position of Name in the original supplied
	// list. Positions are never renumbered: a skipped folder still
	// consumes its position, so later discs keep their numbers.
	Disc int
}

// SplitFolderList parses the comma-separated folder argument.
//
// Entries are trimmed and empty entries dropped, so "cd1, cd2,,bonus"
// yields ["cd1", "cd2", "bonus"].
func SplitFolderList(arg string) []string {
	var names []string
	for _, part := range strings.Split(arg, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

// ResolveFolders maps each name, in order, to a subdirectory of root.
//
// Each name's disc number is its 1-based position in names. Entries that
// do not exist or are not directories are excluded and reported in the
// returned warnings; they never fail the run. The warning keeps the run
// going with whatever folders remain.
func ResolveFolders(root string, names []string) (folders []Folder, warnings []string) {
	for i, name := range names {
		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			warnings = append(warnings, fmt.Sprintf("skipping missing folder: %s", path))
			continue
		}
		folders = append(folders, Folder{Name: name, Path: path, Disc: i + 1})
	}
	return folders, warnings
}

// CollectFiles lists the folder's matching files in deterministic order.
//
// Only files directly inside the folder are considered (no recursion),
// and only those whose extension matches ext exactly. Match is
// case-sensitive: ext should be the lowercase extension including the
// dot, e.g. ".aiff". The result is sorted with the given mode.
//
// An empty result is valid; whether that is fatal is decided by the
// caller once every folder has been collected.
func CollectFiles(folder Folder, ext string, mode SortMode) ([]string, error) {
	entries, err := os.ReadDir(folder.Path)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ext {
			continue
		}
		names = append(names, entry.Name())
	}

	sortFiles(mode, names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(folder.Path, name)
	}
	return paths, nil
}
