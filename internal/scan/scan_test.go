package scan

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// makeTree builds root/<folder>/<file> fixtures and returns the root.
func makeTree(t *testing.T, folders map[string][]string) string {
	t.Helper()
	root := t.TempDir()
	for folder, files := range folders {
		dir := filepath.Join(root, folder)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		for _, file := range files {
			if err := os.WriteFile(filepath.Join(dir, file), nil, 0644); err != nil {
				t.Fatal(err)
			}
		}
	}
	return root
}

func TestSplitFolderList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"cd1,cd2,bonus", []string{"cd1", "cd2", "bonus"}},
		{" cd1 , cd2 ", []string{"cd1", "cd2"}},
		{"cd1,,cd2", []string{"cd1", "cd2"}},
		{",,", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SplitFolderList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitFolderList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveFolders_SkipsMissingWithoutRenumbering(t *testing.T) {
	root := makeTree(t, map[string][]string{
		"cd1":   {"a.aiff"},
		"bonus": {"b.aiff"},
	})

	folders, warnings := ResolveFolders(root, []string{"cd1", "cd2", "bonus"})

	if len(folders) != 2 {
		t.Fatalf("got %d folders, want 2", len(folders))
	}
	if folders[0].Name != "cd1" || folders[0].Disc != 1 {
		t.Errorf("folders[0] = %+v, want cd1 disc 1", folders[0])
	}
	// The missing cd2 consumed position 2; bonus keeps position 3.
	if folders[1].Name != "bonus" || folders[1].Disc != 3 {
		t.Errorf("folders[1] = %+v, want bonus disc 3", folders[1])
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
}

func TestResolveFolders_FileIsNotAFolder(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "cd1"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	folders, warnings := ResolveFolders(root, []string{"cd1"})
	if len(folders) != 0 {
		t.Errorf("a plain file should be skipped, got %v", folders)
	}
	if len(warnings) != 1 {
		t.Errorf("expected a warning for the non-directory entry")
	}
}

func TestCollectFiles(t *testing.T) {
	root := makeTree(t, map[string][]string{
		"cd1": {"02 two.aiff", "01 one.aiff", "cover.jpg", "notes.txt", "demo.AIFF"},
	})

	folder := Folder{Name: "cd1", Path: filepath.Join(root, "cd1"), Disc: 1}
	files, err := CollectFiles(folder, ".aiff", SortAlpha)
	if err != nil {
		t.Fatalf("CollectFiles() = %v", err)
	}

	want := []string{
		filepath.Join(root, "cd1", "01 one.aiff"),
		filepath.Join(root, "cd1", "02 two.aiff"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files = %v, want %v", files, want)
	}
}

func TestCollectFiles_IgnoresSubdirectories(t *testing.T) {
	root := makeTree(t, map[string][]string{
		"cd1":        {"a.aiff"},
		"cd1/nested": {"b.aiff"},
	})

	folder := Folder{Name: "cd1", Path: filepath.Join(root, "cd1"), Disc: 1}
	files, err := CollectFiles(folder, ".aiff", SortAlpha)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Errorf("nested files must not be collected, got %v", files)
	}
}

func TestEnumerate_GlobalNumbering(t *testing.T) {
	folders := []Folder{
		{Name: "cd1", Path: "/r/cd1", Disc: 1},
		{Name: "cd2", Path: "/r/cd2", Disc: 2},
	}
	lists := [][]string{
		{"/r/cd1/01.aiff", "/r/cd1/02.aiff"},
		{"/r/cd2/01.aiff", "/r/cd2/02.aiff", "/r/cd2/03.aiff"},
	}

	tracks, err := Enumerate(folders, lists)
	if err != nil {
		t.Fatalf("Enumerate() = %v", err)
	}

	if len(tracks) != 5 {
		t.Fatalf("got %d tracks, want 5", len(tracks))
	}
	for i, track := range tracks {
		if track.TrackNumber != i+1 {
			t.Errorf("tracks[%d].TrackNumber = %d, want %d", i, track.TrackNumber, i+1)
		}
	}
	if tracks[1].DiscNumber != 1 || tracks[2].DiscNumber != 2 {
		t.Errorf("disc boundary wrong: %+v %+v", tracks[1], tracks[2])
	}
	// Disc numbers never decrease across the flattened sequence.
	for i := 1; i < len(tracks); i++ {
		if tracks[i].DiscNumber < tracks[i-1].DiscNumber {
			t.Errorf("disc numbers decreased at index %d", i)
		}
	}
}

func TestEnumerate_PreservesDiscGaps(t *testing.T) {
	folders := []Folder{
		{Name: "cd1", Disc: 1},
		{Name: "bonus", Disc: 3}, // cd2 was missing
	}
	lists := [][]string{{"/r/cd1/a.aiff"}, {"/r/bonus/b.aiff"}}

	tracks, err := Enumerate(folders, lists)
	if err != nil {
		t.Fatal(err)
	}
	if tracks[1].DiscNumber != 3 {
		t.Errorf("DiscNumber = %d, want the original position 3", tracks[1].DiscNumber)
	}
	if tracks[1].TrackNumber != 2 {
		t.Errorf("TrackNumber = %d, global numbering must stay contiguous", tracks[1].TrackNumber)
	}
}

func TestEnumerate_EmptyIsFatal(t *testing.T) {
	folders := []Folder{{Name: "cd1", Disc: 1}, {Name: "cd2", Disc: 2}}
	lists := [][]string{nil, nil}

	_, err := Enumerate(folders, lists)
	if !errors.Is(err, ErrNoFiles) {
		t.Errorf("Enumerate() error = %v, want ErrNoFiles", err)
	}
}

func TestEnumerate_EmptyFolderBetweenFullOnes(t *testing.T) {
	folders := []Folder{
		{Name: "cd1", Disc: 1},
		{Name: "cd2", Disc: 2},
		{Name: "cd3", Disc: 3},
	}
	lists := [][]string{{"/r/cd1/a.aiff"}, nil, {"/r/cd3/b.aiff"}}

	tracks, err := Enumerate(folders, lists)
	if err != nil {
		t.Fatal(err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	if tracks[1].DiscNumber != 3 || tracks[1].TrackNumber != 2 {
		t.Errorf("tracks[1] = %+v, want disc 3 track 2", tracks[1])
	}
}
