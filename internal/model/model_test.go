package model

import "testing"

func TestAlbum_Title_Derived(t *testing.T) {
	tests := []struct {
		name  string
		album Album
		want  string
	}{
		{
			name: "all fields",
			album: Album{
				Artist:   "The Example Band",
				Date:     "2024-09-15",
				Venue:    "Red Rocks Amphitheatre",
				Location: "Boulder, CO",
			},
			want: "The Example Band – 2024-09-15 – Red Rocks Amphitheatre – Boulder, CO",
		},
		{
			name: "no venue",
			album: Album{
				Artist:   "The Example Band",
				Date:     "2024-09-15",
				Location: "Boulder, CO",
			},
			want: "The Example Band – 2024-09-15 – Boulder, CO",
		},
		{
			name: "no location",
			album: Album{
				Artist: "The Example Band",
				Date:   "2024-09-15",
				Venue:  "Red Rocks Amphitheatre",
			},
			want: "The Example Band – 2024-09-15 – Red Rocks Amphitheatre",
		},
		{
			name:  "artist and date only",
			album: Album{Artist: "The Example Band", Date: "2024-09-15"},
			want:  "The Example Band – 2024-09-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.album.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAlbum_Title_Override(t *testing.T) {
	album := Album{
		Artist:        "The Example Band",
		Date:          "2024-09-15",
		Venue:         "Red Rocks Amphitheatre",
		TitleOverride: "Live 2024",
	}

	if got := album.Title(); got != "Live 2024" {
		t.Errorf("Title() = %q, want the explicit title", got)
	}
}

func TestAlbum_Title_Deterministic(t *testing.T) {
	album := Album{Artist: "Artist", Date: "2024-01-01", Venue: "Venue"}

	first := album.Title()
	second := album.Title()
	if first != second {
		t.Errorf("Title() not deterministic: %q vs %q", first, second)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/cd1/02 jam.aiff", "02 jam"},
		{"intro.aiff", "intro"},
		{"no-extension", "no-extension"},
		{"/a/b/dots.in.name.aiff", "dots.in.name"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Stem(tt.path); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
