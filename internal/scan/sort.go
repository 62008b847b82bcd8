package scan

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// SortMode selects how files are ordered inside one folder.
//
// The two modes cover the common naming schemes for ripped or taped sets:
//   - SortAlpha: plain case-insensitive filename comparison
//   - SortNumeric: files with a leading number first, by numeric value,
//     then unnumbered files alphabetically among themselves
//
// Each mode is a pure function from filename to sort key, so ordering is
// total and deterministic for any folder contents.
type SortMode int

const (
	// SortAlpha sorts by case-insensitive full filename.
	SortAlpha SortMode = iota

	// SortNumeric sorts by leading integer (if any), then filename.
	// "2-song.aiff" comes before "10-track.aiff"; "intro.aiff" sorts
	// after both because it carries no number.
	SortNumeric
)

// ParseSortMode maps a mode name to a SortMode.
//
// Recognized values are "alpha" and "numeric". Anything else silently
// falls back to SortAlpha, mirroring how an unset mode behaves.
func ParseSortMode(s string) SortMode {
	if s == "numeric" {
		return SortNumeric
	}
	return SortAlpha
}

// String returns the mode's command-line name.
func (m SortMode) String() string {
	if m == SortNumeric {
		return "numeric"
	}
	return "alpha"
}

// leadingNumber matches the first contiguous digit run in a file stem,
// allowing non-digit prefix characters before it ("d1t02" → "1").
var leadingNumber = regexp.MustCompile(`^\D*(\d+)`)

// sortKey is the comparable value derived from one filename.
//
// digits is the leading integer with insignificant zeros trimmed, or ""
// when the stem has no leading number. name is the lower-cased full
// filename and breaks every tie, so equal keys imply equal names.
type sortKey struct {
	digits string
	name   string
}

// keyFor derives the sort key for a filename under the given mode.
func keyFor(mode SortMode, filename string) sortKey {
	key := sortKey{name: strings.ToLower(filename)}
	if mode != SortNumeric {
		return key
	}

	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	if m := leadingNumber.FindStringSubmatch(stem); m != nil {
		digits := strings.TrimLeft(m[1], "0")
		if digits == "" {
			digits = "0"
		}
		key.digits = digits
	}
	return key
}

// less compares two keys. Numbered entries precede unnumbered ones;
// numbers compare by value (shorter trimmed digit strings are smaller,
// equal lengths compare lexically, which is numeric order for digits).
func (k sortKey) less(other sortKey) bool {
	switch {
	case k.digits != "" && other.digits == "":
		return true
	case k.digits == "" && other.digits != "":
		return false
	case k.digits != other.digits:
		if len(k.digits) != len(other.digits) {
			return len(k.digits) < len(other.digits)
		}
		return k.digits < other.digits
	}
	return k.name < other.name
}

// sortFiles orders filenames in place using the mode's key function.
func sortFiles(mode SortMode, names []string) {
	keys := make(map[string]sortKey, len(names))
	for _, n := range names {
		keys[n] = keyFor(mode, n)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return keys[names[i]].less(keys[names[j]])
	})
}
