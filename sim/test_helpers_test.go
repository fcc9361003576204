package sim

import "testing"

// referenceInput is the classic textbook workload used across strategy
// tests: maxTrack 199, head 53, eight pending requests.
func referenceInput(t *testing.T, dir Direction) (DiskGeometry, RequestSet) {
	t.Helper()
	geom, err := NewDiskGeometry(199)
	if err != nil {
		t.Fatalf("NewDiskGeometry: %v", err)
	}
	rs, err := NewRequestSet(geom, 53, dir, []Track{98, 183, 37, 122, 14, 124, 65, 67})
	if err != nil {
		t.Fatalf("NewRequestSet: %v", err)
	}
	return geom, rs
}

func smallInput(t *testing.T, maxTrack int, head Track, dir Direction, tracks []Track) (DiskGeometry, RequestSet) {
	t.Helper()
	geom, err := NewDiskGeometry(maxTrack)
	if err != nil {
		t.Fatalf("NewDiskGeometry: %v", err)
	}
	rs, err := NewRequestSet(geom, head, dir, tracks)
	if err != nil {
		t.Fatalf("NewRequestSet: %v", err)
	}
	return geom, rs
}

func tracksEqual(a, b []Track) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// multisetOf counts occurrences per track, for permutation checks that must
// survive duplicates.
func multisetOf(tracks []Track) map[Track]int {
	counts := make(map[Track]int, len(tracks))
	for _, t := range tracks {
		counts[t]++
	}
	return counts
}
