package sim

import (
	"errors"
	"fmt"
)

// Track identifies a cylinder position on the simulated disk.
type Track int

// ErrInvalidGeometry is returned when a disk geometry is constructed with a
// negative maximum track.
var ErrInvalidGeometry = errors.New("invalid disk geometry")

// DiskGeometry describes the valid track range of the simulated disk.
// Tracks run from 0 to MaxTrack inclusive. A geometry is immutable for the
// lifetime of one simulation run.
type DiskGeometry struct {
	MaxTrack Track
}

// NewDiskGeometry creates a DiskGeometry for tracks [0, maxTrack].
func NewDiskGeometry(maxTrack int) (DiskGeometry, error) {
	if maxTrack < 0 {
		return DiskGeometry{}, fmt.Errorf("%w: max track %d is negative", ErrInvalidGeometry, maxTrack)
	}
	return DiskGeometry{MaxTrack: Track(maxTrack)}, nil
}

// Contains reports whether t lies inside the geometry's track range.
func (g DiskGeometry) Contains(t Track) bool {
	return t >= 0 && t <= g.MaxTrack
}

// seekDistance is the absolute track distance between two head positions.
func seekDistance(a, b Track) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
