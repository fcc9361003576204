package sim

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is the initial sweep direction for the SCAN-family strategies.
// FCFS and SSTF ignore it.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ParseDirection maps a user-supplied direction string to a Direction.
// Matching is case-insensitive; the empty string defaults to up.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(s)) {
	case "", DirectionUp:
		return DirectionUp, nil
	case DirectionDown:
		return DirectionDown, nil
	default:
		return "", fmt.Errorf("unknown direction %q (valid: up, down)", s)
	}
}

// ErrInvalidTrack is returned when the initial head position or a requested
// track lies outside the disk geometry. Out-of-range tracks are rejected,
// never clamped.
var ErrInvalidTrack = errors.New("track outside disk geometry")

// RequestSet is the immutable input to one scheduling run: the initial head
// position, the sweep direction, and the pending track requests. Tracks may
// contain duplicates; each duplicate is serviced independently. An empty
// Tracks slice is valid and yields an empty schedule.
type RequestSet struct {
	InitialHead Track
	Direction   Direction
	Tracks      []Track
}

// NewRequestSet validates head and tracks against the geometry and returns a
// RequestSet holding its own copy of tracks, so later mutation of the caller's
// slice cannot affect the run. An empty direction defaults to up.
func NewRequestSet(geom DiskGeometry, head Track, dir Direction, tracks []Track) (RequestSet, error) {
	if !geom.Contains(head) {
		return RequestSet{}, fmt.Errorf("%w: initial head %d not in [0, %d]", ErrInvalidTrack, head, geom.MaxTrack)
	}
	switch dir {
	case "":
		dir = DirectionUp
	case DirectionUp, DirectionDown:
	default:
		return RequestSet{}, fmt.Errorf("unknown direction %q (valid: up, down)", dir)
	}
	copied := make([]Track, len(tracks))
	for i, t := range tracks {
		if !geom.Contains(t) {
			return RequestSet{}, fmt.Errorf("%w: request %d not in [0, %d]", ErrInvalidTrack, t, geom.MaxTrack)
		}
		copied[i] = t
	}
	return RequestSet{InitialHead: head, Direction: dir, Tracks: copied}, nil
}
