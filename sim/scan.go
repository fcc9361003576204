package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// SCANStrategy is the elevator algorithm: the head sweeps monotonically from
// the initial position to the edge of the disk in the request set's
// direction, servicing every pending request it passes, then reverses and
// sweeps back over whatever remains. The edge is always touched when at
// least one request exists, and the travel to it counts toward total seek
// even though it services nothing.
type SCANStrategy struct{}

func (s *SCANStrategy) Schedule(geom DiskGeometry, rs RequestSet) Schedule {
	return sweep(geom, rs, false)
}

// CSCANStrategy sweeps like SCAN, but at the edge the head jumps to the
// opposite edge and resumes servicing in the original direction. The jump is
// a single MaxTrack-distance transition in the head path and services
// nothing.
type CSCANStrategy struct{}

func (c *CSCANStrategy) Schedule(geom DiskGeometry, rs RequestSet) Schedule {
	return sweep(geom, rs, true)
}

// sweepState drives the shared SCAN/C-SCAN pass. Keeping the edge touch and
// the wrap as explicit states keeps their seek accounting auditable.
type sweepState int

const (
	movingForward sweepState = iota
	atBoundary
	movingWrap
	sweepDone
)

// sweep runs one SCAN (circular=false) or C-SCAN (circular=true) pass.
func sweep(geom DiskGeometry, rs RequestSet, circular bool) Schedule {
	b := newScheduleBuilder(rs.InitialHead, len(rs.Tracks))
	if len(rs.Tracks) == 0 {
		return b.build()
	}

	forward, far := splitSweepLegs(rs, circular)
	nearEdge, farEdge := sweepEdges(geom, rs.Direction)

	leg := forward
	firstLeg := true
	for state := movingForward; state != sweepDone; {
		switch state {
		case movingForward:
			for _, t := range leg {
				b.service(t)
			}
			if firstLeg {
				firstLeg = false
				state = atBoundary
			} else {
				state = sweepDone
			}
		case atBoundary:
			// The head travels all the way to the edge even when no
			// request sits there. A serviced request already at the edge
			// makes the extra hop redundant.
			if b.head != nearEdge {
				b.visit(nearEdge, MoveBoundary)
			}
			switch {
			case len(far) == 0:
				state = sweepDone
			case circular:
				state = movingWrap
			default:
				logrus.Debugf("scan: reversing at edge %d, %d requests remain", nearEdge, len(far))
				leg = far
				state = movingForward
			}
		case movingWrap:
			logrus.Debugf("cscan: wrapping %d -> %d, %d requests remain", b.head, farEdge, len(far))
			b.visit(farEdge, MoveWrap)
			leg = far
			state = movingForward
		}
	}
	return b.build()
}

// splitSweepLegs partitions the pending tracks into the leg swept first
// (toward the edge in rs.Direction, inclusive of the head position) and the
// far leg, each ordered the way the head will pass over them. SCAN sweeps
// the far leg back toward the head; C-SCAN resumes from the opposite edge in
// the original direction.
func splitSweepLegs(rs RequestSet, circular bool) (forward, far []Track) {
	up := rs.Direction == DirectionUp
	for _, t := range rs.Tracks {
		onForwardSide := t >= rs.InitialHead
		if !up {
			onForwardSide = t <= rs.InitialHead
		}
		if onForwardSide {
			forward = append(forward, t)
		} else {
			far = append(far, t)
		}
	}
	sort.Slice(forward, func(i, j int) bool {
		if up {
			return forward[i] < forward[j]
		}
		return forward[i] > forward[j]
	})
	farAscending := up == circular
	sort.Slice(far, func(i, j int) bool {
		if farAscending {
			return far[i] < far[j]
		}
		return far[i] > far[j]
	})
	return forward, far
}

// sweepEdges returns the edge reached by the initial sweep and the opposite
// edge (the C-SCAN wrap target).
func sweepEdges(geom DiskGeometry, dir Direction) (nearEdge, farEdge Track) {
	if dir == DirectionUp {
		return geom.MaxTrack, 0
	}
	return 0, geom.MaxTrack
}
