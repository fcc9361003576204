package sim

// MoveKind classifies a single head transition in a schedule.
type MoveKind string

const (
	// MoveService is a hop that ends at a serviced request.
	MoveService MoveKind = "service"
	// MoveBoundary is a SCAN/C-SCAN hop to the edge of the disk that
	// services nothing. The travel still costs seek distance.
	MoveBoundary MoveKind = "boundary"
	// MoveWrap is the C-SCAN jump from one edge to the opposite edge.
	MoveWrap MoveKind = "wrap"
)

// Move records one head transition. The per-move records make boundary and
// wrap cost accounting auditable: the distances always sum to the schedule's
// total seek.
type Move struct {
	From     Track
	To       Track
	Distance int
	Kind     MoveKind
}

// Schedule is the deterministic output of one strategy run.
//
// Order is the service order and is always a permutation of the input tracks
// (duplicates preserved). HeadPath starts at the initial head position and
// then lists every position the head stops at, including SCAN/C-SCAN edge
// visits that service nothing, so len(HeadPath) >= len(Order)+1.
type Schedule struct {
	Order    []Track
	HeadPath []Track
	Moves    []Move
}

// Head returns the final head position, or the initial position for an
// empty schedule.
func (s Schedule) Head() Track {
	return s.HeadPath[len(s.HeadPath)-1]
}

// scheduleBuilder accumulates a schedule while tracking the current head
// position. All four strategies emit their output through it.
type scheduleBuilder struct {
	head Track
	out  Schedule
}

func newScheduleBuilder(head Track, requests int) *scheduleBuilder {
	b := &scheduleBuilder{head: head}
	b.out.Order = make([]Track, 0, requests)
	b.out.HeadPath = append(make([]Track, 0, requests+1), head)
	return b
}

// service moves the head to t and records it as a serviced request.
func (b *scheduleBuilder) service(t Track) {
	b.move(t, MoveService)
	b.out.Order = append(b.out.Order, t)
}

// visit moves the head to t without servicing anything (edge touch or wrap).
func (b *scheduleBuilder) visit(t Track, kind MoveKind) {
	b.move(t, kind)
}

func (b *scheduleBuilder) move(t Track, kind MoveKind) {
	b.out.Moves = append(b.out.Moves, Move{
		From:     b.head,
		To:       t,
		Distance: seekDistance(b.head, t),
		Kind:     kind,
	})
	b.out.HeadPath = append(b.out.HeadPath, t)
	b.head = t
}

func (b *scheduleBuilder) build() Schedule {
	return b.out
}
