package sim

// FCFSStrategy services requests strictly in submission order. It is the
// baseline the other strategies are compared against and has no tie-breaking
// ambiguity by construction.
type FCFSStrategy struct{}

func (f *FCFSStrategy) Schedule(_ DiskGeometry, rs RequestSet) Schedule {
	b := newScheduleBuilder(rs.InitialHead, len(rs.Tracks))
	for _, t := range rs.Tracks {
		b.service(t)
	}
	return b.build()
}
