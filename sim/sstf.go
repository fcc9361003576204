package sim

// SSTFStrategy repeatedly services the pending request closest to the
// current head position. When two candidates are equidistant, the
// lower-numbered track wins; SSTF has no canonical tie-break, so this fixed
// rule is what keeps the output deterministic.
//
// The linear scan per step is O(n^2) overall, which is fine at simulation
// scale. Starvation is not modeled: requests never age out.
type SSTFStrategy struct{}

func (s *SSTFStrategy) Schedule(_ DiskGeometry, rs RequestSet) Schedule {
	b := newScheduleBuilder(rs.InitialHead, len(rs.Tracks))
	remaining := append([]Track(nil), rs.Tracks...)
	for len(remaining) > 0 {
		best := 0
		bestDist := seekDistance(b.head, remaining[0])
		for i := 1; i < len(remaining); i++ {
			d := seekDistance(b.head, remaining[i])
			if d < bestDist || (d == bestDist && remaining[i] < remaining[best]) {
				best, bestDist = i, d
			}
		}
		b.service(remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return b.build()
}
