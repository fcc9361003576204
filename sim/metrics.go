package sim

import (
	"fmt"
	"math"
)

// Metrics aggregates seek statistics for one schedule.
//
// AverageSeek is in track units. TotalSeekTime and Throughput are scaled by
// SeekTimePerTrack, so with the default factor of 1.0 Throughput is simply
// requests serviced per track of seek. When no requests were serviced,
// AverageSeek and Throughput are 0. When requests were serviced with zero
// total seek (every request already under the head), Throughput is +Inf.
type Metrics struct {
	ServedRequests   int
	SeekDistances    []int // one per transition in the head path
	TotalSeek        int
	SeekTimePerTrack float64
	TotalSeekTime    float64
	AverageSeek      float64
	Throughput       float64
}

// ComputeMetrics derives seek statistics from a schedule. seekTimePerTrack
// scales track distance into time units; values <= 0 fall back to 1.0.
func ComputeMetrics(s Schedule, seekTimePerTrack float64) Metrics {
	if seekTimePerTrack <= 0 {
		seekTimePerTrack = 1.0
	}
	m := Metrics{
		ServedRequests:   len(s.Order),
		SeekTimePerTrack: seekTimePerTrack,
	}
	if len(s.HeadPath) > 1 {
		m.SeekDistances = make([]int, 0, len(s.HeadPath)-1)
		for i := 1; i < len(s.HeadPath); i++ {
			d := seekDistance(s.HeadPath[i-1], s.HeadPath[i])
			m.SeekDistances = append(m.SeekDistances, d)
			m.TotalSeek += d
		}
	}
	m.TotalSeekTime = float64(m.TotalSeek) * seekTimePerTrack
	if m.ServedRequests == 0 {
		return m
	}
	m.AverageSeek = float64(m.TotalSeek) / float64(m.ServedRequests)
	if m.TotalSeek == 0 {
		m.Throughput = math.Inf(1)
	} else {
		m.Throughput = float64(m.ServedRequests) / m.TotalSeekTime
	}
	return m
}

// Print displays the aggregated metrics after a run.
func (m *Metrics) Print() {
	fmt.Println("=== Seek Metrics ===")
	fmt.Printf("Serviced Requests : %d\n", m.ServedRequests)
	fmt.Printf("Total Seek        : %d tracks\n", m.TotalSeek)
	if m.SeekTimePerTrack != 1.0 {
		fmt.Printf("Total Seek Time   : %.2f (at %.2f per track)\n", m.TotalSeekTime, m.SeekTimePerTrack)
	}
	fmt.Printf("Average Seek      : %.2f tracks\n", m.AverageSeek)
	fmt.Printf("Throughput        : %.4f requests per unit time\n", m.Throughput)
}
