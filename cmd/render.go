package cmd

import (
	"fmt"
	"io"
	"strings"

	sim "github.com/ishacse88/Advance-disk-scheduling/sim"
)

// printSchedule writes the service order of one result as a table, one row
// per head movement. Edge touches and the C-SCAN wrap show up as rows that
// service nothing, so the seek column always sums to the total.
func printSchedule(res sim.Result) {
	fmt.Printf("=== %s Schedule ===\n", strings.ToUpper(string(res.Strategy)))
	fmt.Printf("%-6s %8s %8s %8s  %s\n", "Step", "From", "To", "Seek", "Action")
	for i, mv := range res.Schedule.Moves {
		action := "service"
		switch mv.Kind {
		case sim.MoveBoundary:
			action = "edge touch (no service)"
		case sim.MoveWrap:
			action = "wrap jump (no service)"
		}
		fmt.Printf("%-6d %8d %8d %8d  %s\n", i+1, mv.From, mv.To, mv.Distance, action)
	}
	order := make([]string, len(res.Schedule.Order))
	for i, t := range res.Schedule.Order {
		order[i] = fmt.Sprint(t)
	}
	fmt.Printf("Service order: [%s]\n", strings.Join(order, " "))
}

// chartWidth is the number of columns the track axis is scaled onto.
const chartWidth = 60

// printHeadPathChart draws the head path as a text chart, one row per stop,
// with the track axis scaled to chartWidth columns. This is the CLI stand-in
// for a head-movement plot.
func printHeadPathChart(w io.Writer, sched sim.Schedule, geom sim.DiskGeometry) {
	fmt.Fprintln(w, "=== Head Movement ===")
	fmt.Fprintf(w, "track 0%*s\n", chartWidth+3, fmt.Sprintf("%d", geom.MaxTrack))
	for _, t := range sched.HeadPath {
		col := 0
		if geom.MaxTrack > 0 {
			col = int(t) * chartWidth / int(geom.MaxTrack)
		}
		fmt.Fprintf(w, "%5d |%s*\n", t, strings.Repeat("-", col))
	}
}
