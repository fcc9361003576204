// Package sim simulates classical disk-arm scheduling algorithms — FCFS,
// SSTF, SCAN, and C-SCAN — over a caller-supplied set of track requests and
// reports the seek cost and throughput each achieves.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - geometry.go, request.go: validated value types (DiskGeometry, RequestSet)
//   - strategy.go: the Strategy interface and StrategyKind dispatch
//   - fcfs.go, sstf.go, scan.go: the four algorithms; SCAN and C-SCAN share
//     the sweep state machine in scan.go
//   - metrics.go: seek distance, total/average seek, and throughput
//   - runner.go: validation, dispatch, and the all-strategies comparison run
//
// Every run is a pure computation over an immutable input snapshot: a
// Schedule records the service order plus every head transition (including
// SCAN edge touches and the C-SCAN wrap) so the seek accounting can be
// audited move by move. Runs share no state, which is what lets RunAll
// execute the four strategies concurrently with nothing but a join.
package sim
