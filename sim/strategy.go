package sim

import (
	"errors"
	"fmt"
	"strings"
)

// StrategyKind names one of the supported scheduling algorithms.
type StrategyKind string

const (
	FCFS  StrategyKind = "fcfs"
	SSTF  StrategyKind = "sstf"
	SCAN  StrategyKind = "scan"
	CSCAN StrategyKind = "cscan"
)

// ErrUnknownStrategy is returned when a strategy selector does not name one
// of the supported algorithms.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy computes the deterministic service order for a request set.
// Implementations must not mutate their inputs, must service every element
// of the request set exactly once, and must never move the head outside the
// geometry's track range. Identical inputs always produce identical output.
type Strategy interface {
	Schedule(geom DiskGeometry, rs RequestSet) Schedule
}

// ValidStrategies is the set of recognized strategy names.
var ValidStrategies = map[StrategyKind]bool{FCFS: true, SSTF: true, SCAN: true, CSCAN: true}

// AllStrategies lists the strategies in canonical comparison order.
func AllStrategies() []StrategyKind {
	return []StrategyKind{FCFS, SSTF, SCAN, CSCAN}
}

// ParseStrategyKind maps a user-supplied algorithm name to a StrategyKind.
// Matching is case-insensitive; "c-scan" is accepted as an alias for cscan.
func ParseStrategyKind(s string) (StrategyKind, error) {
	name := strings.ToLower(s)
	if name == "c-scan" {
		name = string(CSCAN)
	}
	kind := StrategyKind(name)
	if !ValidStrategies[kind] {
		return "", fmt.Errorf("%w: %q (valid: fcfs, sstf, scan, cscan)", ErrUnknownStrategy, s)
	}
	return kind, nil
}

// NewStrategy creates a Strategy by kind.
func NewStrategy(kind StrategyKind) (Strategy, error) {
	switch kind {
	case FCFS:
		return &FCFSStrategy{}, nil
	case SSTF:
		return &SSTFStrategy{}, nil
	case SCAN:
		return &SCANStrategy{}, nil
	case CSCAN:
		return &CSCANStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: fcfs, sstf, scan, cscan)", ErrUnknownStrategy, kind)
	}
}
