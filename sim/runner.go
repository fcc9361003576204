package sim

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Result pairs the schedule a strategy produced with the metrics derived
// from it, keyed by the strategy that made it.
type Result struct {
	Strategy StrategyKind
	Schedule Schedule
	Metrics  Metrics
}

// Runner orchestrates one simulation: input validation, strategy dispatch,
// and metrics computation. SeekTimePerTrack scales seek distance into time
// units; the zero value means 1.0. A Runner holds no state across runs.
type Runner struct {
	SeekTimePerTrack float64
}

// Run executes one strategy over the given input. Inputs are revalidated so
// that the strategies themselves are total functions: a request set built by
// hand with out-of-range tracks fails here with ErrInvalidTrack before any
// scheduling begins, and an unrecognized kind fails with ErrUnknownStrategy.
func (r Runner) Run(geom DiskGeometry, rs RequestSet, kind StrategyKind) (Result, error) {
	g, err := NewDiskGeometry(int(geom.MaxTrack))
	if err != nil {
		return Result{}, err
	}
	set, err := NewRequestSet(g, rs.InitialHead, rs.Direction, rs.Tracks)
	if err != nil {
		return Result{}, err
	}
	strat, err := NewStrategy(kind)
	if err != nil {
		return Result{}, err
	}

	logrus.Debugf("run: strategy=%s head=%d requests=%d maxTrack=%d",
		kind, set.InitialHead, len(set.Tracks), g.MaxTrack)
	sched := strat.Schedule(g, set)
	return Result{
		Strategy: kind,
		Schedule: sched,
		Metrics:  ComputeMetrics(sched, r.SeekTimePerTrack),
	}, nil
}

// RunAll executes every strategy over the same input, one goroutine per
// strategy. The runs share nothing, so no coordination beyond the join is
// needed; results come back in AllStrategies order regardless of completion
// order.
func (r Runner) RunAll(geom DiskGeometry, rs RequestSet) ([]Result, error) {
	kinds := AllStrategies()
	results := make([]Result, len(kinds))
	errs := make([]error, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind StrategyKind) {
			defer wg.Done()
			results[i], errs[i] = r.Run(geom, rs, kind)
		}(i, kind)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// RunSimulation runs one strategy with the default unit seek time.
func RunSimulation(geom DiskGeometry, rs RequestSet, kind StrategyKind) (Result, error) {
	return Runner{}.Run(geom, rs, kind)
}
