package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a complete simulation input, loadable from a YAML file.
// SeekTimePerTrack is optional; zero means the default of 1.0.
type Scenario struct {
	MaxTrack         int     `yaml:"max_track"`
	InitialHead      int     `yaml:"initial_head"`
	Direction        string  `yaml:"direction"`
	Tracks           []int   `yaml:"tracks"`
	SeekTimePerTrack float64 `yaml:"seek_time_per_track"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Build validates the scenario and produces a geometry and request set
// ready to run. Validation errors carry the same sentinels as the value
// constructors (ErrInvalidGeometry, ErrInvalidTrack).
func (sc *Scenario) Build() (DiskGeometry, RequestSet, error) {
	geom, err := NewDiskGeometry(sc.MaxTrack)
	if err != nil {
		return DiskGeometry{}, RequestSet{}, err
	}
	dir, err := ParseDirection(sc.Direction)
	if err != nil {
		return DiskGeometry{}, RequestSet{}, err
	}
	tracks := make([]Track, len(sc.Tracks))
	for i, t := range sc.Tracks {
		tracks[i] = Track(t)
	}
	rs, err := NewRequestSet(geom, Track(sc.InitialHead), dir, tracks)
	if err != nil {
		return DiskGeometry{}, RequestSet{}, err
	}
	return geom, rs, nil
}
