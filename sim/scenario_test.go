package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenario_RoundTrip(t *testing.T) {
	path := writeScenario(t, `
max_track: 199
initial_head: 53
direction: up
tracks: [98, 183, 37, 122, 14, 124, 65, 67]
seek_time_per_track: 2.5
`)
	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 199, sc.MaxTrack)
	assert.Equal(t, 53, sc.InitialHead)
	assert.Equal(t, 2.5, sc.SeekTimePerTrack)

	geom, rs, err := sc.Build()
	require.NoError(t, err)
	assert.Equal(t, Track(199), geom.MaxTrack)
	assert.Equal(t, Track(53), rs.InitialHead)
	assert.Equal(t, DirectionUp, rs.Direction)
	assert.Len(t, rs.Tracks, 8)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "tracks: [98, 183\n")
	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestScenario_BuildValidates(t *testing.T) {
	sc := &Scenario{MaxTrack: 99, InitialHead: 50, Tracks: []int{120}}
	_, _, err := sc.Build()
	assert.ErrorIs(t, err, ErrInvalidTrack)

	sc = &Scenario{MaxTrack: -1}
	_, _, err = sc.Build()
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	sc = &Scenario{MaxTrack: 199, InitialHead: 50, Direction: "sideways"}
	_, _, err = sc.Build()
	assert.Error(t, err)
}

func TestScenario_EmptyDirectionDefaultsUp(t *testing.T) {
	sc := &Scenario{MaxTrack: 199, InitialHead: 50, Tracks: []int{60}}
	_, rs, err := sc.Build()
	require.NoError(t, err)
	assert.Equal(t, DirectionUp, rs.Direction)
}
