package sim

import (
	"errors"
	"testing"
)

func TestParseStrategyKind(t *testing.T) {
	cases := []struct {
		in      string
		want    StrategyKind
		wantErr bool
	}{
		{"fcfs", FCFS, false},
		{"FCFS", FCFS, false},
		{"sstf", SSTF, false},
		{"scan", SCAN, false},
		{"cscan", CSCAN, false},
		{"c-scan", CSCAN, false},
		{"C-SCAN", CSCAN, false},
		{"look", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := ParseStrategyKind(c.in)
		if c.wantErr {
			if !errors.Is(err, ErrUnknownStrategy) {
				t.Errorf("ParseStrategyKind(%q): got %v, want ErrUnknownStrategy", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStrategyKind(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseStrategyKind(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestNewStrategy_AllKinds(t *testing.T) {
	for _, kind := range AllStrategies() {
		strat, err := NewStrategy(kind)
		if err != nil {
			t.Errorf("NewStrategy(%s): %v", kind, err)
		}
		if strat == nil {
			t.Errorf("NewStrategy(%s): nil strategy", kind)
		}
	}
}

func TestNewStrategy_Unknown(t *testing.T) {
	_, err := NewStrategy("look")
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("got %v, want ErrUnknownStrategy", err)
	}
}

func TestAllStrategies_CanonicalOrder(t *testing.T) {
	want := []StrategyKind{FCFS, SSTF, SCAN, CSCAN}
	got := AllStrategies()
	if len(got) != len(want) {
		t.Fatalf("AllStrategies returned %d kinds", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllStrategies[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
