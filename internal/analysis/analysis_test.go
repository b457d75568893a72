package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/sim"
)

func TestPowerSpectrumPeak(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2+1 {
		t.Fatalf("expected %d bins, got %d", n/2+1, len(ps))
	}

	peak := 0
	for i := range ps {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 4 {
		t.Errorf("expected peak at bin 4, got %d", peak)
	}
}

func TestPowerSpectrum_Empty(t *testing.T) {
	if PowerSpectrum(nil) != nil {
		t.Error("empty input should give no spectrum")
	}
}

func TestDominantPeriod(t *testing.T) {
	series := make([]float64, 64)
	for i := range series {
		if (i/4)%2 == 0 {
			series[i] = 10
		} else {
			series[i] = 4
		}
	}

	period, ok := DominantPeriod(series)
	if !ok {
		t.Fatal("expected a period")
	}
	if math.Abs(period-8) > 1e-9 {
		t.Errorf("expected period 8, got %f", period)
	}
}

func TestDominantPeriod_Flat(t *testing.T) {
	if _, ok := DominantPeriod([]float64{3, 3, 3, 3, 3, 3}); ok {
		t.Error("flat series should have no period")
	}
	if _, ok := DominantPeriod([]float64{1, 2}); ok {
		t.Error("short series should have no period")
	}
}

func TestHash(t *testing.T) {
	a := life.MustNew(4, 4)
	b := life.MustNew(4, 4)
	if Hash(a) != Hash(b) {
		t.Error("equal grids should hash equally")
	}

	b.Set(1, 1, true)
	if Hash(a) == Hash(b) {
		t.Error("different grids should hash differently")
	}

	if Hash(life.MustNew(2, 8)) == Hash(life.MustNew(8, 2)) {
		t.Error("shape should be part of the hash")
	}
}

func TestDetectCycle(t *testing.T) {
	tests := []struct {
		name   string
		hashes []uint64
		start  int
		period int
		ok     bool
	}{
		{"none", []uint64{1, 2, 3}, 0, 0, false},
		{"fixed point", []uint64{5, 7, 7}, 1, 1, true},
		{"period two", []uint64{1, 2, 3, 2, 3}, 1, 2, true},
		{"empty", nil, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, period, ok := DetectCycle(tt.hashes)
			if ok != tt.ok || start != tt.start || period != tt.period {
				t.Errorf("DetectCycle = (%d, %d, %v), want (%d, %d, %v)", start, period, ok, tt.start, tt.period, tt.ok)
			}
		})
	}
}

func TestCycleTrackerBlinker(t *testing.T) {
	g, err := life.FromAlive(5, 5, []life.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}})
	if err != nil {
		t.Fatal(err)
	}

	s := sim.New(g, life.Step)
	tracker := NewCycleTracker()
	tracker.Observe(s.Grid())
	s.AddObserver(tracker)

	if _, err := s.Run(context.Background(), sim.Config{Generations: 6}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	start, period, ok := tracker.Cycle()
	if !ok || start != 0 || period != 2 {
		t.Errorf("expected cycle (0, 2), got (%d, %d, %v)", start, period, ok)
	}

	tracker.Reset()
	if _, _, ok := tracker.Cycle(); ok {
		t.Error("expected no cycle after reset")
	}
}
