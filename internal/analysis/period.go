package analysis

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/san-kum/lifesim/internal/life"
)

// DominantPeriod returns the period, in samples, of the strongest non-DC
// component of series. ok is false when the series is too short or flat.
func DominantPeriod(series []float64) (period float64, ok bool) {
	if len(series) < 4 {
		return 0, false
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centered := make([]float64, len(series))
	for i, v := range series {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)

	maxPower := 1e-9
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0, false
	}
	return float64(len(series)) / float64(maxIdx), true
}

// Hash fingerprints the shape and cells of g.
func Hash(g *life.Grid) uint64 {
	h := fnv.New64a()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(g.Rows()))
	binary.LittleEndian.PutUint64(dims[8:], uint64(g.Cols()))
	h.Write(dims[:])
	h.Write(g.Cells())
	return h.Sum64()
}

// DetectCycle finds the first index whose fingerprint already appeared.
// start is the earlier index and period the distance between them.
func DetectCycle(hashes []uint64) (start, period int, ok bool) {
	seen := make(map[uint64]int, len(hashes))
	for i, h := range hashes {
		if j, dup := seen[h]; dup {
			return j, i - j, true
		}
		seen[h] = i
	}
	return 0, 0, false
}

// CycleTracker records a fingerprint per generation. Seed the first entry
// with Observe before running so generation 0 is included.
type CycleTracker struct {
	hashes []uint64
}

func NewCycleTracker() *CycleTracker {
	return &CycleTracker{hashes: make([]uint64, 0, 256)}
}

// Observe records g as the next generation.
func (c *CycleTracker) Observe(g *life.Grid) {
	c.hashes = append(c.hashes, Hash(g))
}

func (c *CycleTracker) OnGeneration(g *life.Grid, generation int) {
	c.Observe(g)
}

func (c *CycleTracker) Cycle() (start, period int, ok bool) {
	return DetectCycle(c.hashes)
}

func (c *CycleTracker) Reset() {
	c.hashes = c.hashes[:0]
}
