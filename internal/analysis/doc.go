// Package analysis characterises finished or running Life simulations.
//
//   - [PowerSpectrum]: real-FFT magnitude spectrum of a series
//   - [DominantPeriod]: strongest oscillation period in a population history
//   - [Hash]: FNV-1a fingerprint of a grid
//   - [DetectCycle]: first exact repeat in a sequence of fingerprints
//   - [CycleTracker]: observer that fingerprints every generation
//
// # Cycle Detection
//
// Cycle detection is built on top of the engine, not inside it:
//
//	tracker := analysis.NewCycleTracker()
//	simulator.AddObserver(tracker)
//	simulator.Run(ctx, cfg)
//	if start, period, ok := tracker.Cycle(); ok {
//	    // generation start repeats every period generations
//	}
//
// Fingerprints are 64-bit hashes, so a reported cycle is overwhelmingly
// likely but not proven; compare grids directly when certainty matters.
package analysis
