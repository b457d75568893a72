// Package life implements the Conway's Game of Life update engine.
//
// The package owns the grid type and the pure transition functions:
//
//   - [Grid]: fixed-size R×C array of binary cells on a torus
//   - [Step]: computes generation N+1 from generation N
//   - [NeighborCount]: toroidal 8-neighbour count, total over all integers
//   - [StepShift]: whole-grid shifted-sum variant of [Step]
//   - [StepParallel]: row-partitioned variant of [Step]
//   - [FFTStepper]: frequency-domain convolution variant of [Step]
//
// # Rule
//
// A cell is alive in the next generation iff it has exactly three live
// neighbours, or it is alive now and has exactly two:
//
//	alive' = (alive && n == 2) || n == 3
//
// # Thread Safety
//
// Step functions never mutate their input and never retain references to it,
// so a Grid may be stepped from several goroutines at once as long as nobody
// writes to it through [Grid.Set] concurrently. An [FFTStepper] caches
// buffers and belongs to one goroutine.
package life
