package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/lifesim/internal/life"
)

// Kernel computes the next generation. Implementations must not mutate
// their input and must return a grid of the same shape.
type Kernel func(*life.Grid) *life.Grid

type Metric interface {
	Name() string
	Observe(prev, next *life.Grid, generation int)
	Value() float64
	Reset()
}

type Observer interface {
	OnGeneration(g *life.Grid, generation int)
}

type Config struct {
	Generations    int
	StopWhenStable bool
	Seed           int64
}

type Result struct {
	Final       *life.Grid
	Population  []int
	Births      []int
	Deaths      []int
	Generations int
	Stable      bool
	Metrics     map[string]float64
}

var (
	ErrNoKernel       = errors.New("sim: no kernel")
	ErrKernelContract = errors.New("sim: kernel returned a grid of the wrong shape")
)

// RunError attaches the generation at which a run halted.
type RunError struct {
	Generation int
	Wrapped    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("generation %d: %v", e.Generation, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
