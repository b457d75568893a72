package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/lifesim/internal/life"
)

func TestRunError(t *testing.T) {
	err := &RunError{Generation: 150, Wrapped: ErrKernelContract}
	expected := "generation 150: sim: kernel returned a grid of the wrong shape"
	if err.Error() != expected {
		t.Errorf("RunError.Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrKernelContract) {
		t.Error("RunError should unwrap to its cause")
	}
}

func TestEnsemble(t *testing.T) {
	build := func(seed int64) (*Simulator, error) {
		g := life.MustNew(8, 8)
		g.Set(int(seed), 0, true)
		g.Set(int(seed), 1, true)
		g.Set(int(seed), 2, true)
		return New(g, life.Step), nil
	}

	results, err := NewEnsemble(build, 4, 1).Run(context.Background(), Config{Generations: 4})
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Generations != 4 || r.Final.Population() != 3 {
			t.Errorf("run %d: generations=%d population=%d", i, r.Generations, r.Final.Population())
		}
	}
}

func TestEnsemble_BuildError(t *testing.T) {
	boom := errors.New("boom")
	build := func(seed int64) (*Simulator, error) { return nil, boom }

	if _, err := NewEnsemble(build, 2, 0).Run(context.Background(), Config{Generations: 1}); !errors.Is(err, boom) {
		t.Errorf("expected build error, got %v", err)
	}
}

func TestEnsemble_NegativeSize(t *testing.T) {
	build := func(seed int64) (*Simulator, error) { return New(life.MustNew(2, 2), life.Step), nil }

	if _, err := NewEnsemble(build, -1, 0).Run(context.Background(), Config{Generations: 1}); err == nil {
		t.Error("expected error for negative ensemble size")
	}
}
