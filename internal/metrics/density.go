package metrics

import "github.com/san-kum/lifesim/internal/life"

// Density is the alive fraction of the last observed generation.
type Density struct {
	value float64
}

func NewDensity() *Density { return &Density{} }

func (d *Density) Name() string { return "density" }

func (d *Density) Observe(prev, next *life.Grid, generation int) {
	if next.Len() == 0 {
		d.value = 0
		return
	}
	d.value = float64(next.Population()) / float64(next.Len())
}

func (d *Density) Value() float64 { return d.value }

func (d *Density) Reset() { d.value = 0 }
