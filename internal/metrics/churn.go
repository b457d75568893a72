package metrics

import "github.com/san-kum/lifesim/internal/life"

// Churn is the mean number of births plus deaths per generation.
type Churn struct {
	name    string
	changes int
	samples int
}

func NewChurn() *Churn {
	return &Churn{name: "churn"}
}

func (c *Churn) Name() string {
	return c.name
}

func (c *Churn) Observe(prev, next *life.Grid, generation int) {
	births, deaths := life.Changes(prev, next)
	c.changes += births + deaths
	c.samples++
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.changes) / float64(c.samples)
}

func (c *Churn) Reset() {
	c.changes = 0
	c.samples = 0
}
